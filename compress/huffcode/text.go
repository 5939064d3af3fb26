// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffcode

import (
	"github.com/intel/fasthuff/compress/huffcode/internal/bitstream"
)

// EncodeText compresses src and returns the stream as text, one '0' or '1'
// character per bit.
func EncodeText(src []byte) ([]byte, error) {
	packed, err := Compress(src)
	if err != nil {
		return nil, err
	}
	return bitstream.AppendText(make([]byte, 0, len(packed)*8), packed), nil
}

// DecodeText decompresses a stream in the form produced by EncodeText.
// Trailing whitespace, such as the newline left by printing the text, is
// ignored.
func DecodeText(text []byte) ([]byte, error) {
	packed, err := ParseText(text)
	if err != nil {
		return nil, err
	}
	return Decompress(packed)
}

// ParseText packs a textual bit sequence into bytes.
func ParseText(text []byte) ([]byte, error) {
	packed, at, err := bitstream.ParseText(text)
	if err != nil {
		return nil, &MalformedStreamError{Offset: at, Reason: "invalid bit text", Err: err}
	}
	return packed, nil
}

// AppendText appends one '0' or '1' per bit of packed to dst.
func AppendText(dst, packed []byte) []byte {
	return bitstream.AppendText(dst, packed)
}

// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import (
	"errors"
)

var (
	ErrTextDigit  = errors.New("bitstream: text contains a character other than '0' or '1'")
	ErrTextLength = errors.New("bitstream: text length is not a multiple of 8")
)

// AppendText appends the textual form of packed to dst: one '0' or '1' per
// bit, most significant bit of each byte first.
func AppendText(dst, packed []byte) []byte {
	for _, b := range packed {
		for shift := 7; shift >= 0; shift-- {
			dst = append(dst, '0'+(b>>uint(shift))&1)
		}
	}
	return dst
}

// ParseText packs a textual bit sequence into bytes. Trailing ASCII whitespace
// is ignored. On error, offset is the index of the offending character.
func ParseText(text []byte) (packed []byte, offset int, err error) {
	end := len(text)
	for end > 0 && isSpace(text[end-1]) {
		end--
	}
	text = text[:end]
	if len(text)%8 != 0 {
		return nil, len(text), ErrTextLength
	}
	packed = make([]byte, len(text)/8)
	for i, c := range text {
		switch c {
		case '0':
		case '1':
			packed[i>>3] |= 0x80 >> uint(i&7)
		default:
			return nil, i, ErrTextDigit
		}
	}
	return packed, 0, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffcode

import (
	"fmt"

	"github.com/intel/fasthuff/compress/huffcode/internal/huffman"
)

// ErrEmptyInput is returned when compressing zero bytes: no tree exists for
// an empty histogram.
var ErrEmptyInput = huffman.ErrEmptyInput

// MalformedStreamError reports a compressed stream that is truncated or
// corrupt. Offset is the bit offset at which decoding failed.
type MalformedStreamError struct {
	Offset int
	Reason string
	Err    error
}

func (e *MalformedStreamError) Error() string {
	return fmt.Sprintf("huffcode: malformed stream at bit %d: %s", e.Offset, e.Reason)
}

func (e *MalformedStreamError) Unwrap() error {
	return e.Err
}

// UnknownSymbolError is returned when the input holds a symbol that has no
// code in the table used to encode it.
type UnknownSymbolError byte

func (e UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffcode: symbol 0x%02x not in code table", byte(e))
}

func malformed(offset int, reason string) error {
	return &MalformedStreamError{Offset: offset, Reason: reason}
}

func truncated(offset int, err error) error {
	return &MalformedStreamError{Offset: offset, Reason: "unexpected end of stream", Err: err}
}

// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffcode

import (
	"github.com/intel/fasthuff/compress/huffcode/internal/bitstream"
)

// AppendPayload encodes src with table as a payload segment and appends it to
// dst. Every byte of src must have a code in table.
//
// A table built from a single-leaf tree maps its symbol to the empty code.
// Such a symbol is written as one 0 bit per occurrence so that the decoder can
// recover the repeat count from the payload length.
func AppendPayload(dst, src []byte, table *CodeTable) ([]byte, error) {
	var w bitstream.Writer
	for _, sym := range src {
		code, ok := table.Lookup(sym)
		if !ok {
			return dst, UnknownSymbolError(sym)
		}
		if code.Len == 0 {
			w.WriteBit(false)
			continue
		}
		code.Emit(&w)
	}
	return w.AppendSegment(dst), nil
}

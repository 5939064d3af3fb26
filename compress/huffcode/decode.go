// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffcode

import (
	"github.com/intel/fasthuff/compress/huffcode/internal/bitstream"
)

// ReadPayload decodes the payload segment starting at bit offset in src by
// walking the tree under root. The payload runs to the end of src.
//
// Exactly L-P bits are decoded, where L is the number of bits after the
// padding count and P the padding count; the P trailing bits must be zero.
func ReadPayload(src []byte, offset int, root *Node) ([]byte, error) {
	r := bitstream.NewReader(src, offset)
	pad, err := readPad(r)
	if err != nil {
		return nil, err
	}
	total := r.Remaining()
	if total%8 != 0 {
		return nil, malformed(r.Offset(), "payload is not byte aligned")
	}
	if pad > total {
		return nil, malformed(r.Offset(), "padding count exceeds payload length")
	}
	n := total - pad

	var out []byte
	if root.IsLeaf() {
		out, err = decodeRun(r, n, root.Symbol)
	} else {
		out, err = decodeWalk(r, n, root)
	}
	if err != nil {
		return nil, err
	}
	if err = readZeros(r, pad); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeWalk consumes n bits, descending left on 0 and right on 1 and
// emitting a symbol each time a leaf is reached.
func decodeWalk(r *bitstream.Reader, n int, root *Node) ([]byte, error) {
	out := make([]byte, 0, n/2)
	node := root
	for i := 0; i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, truncated(r.Offset(), err)
		}
		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
		if node.IsLeaf() {
			out = append(out, node.Symbol)
			node = root
		}
	}
	if node != root {
		return nil, malformed(r.Offset(), "payload ends inside a code")
	}
	return out, nil
}

// decodeRun handles a single-leaf tree: every payload bit is 0 and stands for
// one occurrence of sym.
func decodeRun(r *bitstream.Reader, n int, sym byte) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		at := r.Offset()
		bit, err := r.ReadBit()
		if err != nil {
			return nil, truncated(at, err)
		}
		if bit {
			return nil, malformed(at, "set bit in a single-symbol payload")
		}
		out[i] = sym
	}
	return out, nil
}

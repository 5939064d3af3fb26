// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffcode

import (
	"github.com/intel/fasthuff/compress/huffcode/internal/bitstream"
	"github.com/intel/fasthuff/compress/huffcode/internal/huffman"
)

const (
	tagInternal = false
	tagLeaf     = true

	symbolBits = 8
	padBits    = 8
	maxPad     = 7
)

// AppendTree serializes the tree under root as a tree segment and appends it
// to dst. The tree is written in pre-order: an internal node as a 0 bit
// followed by its left and right subtrees, a leaf as a 1 bit followed by its
// 8-bit symbol.
func AppendTree(dst []byte, root *Node) []byte {
	var w bitstream.Writer
	writeTree(&w, root)
	return w.AppendSegment(dst)
}

func writeTree(w *bitstream.Writer, n *Node) {
	if n.IsLeaf() {
		w.WriteBit(tagLeaf)
		w.WriteBits(uint64(n.Symbol), symbolBits)
		return
	}
	w.WriteBit(tagInternal)
	writeTree(w, n.Left)
	writeTree(w, n.Right)
}

// treeReader holds the state of a single tree segment parse.
type treeReader struct {
	r    *bitstream.Reader
	seen [256]bool
}

// ReadTree parses the tree segment starting at bit offset in src. It returns
// the root and the bit offset of the segment that follows.
func ReadTree(src []byte, offset int) (root *Node, next int, err error) {
	r := bitstream.NewReader(src, offset)
	pad, err := readPad(r)
	if err != nil {
		return nil, offset, err
	}

	start := r.Offset()
	tr := treeReader{r: r}
	root, err = tr.readNode(0)
	if err != nil {
		return nil, offset, err
	}
	if (r.Offset()-start+pad)%8 != 0 {
		return nil, offset, malformed(r.Offset(), "tree padding does not reach a byte boundary")
	}
	if err = readZeros(r, pad); err != nil {
		return nil, offset, err
	}
	return root, r.Offset(), nil
}

func (tr *treeReader) readNode(depth int) (*Node, error) {
	if depth > huffman.MaxDepth {
		return nil, malformed(tr.r.Offset(), "tree is too deep")
	}
	tag, err := tr.r.ReadBit()
	if err != nil {
		return nil, truncated(tr.r.Offset(), err)
	}
	if tag == tagLeaf {
		sym, err := tr.r.ReadBits(symbolBits)
		if err != nil {
			return nil, truncated(tr.r.Offset(), err)
		}
		if tr.seen[sym] {
			return nil, malformed(tr.r.Offset()-symbolBits, "duplicate leaf symbol")
		}
		tr.seen[sym] = true
		return huffman.NewLeaf(byte(sym)), nil
	}

	left, err := tr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := tr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	return huffman.NewInternal(left, right), nil
}

// readPad reads the 8-bit padding count that starts every segment.
func readPad(r *bitstream.Reader) (int, error) {
	at := r.Offset()
	v, err := r.ReadBits(padBits)
	if err != nil {
		return 0, truncated(at, err)
	}
	if v > maxPad {
		return 0, malformed(at, "padding count above 7")
	}
	return int(v), nil
}

func readZeros(r *bitstream.Reader, count int) error {
	at := r.Offset()
	v, err := r.ReadBits(count)
	if err != nil {
		return truncated(at, err)
	}
	if v != 0 {
		return malformed(at, "non-zero padding bits")
	}
	return nil
}

// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"strings"

	"github.com/intel/fasthuff/compress/huffcode/internal/bitstream"
)

const codeWords = (MaxDepth + 64) / 64

// Code is the bit path from the root to a leaf, '0' for left and '1' for right.
// Bits are stored most significant first: bit i lives in words[i/64] at
// position 63-i%64.
type Code struct {
	words [codeWords]uint64
	Len   int
}

// child returns the code one edge further down.
func (c Code) child(right bool) Code {
	if right {
		c.words[c.Len/64] |= 1 << uint(63-c.Len%64)
	}
	c.Len++
	return c
}

// Bit returns bit i of the code.
func (c Code) Bit(i int) bool {
	return c.words[i/64]>>uint(63-i%64)&1 == 1
}

// Emit writes the code to w.
func (c Code) Emit(w *bitstream.Writer) {
	for i, rest := 0, c.Len; rest > 0; i, rest = i+1, rest-64 {
		n := rest
		if n > 64 {
			n = 64
		}
		w.WriteBits(c.words[i]>>uint(64-n), n)
	}
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	for i := 0; i < p.Len; i++ {
		if c.Bit(i) != p.Bit(i) {
			return false
		}
	}
	return true
}

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(c.Len)
	for i := 0; i < c.Len; i++ {
		if c.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// CodeTable maps every symbol of a tree to its code.
type CodeTable struct {
	codes   [256]Code
	present [256]bool
}

// NewCodeTable walks the tree under root and records the code of each leaf.
// The only leaf of a single-leaf tree gets the empty code.
func NewCodeTable(root *Node) *CodeTable {
	t := &CodeTable{}
	t.fill(root, Code{})
	return t
}

func (t *CodeTable) fill(n *Node, prefix Code) {
	if n.IsLeaf() {
		t.codes[n.Symbol] = prefix
		t.present[n.Symbol] = true
		return
	}
	t.fill(n.Left, prefix.child(false))
	t.fill(n.Right, prefix.child(true))
}

// Lookup returns the code of sym and whether sym is in the table.
func (t *CodeTable) Lookup(sym byte) (Code, bool) {
	return t.codes[sym], t.present[sym]
}

// Symbols returns the symbols of the table in ascending order.
func (t *CodeTable) Symbols() []byte {
	var syms []byte
	for i, ok := range t.present {
		if ok {
			syms = append(syms, byte(i))
		}
	}
	return syms
}

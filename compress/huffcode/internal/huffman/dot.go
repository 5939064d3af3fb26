// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"strings"
)

// Dot renders the tree as a Graphviz digraph. Internal nodes are labelled by
// their pre-order index, leaves by their symbol; edges carry the code bit.
func (n *Node) Dot() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	next := 0
	n.writeDot(&sb, &next)
	sb.WriteString("}\n")
	return sb.String()
}

func (n *Node) writeDot(sb *strings.Builder, next *int) string {
	id := fmt.Sprintf("n%d", *next)
	*next++
	if n.IsLeaf() {
		fmt.Fprintf(sb, "  %s [shape=box,label=%q];\n", id, symbolLabel(n.Symbol))
		return id
	}
	fmt.Fprintf(sb, "  %s [label=\"\"];\n", id)
	left := n.Left.writeDot(sb, next)
	right := n.Right.writeDot(sb, next)
	fmt.Fprintf(sb, "  %s -> %s [label=\"0\"];\n", id, left)
	fmt.Fprintf(sb, "  %s -> %s [label=\"1\"];\n", id, right)
	return id
}

func symbolLabel(sym byte) string {
	if sym > ' ' && sym < 0x7f && sym != '"' && sym != '\\' {
		return string(rune(sym))
	}
	return fmt.Sprintf("0x%02x", sym)
}

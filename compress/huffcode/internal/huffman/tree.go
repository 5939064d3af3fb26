// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman builds prefix-code trees from byte histograms and derives
// code tables from them.
package huffman

import (
	"container/heap"
	"errors"
)

// MaxDepth is the depth of the deepest leaf a full tree over 256 symbols can have.
const MaxDepth = 255

var ErrEmptyInput = errors.New("huffman: empty input")

// Node is a node of a full binary tree. A leaf carries a Symbol and has no
// children; an internal node has both children and no symbol.
type Node struct {
	Left, Right *Node
	Symbol      byte
}

// NewLeaf returns a leaf holding sym.
func NewLeaf(sym byte) *Node {
	return &Node{Symbol: sym}
}

// NewInternal returns an internal node owning left and right.
// Both children must be non-nil.
func NewInternal(left, right *Node) *Node {
	if left == nil || right == nil {
		panic("huffman: internal node needs two children")
	}
	return &Node{Left: left, Right: right}
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil
}

// Leaves returns the number of leaves under n.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// weighted is a heap entry. seq orders entries of equal weight: leaves are
// numbered by ascending symbol, merged nodes after them in creation order.
type weighted struct {
	node   *Node
	weight uint64
	seq    int
}

type nodeHeap []weighted

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(weighted)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// BuildTree merges the two lightest entries until one tree remains and returns
// its root. The first entry popped becomes the left child. A histogram with a
// single symbol yields a single leaf.
func BuildTree(hist *Histogram) (*Node, error) {
	h := make(nodeHeap, 0, len(hist))
	for sym, count := range hist {
		if count == 0 {
			continue
		}
		h = append(h, weighted{node: NewLeaf(byte(sym)), weight: count, seq: len(h)})
	}
	if len(h) == 0 {
		return nil, ErrEmptyInput
	}
	heap.Init(&h)

	seq := len(h)
	for h.Len() > 1 {
		left := heap.Pop(&h).(weighted)
		right := heap.Pop(&h).(weighted)
		heap.Push(&h, weighted{
			node:   NewInternal(left.node, right.node),
			weight: left.weight + right.weight,
			seq:    seq,
		})
		seq++
	}
	return h[0].node, nil
}

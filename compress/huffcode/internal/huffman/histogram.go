// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// Histogram counts the occurrences of every byte value.
// A zero count means the symbol is absent.
type Histogram [256]uint64

// NewHistogram returns the histogram of src.
func NewHistogram(src []byte) *Histogram {
	h := &Histogram{}
	h.Add(src)
	return h
}

// Add counts the bytes of src into h.
func (h *Histogram) Add(src []byte) {
	for _, b := range src {
		h[b]++
	}
}

// Count returns the number of occurrences of sym.
func (h *Histogram) Count(sym byte) uint64 {
	return h[sym]
}

// Distinct returns the number of symbols present.
func (h *Histogram) Distinct() (n int) {
	for _, v := range h {
		if v != 0 {
			n++
		}
	}
	return n
}

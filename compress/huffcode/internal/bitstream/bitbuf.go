// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitstream packs and unpacks bit sequences, most significant bit
// first within each byte.
package bitstream

// Writer accumulates bits into a growing byte slice.
// The zero value is ready to use.
type Writer struct {
	output []byte
	bits   uint64 // pending bits, right aligned; at most 7 between calls
	bitLen int
}

// Reset discards all written bits and keeps the buffer for reuse.
func (w *Writer) Reset() {
	w.output = w.output[:0]
	w.bits = 0
	w.bitLen = 0
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return len(w.output)*8 + w.bitLen
}

// WriteBits writes the low count bits of code, highest of them first.
// count must be in [0, 64].
func (w *Writer) WriteBits(code uint64, count int) {
	for count > 0 {
		n := count
		if n > 32 {
			n = 32
		}
		count -= n
		chunk := (code >> uint(count)) & (1<<uint(n) - 1)
		w.bits = w.bits<<uint(n) | chunk
		w.bitLen += n
		w.sync()
	}
}

// WriteBit writes a single bit.
func (w *Writer) WriteBit(bit bool) {
	if bit {
		w.WriteBits(1, 1)
	} else {
		w.WriteBits(0, 1)
	}
}

// sync moves every complete byte of the pending bits into output.
func (w *Writer) sync() {
	for w.bitLen >= 8 {
		w.bitLen -= 8
		w.output = append(w.output, byte(w.bits>>uint(w.bitLen)))
	}
	w.bits &= 1<<uint(w.bitLen) - 1
}

// Align pads the written bits with zeros up to the next byte boundary and
// returns the number of padding bits, in [0, 7].
func (w *Writer) Align() (pad int) {
	pad = (8 - w.bitLen%8) % 8
	w.WriteBits(0, pad)
	return pad
}

// Bytes aligns the stream and returns the packed bytes.
// The returned slice aliases the writer's buffer until the next Reset.
func (w *Writer) Bytes() []byte {
	w.Align()
	return w.output
}

// AppendSegment aligns the stream and appends a segment to dst: one byte
// holding the padding count followed by the packed bits.
func (w *Writer) AppendSegment(dst []byte) []byte {
	pad := w.Align()
	dst = append(dst, byte(pad))
	return append(dst, w.output...)
}

// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import "io"

// Reader reads bits from a byte slice, most significant bit first.
// Offsets are counted in bits from the start of the slice.
type Reader struct {
	input []byte
	pos   int
}

// NewReader returns a Reader over input positioned at bit offset.
// An offset outside the input leaves no bits to read.
func NewReader(input []byte, offset int) *Reader {
	if offset < 0 {
		offset = len(input) * 8
	}
	return &Reader{input: input, pos: offset}
}

// Offset returns the bit offset of the next bit to be read.
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	n := len(r.input)*8 - r.pos
	if n < 0 {
		return 0
	}
	return n
}

// ReadBit reads one bit. It returns io.ErrUnexpectedEOF at the end of input.
func (r *Reader) ReadBit() (bool, error) {
	if r.Remaining() < 1 {
		return false, io.ErrUnexpectedEOF
	}
	b := r.input[r.pos>>3] >> uint(7-r.pos&7) & 1
	r.pos++
	return b == 1, nil
}

// ReadBits reads count bits, count in [0, 64], and returns them right aligned
// with the first bit read as the most significant. Nothing is consumed when
// fewer than count bits remain.
func (r *Reader) ReadBits(count int) (uint64, error) {
	if r.Remaining() < count {
		return 0, io.ErrUnexpectedEOF
	}
	var v uint64
	for count > 0 {
		avail := 8 - r.pos&7
		n := avail
		if n > count {
			n = count
		}
		cur := uint64(r.input[r.pos>>3]) >> uint(avail-n) & (1<<uint(n) - 1)
		v = v<<uint(n) | cur
		r.pos += n
		count -= n
	}
	return v, nil
}

// Skip advances the reader by count bits.
func (r *Reader) Skip(count int) error {
	if r.Remaining() < count {
		return io.ErrUnexpectedEOF
	}
	r.pos += count
	return nil
}

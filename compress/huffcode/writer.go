// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffcode implements a byte-oriented Huffman codec. A compressed
// stream is a serialized prefix-code tree followed by the encoded payload,
// each in its own byte-aligned segment:
//
//	output          := tree_segment payload_segment
//	tree_segment    := pad8(P) tree_bits zeros(P)
//	tree_bits       := '1' byte8(symbol) | '0' tree_bits tree_bits
//	payload_segment := pad8(P) code(s0) code(s1) ... zeros(P)
//
// Bits are packed most significant first. The whole input is held in memory.
package huffcode

import (
	"bytes"
	"io"

	"github.com/intel/fasthuff/compress/huffcode/internal/huffman"
)

type (
	Node      = huffman.Node
	Histogram = huffman.Histogram
	CodeTable = huffman.CodeTable
	Code      = huffman.Code
)

var (
	NewHistogram = huffman.NewHistogram
	BuildTree    = huffman.BuildTree
	NewCodeTable = huffman.NewCodeTable
)

// Compress encodes src. Ties between equal weights are broken by symbol
// value, then by merge order, so equal inputs give identical outputs.
func Compress(src []byte) ([]byte, error) {
	return AppendCompressed(nil, src)
}

// AppendCompressed appends the compressed form of src to dst.
func AppendCompressed(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, ErrEmptyInput
	}
	root, err := BuildTree(NewHistogram(src))
	if err != nil {
		return dst, err
	}
	dst = AppendTree(dst, root)
	return AppendPayload(dst, src, NewCodeTable(root))
}

// Writer buffers everything written to it and writes the compressed stream
// to the underlying writer on Close.
type Writer struct {
	w      io.Writer
	buf    bytes.Buffer
	out    []byte
	err    error
	closed bool
}

// NewWriter returns a Writer compressing into under.
func NewWriter(under io.Writer) *Writer {
	return &Writer{w: under}
}

func (w *Writer) Write(data []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, errWriterClosed
	}
	return w.buf.Write(data)
}

// Close compresses the buffered input and writes it out. Closing a Writer
// that received no data returns ErrEmptyInput and writes nothing.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	if w.err != nil {
		return w.err
	}
	w.out, w.err = AppendCompressed(w.out[:0], w.buf.Bytes())
	if w.err != nil {
		return w.err
	}
	_, w.err = w.w.Write(w.out)
	return w.err
}

// Reset discards buffered data and the error state and switches to under,
// keeping allocated buffers.
func (w *Writer) Reset(under io.Writer) {
	w.w = under
	w.buf.Reset()
	w.err = nil
	w.closed = false
}

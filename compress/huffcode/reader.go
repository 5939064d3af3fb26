// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffcode

import (
	"errors"
	"io"
)

var errWriterClosed = errors.New("huffcode: write to closed writer")

// Decompress decodes a stream produced by Compress.
func Decompress(src []byte) ([]byte, error) {
	root, next, err := ReadTree(src, 0)
	if err != nil {
		return nil, err
	}
	return ReadPayload(src, next, root)
}

// NewReader returns a reader that decompresses the stream read from r.
// The whole stream is read and decoded on the first call to Read.
func NewReader(r io.Reader) io.ReadCloser {
	return &decompressor{r: r}
}

type decompressor struct {
	r       io.Reader
	out     []byte
	readPos int
	done    bool
	err     error
}

func (d *decompressor) Read(b []byte) (n int, err error) {
	if !d.done {
		d.done = true
		d.err = d.decode()
	}
	if d.err != nil {
		return 0, d.err
	}
	if d.readPos == len(d.out) {
		return 0, io.EOF
	}
	n = copy(b, d.out[d.readPos:])
	d.readPos += n
	return n, nil
}

func (d *decompressor) decode() error {
	src, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	d.out, err = Decompress(src)
	return err
}

// Reset switches to a new source. It satisfies the same contract as
// compress/flate.Resetter; the dictionary is ignored.
func (d *decompressor) Reset(r io.Reader, _ []byte) error {
	d.r = r
	d.out = nil
	d.readPos = 0
	d.done = false
	d.err = nil
	return nil
}

func (d *decompressor) Close() error {
	return nil
}

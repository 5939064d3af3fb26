// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/intel/fasthuff/compress/huffcode/internal/bitstream"
)

func TestHistogram(t *testing.T) {
	h := NewHistogram([]byte("abracadabra"))
	want := map[byte]uint64{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	got := map[byte]uint64{}
	for sym, count := range h {
		if count != 0 {
			got[byte(sym)] = count
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
	if h.Distinct() != 5 {
		t.Fatalf("expected 5 distinct symbols, got %d", h.Distinct())
	}
	if NewHistogram(nil).Distinct() != 0 {
		t.Fatal("empty input must give an empty histogram")
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	root, err := BuildTree(NewHistogram(nil))
	if err != ErrEmptyInput || root != nil {
		t.Fatalf("expected ErrEmptyInput, got %v, %v", root, err)
	}
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	root, err := BuildTree(NewHistogram([]byte("aaaa")))
	if err != nil {
		t.Fatal(err)
	}
	if !root.IsLeaf() || root.Symbol != 'a' {
		t.Fatalf("expected a single leaf 'a', got %+v", root)
	}
	code, ok := NewCodeTable(root).Lookup('a')
	if !ok || code.Len != 0 || code.String() != "" {
		t.Fatalf("expected empty code, got %q, %v", code, ok)
	}
}

func codesOf(t *testing.T, input string) map[byte]string {
	root, err := BuildTree(NewHistogram([]byte(input)))
	if err != nil {
		t.Fatal(err)
	}
	table := NewCodeTable(root)
	codes := map[byte]string{}
	for _, sym := range table.Symbols() {
		code, _ := table.Lookup(sym)
		codes[sym] = code.String()
	}
	return codes
}

func TestBuildTreeTieBreak(t *testing.T) {
	for _, tc := range []struct {
		input string
		codes map[byte]string
	}{
		{"abb", map[byte]string{'a': "0", 'b': "1"}},
		{"ba", map[byte]string{'a': "0", 'b': "1"}},
		{"abcabcabc", map[byte]string{'c': "0", 'a': "10", 'b': "11"}},
		{"aaaabbc", map[byte]string{'a': "1", 'c': "00", 'b': "01"}},
	} {
		if got := codesOf(t, tc.input); !reflect.DeepEqual(got, tc.codes) {
			t.Errorf("%q: expected %v got %v", tc.input, tc.codes, got)
		}
	}
}

func checkFull(t *testing.T, n *Node, depth int) {
	if depth > MaxDepth {
		t.Fatalf("depth %d exceeds %d", depth, MaxDepth)
	}
	if n.IsLeaf() {
		if n.Right != nil {
			t.Fatal("leaf with a right child")
		}
		return
	}
	if n.Left == nil || n.Right == nil {
		t.Fatal("internal node with one child")
	}
	checkFull(t, n.Left, depth+1)
	checkFull(t, n.Right, depth+1)
}

func randomInput(rng *rand.Rand) []byte {
	alphabet := 1 + rng.Intn(256)
	data := make([]byte, 1+rng.Intn(4096))
	for i := range data {
		// skewed so that code lengths differ
		data[i] = byte(rng.Intn(1 + rng.Intn(alphabet)))
	}
	return data
}

func TestRandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5a025ca1))
	for iteration := 0; iteration < 200; iteration++ {
		data := randomInput(rng)
		hist := NewHistogram(data)
		root, err := BuildTree(hist)
		if err != nil {
			t.Fatal(err)
		}
		checkFull(t, root, 0)
		if root.Leaves() != hist.Distinct() {
			t.Fatalf("expected %d leaves got %d", hist.Distinct(), root.Leaves())
		}

		table := NewCodeTable(root)
		syms := table.Symbols()
		for _, a := range syms {
			ca, _ := table.Lookup(a)
			for _, b := range syms {
				if a == b {
					continue
				}
				cb, _ := table.Lookup(b)
				if cb.HasPrefix(ca) {
					t.Fatalf("code %s of %d is a prefix of code %s of %d", ca, a, cb, b)
				}
			}
		}

		again, _ := BuildTree(NewHistogram(data))
		if !reflect.DeepEqual(root, again) {
			t.Fatal("tree construction is not deterministic")
		}
	}
}

func TestFibonacciDepth(t *testing.T) {
	// Fibonacci weights give the deepest possible tree for their leaf count.
	var hist Histogram
	a, b := uint64(1), uint64(1)
	for i := 0; i < 40; i++ {
		hist[i] = a
		a, b = b, a+b
	}
	root, err := BuildTree(&hist)
	if err != nil {
		t.Fatal(err)
	}
	table := NewCodeTable(root)
	code, _ := table.Lookup(0)
	if code.Len != 39 {
		t.Fatalf("expected depth 39 got %d", code.Len)
	}

	var w bitstream.Writer
	code.Emit(&w)
	if w.Len() != code.Len {
		t.Fatalf("emitted %d bits for a %d bit code", w.Len(), code.Len)
	}
	r := bitstream.NewReader(w.Bytes(), 0)
	for i := 0; i < code.Len; i++ {
		bit, _ := r.ReadBit()
		if bit != code.Bit(i) {
			t.Fatalf("bit %d differs", i)
		}
	}
}

func TestLongCodeEmit(t *testing.T) {
	// a comb of 256 leaves: the deepest code is 255 bits long
	root := NewLeaf(255)
	for sym := 254; sym >= 0; sym-- {
		root = NewInternal(NewLeaf(byte(sym)), root)
	}
	table := NewCodeTable(root)
	code, _ := table.Lookup(255)
	if code.Len != MaxDepth {
		t.Fatalf("expected %d bits got %d", MaxDepth, code.Len)
	}
	if code.String() != strings.Repeat("1", MaxDepth) {
		t.Fatalf("unexpected code %s", code)
	}
	var w bitstream.Writer
	code.Emit(&w)
	packed := w.Bytes()
	for i := 0; i < 31; i++ {
		if packed[i] != 0xff {
			t.Fatalf("byte %d is %08b", i, packed[i])
		}
	}
	if packed[31] != 0xfe {
		t.Fatalf("last byte is %08b", packed[31])
	}
	last, _ := table.Lookup(254)
	if last.String() != strings.Repeat("1", 254)+"0" {
		t.Fatalf("unexpected code %s", last)
	}
}

func TestDot(t *testing.T) {
	root, _ := BuildTree(NewHistogram([]byte("abb")))
	want := "digraph {\n" +
		"  n0 [label=\"\"];\n" +
		"  n1 [shape=box,label=\"a\"];\n" +
		"  n2 [shape=box,label=\"b\"];\n" +
		"  n0 -> n1 [label=\"0\"];\n" +
		"  n0 -> n2 [label=\"1\"];\n" +
		"}\n"
	if got := root.Dot(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
	if !strings.Contains(NewLeaf('\n').Dot(), "0x0a") {
		t.Fatal("control characters must be rendered in hex")
	}
}

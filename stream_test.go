// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

import (
	"bytes"
	"testing"
)

func TestStream_RoundTripAcrossBlocks(t *testing.T) {
	blocks := [][]byte{
		[]byte("the quick brown fox jumps over the lazy dog"),
		[]byte("the quick brown fox jumps over the lazy dog again"),
		bytes.Repeat([]byte("refrain"), 300),
	}

	enc := NewStream()
	dec := NewStreamDecode()

	for i, block := range blocks {
		dst := make([]byte, CompressBound(len(block)))
		n, err := enc.CompressContinue(block, dst)
		if err != nil {
			t.Fatalf("block %d CompressContinue: %v", i, err)
		}

		out := make([]byte, len(block))
		got, err := dec.DecompressContinue(dst[:n], out)
		if err != nil {
			t.Fatalf("block %d DecompressContinue: %v", i, err)
		}
		if got != len(block) || !bytes.Equal(out, block) {
			t.Fatalf("block %d round-trip mismatch", i)
		}
	}
}

func TestStream_LoadDict(t *testing.T) {
	dict := []byte("shared dictionary content repeated across independent streams ")

	enc := NewStream()
	enc.LoadDict(dict)

	block := append([]byte(nil), dict...)
	block = append(block, " plus new trailing bytes"...)

	dst := make([]byte, CompressBound(len(block)))
	n, err := enc.CompressContinue(block, dst)
	if err != nil {
		t.Fatalf("CompressContinue: %v", err)
	}

	dec := NewStreamDecode()
	dec.LoadDict(dict)

	out := make([]byte, len(block))
	got, err := dec.DecompressContinue(dst[:n], out)
	if err != nil {
		t.Fatalf("DecompressContinue: %v", err)
	}
	if got != len(block) || !bytes.Equal(out, block) {
		t.Fatalf("dictionary round-trip mismatch")
	}
}

// TestDecompressSafeUsingDict drives spec.md §8 property 2 through the
// package-level entry point a caller without a StreamDecode would use: a
// block compressed against a loaded dictionary must decode given only that
// same dictionary, with no access to the encoder's internal state.
func TestDecompressSafeUsingDict(t *testing.T) {
	dict := []byte("the quick brown fox")
	tail := []byte(" jumps over the lazy dog, the quick brown fox runs on")

	enc := NewStream()
	enc.LoadDict(dict)
	dst := make([]byte, CompressBound(len(tail)))
	n, err := enc.CompressContinue(tail, dst)
	if err != nil {
		t.Fatalf("CompressContinue: %v", err)
	}

	out := make([]byte, len(tail))
	got, err := DecompressSafeUsingDict(dst[:n], out, dict)
	if err != nil {
		t.Fatalf("DecompressSafeUsingDict: %v", err)
	}
	if got != len(tail) || !bytes.Equal(out, tail) {
		t.Fatalf("dictionary round-trip mismatch: got %q want %q", out[:got], tail)
	}
}

func TestStream_SaveDict(t *testing.T) {
	enc := NewStream()
	block := bytes.Repeat([]byte("save-dict-content"), 50)
	dst := make([]byte, CompressBound(len(block)))
	if _, err := enc.CompressContinue(block, dst); err != nil {
		t.Fatalf("CompressContinue: %v", err)
	}

	saved := make([]byte, windowSize)
	n := enc.SaveDict(saved)
	if n == 0 || n > windowSize {
		t.Fatalf("SaveDict returned %d bytes", n)
	}
	if !bytes.HasSuffix(block, saved[:n]) {
		t.Fatalf("saved dictionary is not a suffix of the compressed block's source")
	}
}

func TestStreamHC_RoundTripAcrossBlocks(t *testing.T) {
	blocks := [][]byte{
		[]byte("hc streaming first block of text"),
		[]byte("hc streaming second block referencing the first block of text"),
	}

	enc := NewStreamHC(9)
	dec := NewStreamDecode()

	for i, block := range blocks {
		dst := make([]byte, CompressBound(len(block)))
		n, err := enc.CompressContinue(block, dst)
		if err != nil {
			t.Fatalf("block %d CompressContinue: %v", i, err)
		}

		out := make([]byte, len(block))
		got, err := dec.DecompressContinue(dst[:n], out)
		if err != nil {
			t.Fatalf("block %d DecompressContinue: %v", i, err)
		}
		if got != len(block) || !bytes.Equal(out, block) {
			t.Fatalf("block %d round-trip mismatch", i)
		}
	}
}

func TestStreamHC_AttachDict(t *testing.T) {
	dict := []byte("attached dictionary payload, reused verbatim")
	dictStream := NewStreamHC(9)
	dictStream.LoadDict(dict)

	enc := NewStreamHC(9)
	enc.AttachDict(dictStream)

	block := []byte("attached dictionary payload, reused verbatim, plus a new tail")
	dst := make([]byte, CompressBound(len(block)))
	n, err := enc.CompressContinue(block, dst)
	if err != nil {
		t.Fatalf("CompressContinue: %v", err)
	}

	out := make([]byte, len(block))
	got, err := DecompressSafeUsingDict(dst[:n], out, dict)
	if err != nil {
		t.Fatalf("DecompressSafeUsingDict: %v", err)
	}
	if got != len(block) || !bytes.Equal(out, block) {
		t.Fatalf("AttachDict round-trip mismatch")
	}
}

func TestStream_UninitialisedState(t *testing.T) {
	var s Stream
	_, err := s.CompressContinue([]byte("abc"), make([]byte, 16))
	if err != ErrUninitialisedState {
		t.Fatalf("err = %v, want ErrUninitialisedState", err)
	}
}

func TestStreamHC_UninitialisedState(t *testing.T) {
	var s StreamHC
	_, err := s.CompressContinue([]byte("abc"), make([]byte, 16))
	if err != ErrUninitialisedState {
		t.Fatalf("err = %v, want ErrUninitialisedState", err)
	}
}

func TestStreamHC_AttachDictSelf(t *testing.T) {
	enc := NewStreamHC(9)
	enc.AttachDict(enc)

	_, err := enc.CompressContinue([]byte("abc"), make([]byte, 16))
	if err != ErrBadAlignment {
		t.Fatalf("err = %v, want ErrBadAlignment", err)
	}
}

func TestStreamDecode_SaveDict(t *testing.T) {
	enc := NewStream()
	dec := NewStreamDecode()

	block := []byte("stream decode save dict payload")
	dst := make([]byte, CompressBound(len(block)))
	n, err := enc.CompressContinue(block, dst)
	if err != nil {
		t.Fatalf("CompressContinue: %v", err)
	}
	if _, err := dec.DecompressContinue(dst[:n], make([]byte, len(block))); err != nil {
		t.Fatalf("DecompressContinue: %v", err)
	}

	saved := make([]byte, len(block))
	n2 := dec.SaveDict(saved)
	if n2 != len(block) || !bytes.Equal(saved, block) {
		t.Fatalf("SaveDict = %q, want %q", saved[:n2], block)
	}
}

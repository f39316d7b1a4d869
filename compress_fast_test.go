// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

import (
	"bytes"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lz4 block test")},
		{name: "all-literals", data: []byte("ABCD")},
		{name: "simple-repeat", data: []byte("ABCDABCD")},
		{name: "long-run", data: bytes.Repeat([]byte("A"), 100)},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "incompressible", data: pseudoRandom(4096)},
	}
}

// pseudoRandom returns a deterministic, non-repeating byte sequence without
// depending on math/rand (kept out of the ambient stack: this package has
// no randomized-input needs beyond fuzzing, which owns its own corpus).
func pseudoRandom(n int) []byte {
	out := make([]byte, n)
	state := uint32(2463534242)
	for i := range out {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		out[i] = byte(state)
	}
	return out
}

func TestCompressFastDecompressSafe_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		for _, accel := range []int{0, 1, 4, 65537} {
			t.Run(in.name, func(t *testing.T) {
				dst := make([]byte, CompressBound(len(in.data)))
				n, err := CompressFast(in.data, dst, accel)
				if err != nil {
					t.Fatalf("CompressFast: %v", err)
				}

				out := make([]byte, len(in.data))
				got, err := DecompressSafe(dst[:n], out)
				if err != nil {
					t.Fatalf("DecompressSafe: %v", err)
				}
				if got != len(in.data) {
					t.Fatalf("DecompressSafe wrote %d bytes, want %d", got, len(in.data))
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch for %q", in.name)
				}
			})
		}
	}
}

func TestCompressDefault_OutputTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("incompressible-ish-but-not-quite"), 10)
	_, err := CompressDefault(data, make([]byte, 1))
	if err != ErrOutputOverrun {
		t.Fatalf("err = %v, want ErrOutputOverrun", err)
	}
}

func TestCompressDestSize(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 500)
	dst := make([]byte, 64)

	written, consumed, err := CompressDestSize(data, dst)
	if err != nil {
		t.Fatalf("CompressDestSize: %v", err)
	}
	if written > len(dst) {
		t.Fatalf("wrote %d bytes, dst is only %d", written, len(dst))
	}
	if consumed <= 0 || consumed > len(data) {
		t.Fatalf("consumed = %d, want in (0, %d]", consumed, len(data))
	}

	out := make([]byte, consumed)
	got, err := DecompressSafe(dst[:written], out)
	if err != nil {
		t.Fatalf("DecompressSafe: %v", err)
	}
	if got != consumed || !bytes.Equal(out, data[:consumed]) {
		t.Fatalf("CompressDestSize round-trip mismatch")
	}
}

func TestCompressDestSize_Idempotent(t *testing.T) {
	data := bytes.Repeat([]byte("xyz"), 2000)
	dst := make([]byte, CompressBound(len(data)))

	written, consumed, err := CompressDestSize(data, dst)
	if err != nil {
		t.Fatalf("CompressDestSize: %v", err)
	}
	if consumed != len(data) {
		t.Fatalf("with ample room, consumed = %d, want %d", consumed, len(data))
	}

	written2, _, err := CompressDestSize(data, dst[:written])
	if err != nil {
		t.Fatalf("CompressDestSize (second pass): %v", err)
	}
	if written2 != written {
		t.Fatalf("CompressDestSize not idempotent: %d != %d", written2, written)
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(0))
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(9))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(7))

	f.Fuzz(func(t *testing.T, data []byte, accel uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		dst := make([]byte, CompressBound(len(data)))
		n, err := CompressFast(data, dst, int(accel))
		if err != nil {
			t.Fatalf("CompressFast failed: %v", err)
		}

		out := make([]byte, len(data))
		got, err := DecompressSafe(dst[:n], out)
		if err != nil {
			t.Fatalf("DecompressSafe failed: %v", err)
		}
		if got != len(data) || !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch")
		}
	})
}

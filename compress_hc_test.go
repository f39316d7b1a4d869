// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

import (
	"bytes"
	"testing"
)

func TestCompressHCDecompressSafe_RoundTrip(t *testing.T) {
	levels := []int{-1, 1, 3, 5, 9, 10, 11, 12, 99}

	for _, in := range testInputSet() {
		for _, level := range levels {
			t.Run(in.name, func(t *testing.T) {
				dst := make([]byte, CompressBound(len(in.data)))
				n, err := CompressHC(in.data, dst, level)
				if err != nil {
					t.Fatalf("CompressHC(level=%d): %v", level, err)
				}

				out := make([]byte, len(in.data))
				got, err := DecompressSafe(dst[:n], out)
				if err != nil {
					t.Fatalf("DecompressSafe(level=%d): %v", level, err)
				}
				if got != len(in.data) || !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch at level %d for %q", level, in.name)
				}
			})
		}
	}
}

// TestCompressHCOptimalMonotonicity is the spec.md §8 property 8 regression
// guard: the optimal parser (level 12) must not produce a larger block than
// the greedy parser (level 9) for the same input, across a small corpus of
// inputs with real redundancy for a parser to exploit.
func TestCompressHCOptimalMonotonicity(t *testing.T) {
	for _, in := range testInputSet() {
		if len(in.data) < 256 {
			continue
		}
		t.Run(in.name, func(t *testing.T) {
			dst9 := make([]byte, CompressBound(len(in.data)))
			n9, err := CompressHC(in.data, dst9, 9)
			if err != nil {
				t.Fatalf("CompressHC(level=9): %v", err)
			}

			dst12 := make([]byte, CompressBound(len(in.data)))
			n12, err := CompressHC(in.data, dst12, 12)
			if err != nil {
				t.Fatalf("CompressHC(level=12): %v", err)
			}

			if n12 > n9 {
				t.Fatalf("level 12 produced %d bytes, level 9 produced %d bytes for %q", n12, n9, in.name)
			}
		})
	}
}

func TestClampHCLevel(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 3}, {0, 3}, {1, 3}, {2, 3}, {3, 3}, {9, 9}, {12, 12}, {13, 12}, {1000, 12},
	}
	for _, tt := range tests {
		if got := clampHCLevel(tt.in); got != tt.want {
			t.Fatalf("clampHCLevel(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCompressHCFavorDecSpeed_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("favor-dec-speed-payload-"), 400)
	dst := make([]byte, CompressBound(len(data)))

	table := acquireHCTable()
	defer releaseHCTable(table)

	opts := DefaultHCOptions()
	opts.Level = 12
	opts.FavorDecSpeed = true

	n, err := compressHCCore(data, 0, 0, table, dst, opts)
	if err != nil {
		t.Fatalf("compressHCCore: %v", err)
	}

	out := make([]byte, len(data))
	got, err := DecompressSafe(dst[:n], out)
	if err != nil {
		t.Fatalf("DecompressSafe: %v", err)
	}
	if got != len(data) || !bytes.Equal(out, data) {
		t.Fatalf("favorDecSpeed round-trip mismatch")
	}
}

// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// Multiplicative hash over 4 input bytes (spec.md §4.3), grounded on the
// teacher's head2/head3 hashers in sliding_window.go (same "multiply, shift
// down to the table width" shape, different constant and input size — LZ4
// has no 2/3-byte match class, so only the 4-byte variant carries over).

const hash4Prime = 2654435761

// hash4 hashes the 4 bytes at p[0:4] to a tableLog-bit index.
func hash4(p []byte, tableLog uint) uint32 {
	v := readLE32(p)
	return (v * hash4Prime) >> (32 - tableLog)
}

// hc4TableLog is the HC engine's hash table width, in bits.
const hc4TableLog = 16

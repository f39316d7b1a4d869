// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

import "math/bits"

// count returns the number of leading bytes for which ip[i] == match[i],
// i = 0..k-1, with k bounded by limit (spec.md §4.2). It walks in 8-byte
// words using XOR plus trailing-zero-count, the same technique the teacher
// uses in its countEqualBytes (compress_1x_999.go), generalized here to two
// independently-bounded slices rather than one shared ring buffer.
func count(ip, match []byte, limit int) int {
	if limit > len(ip) {
		limit = len(ip)
	}
	if limit > len(match) {
		limit = len(match)
	}

	n := 0
	for n+8 <= limit {
		x := readLE64(ip[n:]) ^ readLE64(match[n:])
		if x != 0 {
			return n + bits.TrailingZeros64(x)>>3
		}
		n += 8
	}
	for n+4 <= limit {
		x := readLE32(ip[n:]) ^ readLE32(match[n:])
		if x != 0 {
			return n + bits.TrailingZeros32(x)>>3
		}
		n += 4
	}
	for n < limit && ip[n] == match[n] {
		n++
	}
	return n
}

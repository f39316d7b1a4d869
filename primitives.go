// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

import "encoding/binary"

// Unaligned little-endian reads/writes and wild-copy (spec.md §4.1). Go
// slice accesses are always "unaligned" from the language's point of view,
// so the primitives below only need to fix byte order, not alignment.

// readLE16 reads a little-endian uint16 at p[0:2].
func readLE16(p []byte) uint16 {
	return binary.LittleEndian.Uint16(p)
}

// writeLE16 writes v as little-endian at p[0:2].
func writeLE16(p []byte, v uint16) {
	binary.LittleEndian.PutUint16(p, v)
}

// readLE32 reads a little-endian uint32 at p[0:4].
func readLE32(p []byte) uint32 {
	return binary.LittleEndian.Uint32(p)
}

// readLE64 reads a little-endian uint64 at p[0:8].
func readLE64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}

// copy8 copies exactly 8 bytes from src to dst. Callers must reserve 8
// bytes of slack on both sides.
func copy8(dst, src []byte) {
	binary.LittleEndian.PutUint64(dst, binary.LittleEndian.Uint64(src))
}

// wildCopy copies dstLen bytes from src to dst, writing in 8-byte chunks
// while both slices have a full chunk's worth of backing capacity (spec.md
// §4.1, §9 "Wild-copy overrun"); a chunk may write past dstLen. Its only
// caller is encodeSequence — the decoder copies with the built-in copy. The
// exact tail copy below covers whatever the chunked loop leaves, so that
// Go's slice bounds (checked against cap, not len) are never violated for a
// buffer that ends exactly at dstLen.
func wildCopy(dst, src []byte, dstLen int) {
	n := 0
	for n < dstLen && n+wildCopyLength <= cap(dst) && n+wildCopyLength <= cap(src) {
		copy8(dst[n:n+wildCopyLength], src[n:n+wildCopyLength])
		n += wildCopyLength
	}
	if n < dstLen {
		copy(dst[n:dstLen], src[n:dstLen])
	}
}

// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

/*
Package lz4block implements the LZ4 block format: a lossless, byte-exact
compressor and decompressor operating on independent blocks, plus a
streaming facade that carries a sliding dictionary window across blocks.

Two compression engines are provided. FAST is a single-hash greedy
parser, tuned for throughput:

	n, err := lz4block.CompressDefault(src, dst)

HC is a hash-chain parser (levels 3..9) with an optional near-optimal
parser at the highest levels (10..12):

	n, err := lz4block.CompressHC(src, dst, 9)

# Decompress

The decoder requires the destination capacity to already be sized for
the expected output (blocks carry no length prefix of their own):

	n, err := lz4block.DecompressSafe(compressed, dst)

# Streaming

Stream and StreamHC carry a sliding window of up to 64 KiB across
multiple Compress*Continue calls so that later blocks can reference
earlier ones as a dictionary:

	s := lz4block.NewStream()
	n1, _ := s.CompressContinue(block1, dst1)
	n2, _ := s.CompressContinue(block2, dst2)

StreamDecode mirrors this on the decode side.

The LZ4 frame format, checksums, and CLI tooling are out of scope for
this package; it implements only the block format described above.
*/
package lz4block

// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// LZ4 block format constants: token layout, match bounds, and dictionary
// window parameters (spec.md §3, §6, GLOSSARY).

// Match length and literal/match rule constants.
const (
	minMatch        = 4                       // MINMATCH: minimum match length
	wildCopyLength  = 8                        // bytes per wildCopy step
	lastLiterals    = 5                        // LASTLITERALS: trailing literal-only bytes
	mfLimit         = wildCopyLength + minMatch // MFLIMIT: 12
	minLengthToSkip = mfLimit + 1               // below this, emit as one literal run
)

// Token nibble encoding.
const (
	mlBits  = 4          // bits in the token devoted to match length
	mlMask  = (1 << mlBits) - 1
	runBits = 8 - mlBits // bits devoted to literal length
	runMask = (1 << runBits) - 1
)

// Offset bounds.
const (
	minOffset = 1
	maxOffset = 0xFFFF // 65535, 16-bit little-endian wire offset
)

// maxInputSize is the largest source length any encoder in this package
// accepts (spec.md §6).
const maxInputSize = 0x7E000000 // 2,113,929,216

// windowSize is the maximum sliding-window / dictionary size the stream
// facades retain across blocks (spec.md §3, §4.10).
const windowSize = 64 * 1024

// compressBoundExtra is the constant term in CompressBound.
const compressBoundExtra = 16

// CompressBound returns the maximum compressed size for an input of n
// bytes (spec.md §4.4): n + n/255 + 16, bounded by maxInputSize. Returns 0
// if n is negative or larger than maxInputSize.
func CompressBound(n int) int {
	if n < 0 || n > maxInputSize {
		return 0
	}
	return n + n/255 + compressBoundExtra
}

// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// Sequence encoding (spec.md §4.8): token nibbles, length extensions, the
// 16-bit little-endian offset, and the final literal run. Grounded on the
// teacher's codeMatch/storeRun (compress9x.go) and copyLiteralRun
// (decompress.go), generalized from LZO's per-match-type opcodes to LZ4's
// single token-nibble-plus-extension scheme.

// splitLength splits a length value into a token nibble (0..15) and an
// extension amount (0 if nibble < 15).
func splitLength(n int) (nibble, extra int) {
	if n < runMask {
		return n, 0
	}
	return runMask, n - runMask
}

// extensionSize returns the number of bytes writeLengthExtension will emit
// for the given extra amount.
func extensionSize(extra int) int {
	return extra/255 + 1
}

// writeLengthExtension appends the zero-or-more 255 bytes followed by a
// final byte < 255 that encode extra (spec.md §3: "each contributing up to
// 255 and the run ending at the first byte < 255").
func writeLengthExtension(dst []byte, outPos *int, extra int) error {
	for extra >= 255 {
		if *outPos >= len(dst) {
			return ErrOutputOverrun
		}
		dst[*outPos] = 255
		*outPos++
		extra -= 255
	}
	if *outPos >= len(dst) {
		return ErrOutputOverrun
	}
	dst[*outPos] = byte(extra)
	*outPos++
	return nil
}

// sequenceEncodedSize returns the exact number of bytes encodeSequence will
// write for a sequence with the given literal length and match length
// (matchLen already includes minMatch).
func sequenceEncodedSize(litLen, matchLen int) int {
	_, litExtra := splitLength(litLen)
	_, mlExtra := splitLength(matchLen - minMatch)
	size := 1 + litLen + 2 // token + literals + offset
	if litLen >= runMask {
		size += extensionSize(litExtra)
	}
	if matchLen-minMatch >= mlMask {
		size += extensionSize(mlExtra)
	}
	return size
}

// encodeSequence writes one full sequence — literal run, offset, match — to
// dst at *outPos (spec.md §4.8 steps 1-5). lit is the literal payload
// (already sliced from the source window). Returns ErrOutputOverrun if dst
// runs out of room; on that error *outPos is left in an unspecified state
// and the caller (in fillOutput mode) must revert to a saved position.
func encodeSequence(dst []byte, outPos *int, lit []byte, offset, matchLen int) error {
	litNibble, litExtra := splitLength(len(lit))
	mlCode := matchLen - minMatch
	mlNibble, mlExtra := splitLength(mlCode)

	if *outPos >= len(dst) {
		return ErrOutputOverrun
	}
	dst[*outPos] = byte(litNibble<<4 | mlNibble)
	*outPos++

	if litNibble == 15 {
		if err := writeLengthExtension(dst, outPos, litExtra); err != nil {
			return err
		}
	}

	if len(lit) > 0 {
		if *outPos+len(lit) > len(dst) {
			return ErrOutputOverrun
		}
		wildCopy(dst[*outPos:], lit, len(lit))
		*outPos += len(lit)
	}

	if *outPos+2 > len(dst) {
		return ErrOutputOverrun
	}
	writeLE16(dst[*outPos:], uint16(offset)) //nolint:gosec // G115: offset bounded to maxOffset (65535) by callers
	*outPos += 2

	if mlNibble == 15 {
		if err := writeLengthExtension(dst, outPos, mlExtra); err != nil {
			return err
		}
	}

	return nil
}

// encodeLastLiterals writes the block's closing literal-only run: same
// length encoding as a normal sequence's literal nibble, but no offset and
// no match bytes (spec.md §3 "final literal run").
func encodeLastLiterals(dst []byte, outPos *int, lit []byte) error {
	nibble, extra := splitLength(len(lit))

	if *outPos >= len(dst) {
		return ErrOutputOverrun
	}
	dst[*outPos] = byte(nibble << 4)
	*outPos++

	if nibble == 15 {
		if err := writeLengthExtension(dst, outPos, extra); err != nil {
			return err
		}
	}

	if len(lit) > 0 {
		if *outPos+len(lit) > len(dst) {
			return ErrOutputOverrun
		}
		copy(dst[*outPos:*outPos+len(lit)], lit)
		*outPos += len(lit)
	}
	return nil
}

// lastLiteralsEncodedSize returns the exact byte count encodeLastLiterals
// would write for a literal run of length n.
func lastLiteralsEncodedSize(n int) int {
	_, extra := splitLength(n)
	size := 1 + n
	if n >= runMask {
		size += extensionSize(extra)
	}
	return size
}

// fitLastLiterals returns the length of the longest prefix of a litLen-byte
// literal run whose encodeLastLiterals encoding fits within room bytes,
// honoring the length-extension byte overhead (spec.md §4.8 "fillOutput",
// §9 Open Question 3). Returns 0 when not even an empty run fits.
func fitLastLiterals(litLen, room int) int {
	for n := litLen; n >= 0; n-- {
		if lastLiteralsEncodedSize(n) <= room {
			return n
		}
	}
	return 0
}

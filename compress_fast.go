// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// FAST engine: single-hash greedy match-finder with acceleration-driven
// skip-step search (spec.md §4.4). Grounded on the teacher's
// compress1xFastCore (compress_1x_fast.go) — same two-cursor skip-step
// shape, same "insert on every step, revalidate every candidate" discipline
// — generalized from LZO's opcode classes to LZ4's single token format and
// from a 2-probe dictionary scheme to spec.md's single hash table.

// fastCompressMode selects how compressFastCore reacts when the output
// buffer cannot hold the next sequence.
type fastCompressMode int

const (
	fastModeLimited   fastCompressMode = iota // stop with ErrOutputOverrun
	fastModeDestSize                          // stop cleanly, trim the final literal run to fit
)

// CompressFast compresses src into dst using the FAST engine. acceleration
// must be >= 1; callers passing 0 get the default of 1 (spec.md §4.4).
// Returns the number of bytes written to dst, or an error if dst is too
// small or src exceeds the format's maximum input size.
func CompressFast(src, dst []byte, acceleration int) (int, error) {
	if acceleration <= 0 {
		acceleration = 1
	}
	if len(src) > maxInputSize {
		return 0, ErrInputTooLarge
	}

	table := acquireFastTable()
	defer releaseFastTable(table)

	n, _, err := compressFastCore(src, 0, 0, table, dst, acceleration, fastModeLimited)
	return n, err
}

// CompressDefault compresses src into dst using acceleration 1.
func CompressDefault(src, dst []byte) (int, error) {
	return CompressFast(src, dst, 1)
}

// CompressDestSize compresses as much of src as fits within dst, returning
// the number of bytes written and the number of source bytes consumed
// (spec.md §4.4, §8 "destSize idempotence").
func CompressDestSize(src, dst []byte) (written int, consumed int, err error) {
	if len(src) > maxInputSize {
		return 0, 0, ErrInputTooLarge
	}

	table := acquireFastTable()
	defer releaseFastTable(table)

	return compressFastCore(src, 0, 0, table, dst, 1, fastModeDestSize)
}

// compressFastCore runs the FAST match-finder over buf[blockStart:] —
// addressing dictionary bytes in buf[lowLimit:blockStart] as a back-
// reference window — and writes the resulting block to dst. It is shared
// by the one-shot entry points above and by Stream.CompressContinue.
func compressFastCore(buf []byte, blockStart, lowLimit int, table *fastHashTable, dst []byte, acceleration int, mode fastCompressMode) (written int, consumed int, err error) {
	blockEnd := len(buf)
	srcLen := blockEnd - blockStart
	outPos := 0

	emitLastLiterals := func(anchor int) (int, int, error) {
		lit := buf[anchor:blockEnd]
		if mode == fastModeDestSize {
			room := len(dst) - outPos
			n := fitLastLiterals(len(lit), room)
			lit = lit[:n]
			if err := encodeLastLiterals(dst, &outPos, lit); err != nil {
				return 0, 0, err
			}
			return outPos, anchor + n - blockStart, nil
		}
		if outPos+lastLiteralsEncodedSize(len(lit)) > len(dst) {
			return 0, 0, ErrOutputOverrun
		}
		if err := encodeLastLiterals(dst, &outPos, lit); err != nil {
			return 0, 0, err
		}
		return outPos, srcLen, nil
	}

	if srcLen < minLengthToSkip {
		return emitLastLiterals(blockStart)
	}

	matchLimit := blockEnd - lastLiterals
	mflimitEnd := blockEnd - mfLimit

	anchor := blockStart
	ip := blockStart
	step := 1
	searches := acceleration << 6
	pendingCandidate := -1

	for {
		var matchPos int
		if pendingCandidate >= 0 {
			matchPos = pendingCandidate
			pendingCandidate = -1
		} else {
			matchPos = -1
			for ip < mflimitEnd {
				h := hash4(buf[ip:], fastHashLog)
				cand := table.table[h]
				table.table[h] = uint32(ip + 1) //nolint:gosec // G115: ip bounded by block size
				next := ip + step
				step = searches >> 6
				if step < 1 {
					step = 1
				}
				searches++
				if cand != 0 {
					pos := int(cand) - 1
					if ip-pos <= maxOffset && pos >= lowLimit && pos != ip && readLE32(buf[pos:]) == readLE32(buf[ip:]) {
						matchPos = pos
						break
					}
				}
				ip = next
			}
			if matchPos < 0 {
				break
			}
		}

		mStart, cStart := ip, matchPos
		for mStart > anchor && cStart > lowLimit && buf[mStart-1] == buf[cStart-1] {
			mStart--
			cStart--
		}

		litLen := mStart - anchor
		limit := matchLimit - mStart
		matchLen := count(buf[mStart:], buf[cStart:], limit)
		offset := mStart - cStart
		if offset < minOffset || offset > maxOffset {
			return 0, 0, ErrCompressInternal
		}

		if mode == fastModeDestSize {
			need := sequenceEncodedSize(litLen, matchLen)
			if outPos+need > len(dst) {
				return emitLastLiterals(anchor)
			}
		} else if outPos+sequenceEncodedSize(litLen, matchLen) > len(dst) {
			return 0, 0, ErrOutputOverrun
		}

		if err := encodeSequence(dst, &outPos, buf[anchor:mStart], offset, matchLen); err != nil {
			return 0, 0, err
		}

		newPos := mStart + matchLen
		anchor = newPos
		ip = newPos

		if ip >= mflimitEnd {
			break
		}

		if newPos-2 >= blockStart && newPos-2+4 <= blockEnd {
			h2 := hash4(buf[newPos-2:], fastHashLog)
			table.table[h2] = uint32(newPos - 2 + 1) //nolint:gosec // G115: bounded by block size
		}

		h := hash4(buf[ip:], fastHashLog)
		cand := table.table[h]
		table.table[h] = uint32(ip + 1) //nolint:gosec // G115: bounded by block size
		if cand != 0 {
			pos := int(cand) - 1
			if ip-pos <= maxOffset && pos >= lowLimit && pos != ip && readLE32(buf[pos:]) == readLE32(buf[ip:]) {
				pendingCandidate = pos
			}
		}

		step = 1
	}

	return emitLastLiterals(anchor)
}

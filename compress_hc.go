// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// HC engine: greedy parser with up-to-3-position lookahead for levels 3-9,
// dispatching to the optimal parser (optimal.go) for levels 10-12 (spec.md
// §4.6, §6). Grounded on the teacher's lzoCompressor main loop
// (compress9x.go: maxahead lookahead, codeMatch/storeRun), generalized from
// LZO's N-step lazy matching to LZ4HC's bounded 3-step reconciliation and
// from the teacher's single hash-chain table to hcTable's widened search.

// CompressHC compresses src into dst using the HC engine at the given
// level (clamped to [3,12] per spec.md §6). Returns the number of bytes
// written, or an error if dst is too small or src exceeds the format's
// maximum input size.
func CompressHC(src, dst []byte, level int) (int, error) {
	if len(src) > maxInputSize {
		return 0, ErrInputTooLarge
	}

	opts := DefaultHCOptions()
	opts.Level = clampHCLevel(level)

	table := acquireHCTable()
	defer releaseHCTable(table)

	return compressHCCore(src, 0, 0, table, dst, opts)
}

// compressHCCore runs the HC parser over buf[blockStart:], addressing
// dictionary bytes in buf[lowLimit:blockStart] as a back-reference window,
// and writes the resulting block to dst. Shared by CompressHC and
// StreamHC.CompressContinue.
func compressHCCore(buf []byte, blockStart, lowLimit int, table *hcTable, dst []byte, opts HCOptions) (int, error) {
	params := levelParamsFor(opts.Level)
	if params.useOptimal {
		return compressOptimalCore(buf, blockStart, lowLimit, table, dst, opts, params)
	}

	blockEnd := len(buf)
	srcLen := blockEnd - blockStart
	outPos := 0

	if srcLen < minLengthToSkip {
		lit := buf[blockStart:blockEnd]
		if lastLiteralsEncodedSize(len(lit)) > len(dst) {
			return 0, ErrOutputOverrun
		}
		if err := encodeLastLiterals(dst, &outPos, lit); err != nil {
			return 0, err
		}
		return outPos, nil
	}

	matchLimit := blockEnd - lastLiterals
	mflimitEnd := blockEnd - mfLimit

	anchor := blockStart
	ip := blockStart

	for ip < mflimitEnd {
		ml, start, matchPos := table.insertAndGetWiderMatch(buf, ip, lowLimit, matchLimit, minMatch-1, params.attempts, params.patternAnalysis, opts.FavorDecSpeed, anchor)
		if matchPos < 0 {
			ip++
			continue
		}

		// The lookahead probe always advances from ip (not start, the
		// catch-back-adjusted match start): start only matters for the
		// sequence finally emitted below.
		for lookahead := 0; lookahead < 3 && ml < params.sufficientLen && ip+1 < mflimitEnd; lookahead++ {
			ml2, start2, matchPos2 := table.insertAndGetWiderMatch(buf, ip+1, lowLimit, matchLimit, ml, params.attempts, params.patternAnalysis, opts.FavorDecSpeed, anchor)
			if matchPos2 < 0 || ml2 <= ml {
				break
			}
			ip++
			ml = ml2
			start = start2
			matchPos = matchPos2
		}

		litLen := start - anchor
		offset := start - matchPos
		if offset < minOffset || offset > maxOffset {
			return 0, ErrCompressInternal
		}

		if outPos+sequenceEncodedSize(litLen, ml) > len(dst) {
			return 0, ErrOutputOverrun
		}
		if err := encodeSequence(dst, &outPos, buf[anchor:start], offset, ml); err != nil {
			return 0, err
		}

		ip = start + ml
		anchor = ip
	}

	lit := buf[anchor:blockEnd]
	if outPos+lastLiteralsEncodedSize(len(lit)) > len(dst) {
		return 0, ErrOutputOverrun
	}
	if err := encodeLastLiterals(dst, &outPos, lit); err != nil {
		return 0, err
	}
	return outPos, nil
}

// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// Optimal parser for HC levels 10-12 (spec.md §4.7): a price-based
// shortest-path search over a sliding window, rather than the greedy
// parser's local lookahead. Grounded directly on
// original_source/src/sanitized/lz4hc.c:1278 LZ4HC_compress_optimal's
// opt[] price-table bookkeeping, carried over in the teacher's idiom (a
// plain array of small structs and explicit loops, no generics) per
// SPEC_FULL.md §4.7.
//
// optTableSize bounds the price table: positions are tracked relative to
// the round's starting ip, up to the largest span a single round's search
// can cover (spec.md §5 "a price table of 4,099 cells").
const optTableSize = 4099

// optCell is one price-table entry: the cheapest known way to reach this
// position (relative to the round's ip) from that ip.
type optCell struct {
	price  int // total encoded bytes to reach this position
	mlen   int // length of the step that reaches this cell; 1 means a single literal byte
	off    int // match offset for that step (0 for a literal step)
	litlen int // length of the literal run ending at this cell, when mlen == 1
}

// optPriceTable is the pooled backing array for one round's price table
// (workspace.go).
type optPriceTable [optTableSize]optCell

// literalsPrice returns the encoded byte cost of a literal run of n bytes
// (spec.md §4.7).
func literalsPrice(n int) int {
	price := n
	if n >= runMask {
		price += 1 + (n-runMask)/255
	}
	return price
}

// sequencePrice returns the encoded byte cost of a full sequence (token,
// offset, any length-extension bytes) given its literal and match lengths;
// matchLen already includes minMatch (spec.md §4.7).
func sequencePrice(litLen, matchLen int) int {
	price := 3 + literalsPrice(litLen) // token + 2-byte offset + literals
	mlCode := matchLen - minMatch
	if mlCode >= mlMask {
		price += 1 + (mlCode-mlMask)/255
	}
	return price
}

// findForwardMatch finds the best match at ip without catch-back: the
// price table's cells are indexed by position relative to ip, so a match
// whose real start crept backward (hc_table.go's catch-back) would break
// that indexing. Passing litStart == ip to insertAndGetWiderMatch disables
// catch-back outright, since the condition "start > litStart" is false
// from the first step.
func findForwardMatch(table *hcTable, buf []byte, ip, lowLimit, matchLimit, longest, maxAttempts int, patternAnalysis, favorDecSpeed bool) (length, pos int) {
	l, _, p := table.insertAndGetWiderMatch(buf, ip, lowLimit, matchLimit, longest, maxAttempts, patternAnalysis, favorDecSpeed, ip)
	return l, p
}

func compressOptimalCore(buf []byte, blockStart, lowLimit int, table *hcTable, dst []byte, opts HCOptions, params hcLevelParams) (int, error) {
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

	opt := acquireOptPriceTable()
	defer releaseOptPriceTable(opt)

	for ip < mflimitEnd {
		litLen := ip - anchor

		firstLen, firstPos := findForwardMatch(table, buf, ip, lowLimit, matchLimit, minMatch-1, params.attempts, params.patternAnalysis, opts.FavorDecSpeed)
		if firstPos < 0 {
			ip++
			continue
		}
		firstOff := ip - firstPos

		if firstLen >= params.sufficientLen || firstLen >= optTableSize-4 {
			// Step 1: a sufficiently long match at ip is emitted directly,
			// with no price table involved at all.
			if firstOff < minOffset || firstOff > maxOffset {
				return 0, ErrCompressInternal
			}
			if outPos+sequenceEncodedSize(litLen, firstLen) > len(dst) {
				return 0, ErrOutputOverrun
			}
			if err := encodeSequence(dst, &outPos, buf[anchor:ip], firstOff, firstLen); err != nil {
				return 0, err
			}
			ip += firstLen
			anchor = ip
			continue
		}

		var cur, lastMatchPos, bestMlen, bestOff int

		{
			// Step 2: seed the table from the first match.
			for r := 0; r < minMatch; r++ {
				opt[r] = optCell{price: literalsPrice(litLen + r), mlen: 1, litlen: litLen + r}
			}
			for mlen := minMatch; mlen <= firstLen; mlen++ {
				opt[mlen] = optCell{price: sequencePrice(litLen, mlen), mlen: mlen, off: firstOff, litlen: litLen}
			}
			lastMatchPos = firstLen
			filled := lastMatchPos
			for add := 1; add <= 3 && filled+1 < optTableSize; add++ {
				filled++
				opt[filled] = optCell{price: opt[lastMatchPos].price + literalsPrice(add), mlen: 1, litlen: add}
			}

			// extendFill keeps every cell up to pos initialized with at
			// least a valid (if not optimal) literal-chain fallback price,
			// so a later match whose sequence-price writes start more than
			// minMatch-1 cells past the last filled cell never leaves a gap
			// the cur loop would read uninitialized.
			extendFill := func(pos int) {
				for filled < pos && filled+1 < optTableSize {
					filled++
					opt[filled] = optCell{price: opt[filled-1].price + literalsPrice(1), mlen: 1, litlen: 1}
				}
			}

			// Step 3: fill forward.
			jumped := false
			for cur = 1; cur < lastMatchPos; cur++ {
				curIP := ip + cur
				if curIP >= mflimitEnd {
					break
				}

				skip := opt[cur+1].price <= opt[cur].price
				if params.fullUpdate && cur+minMatch < optTableSize {
					skip = skip && opt[cur+minMatch].price >= opt[cur].price+3
				}
				if skip {
					continue
				}

				newLen, newPos := findForwardMatch(table, buf, curIP, lowLimit, matchLimit, minMatch-1, params.attempts, params.patternAnalysis, opts.FavorDecSpeed)
				if newPos < 0 {
					continue
				}
				newOff := curIP - newPos

				if cur+newLen >= optTableSize-4 {
					lastMatchPos = cur + 1
					bestMlen, bestOff = newLen, newOff
					jumped = true
					break
				}

				// Guarantee every cell the writes below touch (up to
				// cur+newLen) already has a valid fallback price, even if
				// this match's reach jumps past what earlier iterations have
				// filled so far.
				extendFill(cur + newLen)

				baseLitlen := 0
				if opt[cur].mlen == 1 {
					baseLitlen = opt[cur].litlen
				}
				for l := 1; l < minMatch; l++ {
					pos := cur + l
					if pos >= optTableSize {
						break
					}
					price := opt[cur].price - literalsPrice(baseLitlen) + literalsPrice(baseLitlen+l)
					if price < opt[pos].price {
						opt[pos] = optCell{price: price, mlen: 1, litlen: baseLitlen + l}
					}
				}
				for mlen := minMatch; mlen <= newLen; mlen++ {
					pos := cur + mlen
					if pos >= optTableSize {
						break
					}
					price := opt[cur].price + sequencePrice(0, mlen)
					if price < opt[pos].price || (opts.FavorDecSpeed && price == opt[pos].price-1) {
						opt[pos] = optCell{price: price, mlen: mlen, off: newOff}
					}
				}
				if cur+newLen > lastMatchPos && cur+newLen < optTableSize {
					lastMatchPos = cur + newLen
					extendFill(lastMatchPos + minMatch - 1)
				}
			}

			if !jumped {
				bestMlen = opt[lastMatchPos].mlen
				bestOff = opt[lastMatchPos].off
				cur = lastMatchPos - bestMlen
			}
		}

		// Step 4: trace back from lastMatchPos, rewriting each cell on the
		// selected path with the step that was chosen to reach it.
		candidate := cur
		selMlen, selOff := bestMlen, bestOff
		for {
			nextMlen := opt[candidate].mlen
			nextOff := opt[candidate].off
			opt[candidate].mlen = selMlen
			opt[candidate].off = selOff
			selMlen, selOff = nextMlen, nextOff
			if nextMlen > candidate {
				break
			}
			candidate -= nextMlen
		}

		// Traverse forward, emitting the chosen sequence of literal steps
		// and matches; literal-only cells (mlen == 1) advance ip by one.
		rPos := 0
		for rPos < lastMatchPos {
			mlen := opt[rPos].mlen
			if mlen == 1 {
				ip++
				rPos++
				continue
			}
			off := opt[rPos].off
			litLen := ip - anchor
			if off < minOffset || off > maxOffset {
				return 0, ErrCompressInternal
			}
			if outPos+sequenceEncodedSize(litLen, mlen) > len(dst) {
				return 0, ErrOutputOverrun
			}
			if err := encodeSequence(dst, &outPos, buf[anchor:ip], off, mlen); err != nil {
				return 0, err
			}
			ip += mlen
			anchor = ip
			rPos += mlen
		}
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

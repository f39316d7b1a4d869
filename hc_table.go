// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// HC engine hash+chain table (spec.md §3 "HC hash and chain tables", §4.5,
// §4.6). Grounded on the teacher's slidingWindowDict
// (sliding_window.go: hashHead2/chainNext/hashChainLen/searchBestMatch) and
// hcCompressorDict (compress_1x_999.go: hcMatch3Table/findBetterMatch) —
// same "head table of latest position per hash, chain table of deltas to
// the previous occurrence" shape, collapsed to LZ4's single 4-byte hash
// (LZ4 has no 2/3-byte match class, unlike the teacher's LZO1X format).
type hcTable struct {
	hashTable  [1 << hc4TableLog]uint32
	chainTable [windowSize]uint16
}

func (t *hcTable) reset() {
	clear(t.hashTable[:])
	clear(t.chainTable[:])
}

// insert records pos (an absolute index into the caller's window buffer)
// as the newest occurrence of the hash of buf[pos:pos+4], chaining it to
// whatever occupied that hash slot before.
func (t *hcTable) insert(buf []byte, pos int) {
	h := hash4(buf[pos:], hc4TableLog)
	prev := t.hashTable[h]
	if prev != 0 {
		prevPos := int(prev) - 1
		delta := pos - prevPos
		if delta > 0 && delta <= maxOffset {
			t.chainTable[pos&(windowSize-1)] = uint16(delta) //nolint:gosec // G115: delta bounded by maxOffset above
		}
	}
	t.hashTable[h] = uint32(pos + 1) //nolint:gosec // G115: pos bounded by window size
}

// insertAndGetWiderMatch inserts ip into the table, then walks the hash
// chain rooted at ip's hash looking for a match longer than longest
// (spec.md §4.6 "widening search"). attempts bounds the chain walk
// (levels.go supplies the per-level budget); patternAnalysis shortens the
// walk when the chain is a degenerate, tightly periodic run (e.g. long
// byte repeats) so a handful of attempts doesn't get spent re-deriving the
// same stride; favorDecSpeed skips candidates less than 8 bytes back and
// clamps any match found in [19,36] down to 18,
// trading a slightly shorter match for a cheaper decode (spec.md §6).
//
// Once a candidate beats bestLen, it is caught back: both sides are walked
// leftward while the preceding bytes still match, bounded by litStart (the
// caller's current literal-run start — catch-back must never reclaim bytes
// already committed to an earlier sequence) and lowLimit (spec.md §4.5
// "catch back while ip[−1] == match[−1]"). Passing litStart == ip disables
// catch-back outright, which optimal.go relies on to keep its price table's
// ip-relative position indexing exact.
//
// Returns the best match length found (>= longest if nothing better turns
// up), the (possibly caught-back) position the match actually starts at,
// and its source position, or bestPos == -1 if nothing beat longest. When
// bestPos == -1, bestStart == ip.
func (t *hcTable) insertAndGetWiderMatch(buf []byte, ip, lowLimit, matchLimit, longest, maxAttempts int, patternAnalysis, favorDecSpeed bool, litStart int) (bestLen, bestStart, bestPos int) {
	h := hash4(buf[ip:], hc4TableLog)
	matchPos := int(t.hashTable[h]) - 1
	t.insert(buf, ip)

	bestLen = longest
	bestStart = ip
	bestPos = -1
	attempts := maxAttempts
	lastDelta := -1

	for matchPos >= lowLimit && ip-matchPos <= maxOffset && attempts > 0 {
		attempts--

		if (!favorDecSpeed || ip-matchPos >= 8) && matchPos+bestLen < len(buf) && ip+bestLen < matchLimit && buf[matchPos+bestLen] == buf[ip+bestLen] {
			l := count(buf[ip:matchLimit], buf[matchPos:], matchLimit-ip)
			if l > bestLen {
				matchEnd := ip + l
				start, pos := ip, matchPos
				for start > litStart && pos > lowLimit && buf[start-1] == buf[pos-1] {
					start--
					pos--
					l++
				}
				bestLen = l
				bestStart = start
				bestPos = pos
				if favorDecSpeed && bestLen >= 19 && bestLen <= 36 {
					bestLen = 18
				}
				if matchEnd >= matchLimit {
					break
				}
			}
		}

		deltaNext := t.chainTable[matchPos&(windowSize-1)]
		if deltaNext == 0 {
			break
		}
		if patternAnalysis && int(deltaNext) == lastDelta {
			attempts -= 4
		}
		lastDelta = int(deltaNext)
		matchPos -= int(deltaNext)
	}

	return bestLen, bestStart, bestPos
}

// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// HC compression level table (spec.md §6 "Levels"). Grounded on the
// teacher's compressLevelParams fixed-level array (level_params.go) — same
// "one const array indexed by level, each entry a small params struct"
// shape, generalized from LZO's single attempts/maxahead knob to LZ4 HC's
// attempts/sufficientLen/patternAnalysis/optimal-parser switch.
type hcLevelParams struct {
	attempts        int  // hash-chain walk budget per insertAndGetWiderMatch call
	sufficientLen   int  // a match at least this long stops the search early
	patternAnalysis bool // shorten the chain walk on degenerate periodic runs
	useOptimal      bool // levels 10-12 use the price-based parser instead of greedy
	fullUpdate      bool // level 12 only: narrows the optimal parser's per-position skip condition (spec.md §4.7)
}

// levels 1 and 2 are not distinct HC tunings; clampHCLevel folds them to 3.
var hcLevelTable = [13]hcLevelParams{
	3:  {attempts: 4, sufficientLen: 8},
	4:  {attempts: 8, sufficientLen: 8},
	5:  {attempts: 16, sufficientLen: 8},
	6:  {attempts: 32, sufficientLen: 8},
	7:  {attempts: 64, sufficientLen: 16},
	8:  {attempts: 128, sufficientLen: 16, patternAnalysis: true},
	9:  {attempts: 256, sufficientLen: 16, patternAnalysis: true},
	10: {attempts: 96, sufficientLen: 64, patternAnalysis: true, useOptimal: true},
	11: {attempts: 512, sufficientLen: 128, patternAnalysis: true, useOptimal: true},
	12: {attempts: 8192, sufficientLen: 4096, patternAnalysis: true, useOptimal: true, fullUpdate: true},
}

func levelParamsFor(level int) hcLevelParams {
	return hcLevelTable[clampHCLevel(level)]
}

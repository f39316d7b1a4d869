// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// Version numbering (spec.md §6): numeric = major*10000 + minor*100 + patch.
const (
	VersionMajor  = 1
	VersionMinor  = 10
	VersionPatch  = 0
	Version       = VersionMajor*10000 + VersionMinor*100 + VersionPatch
	VersionString = "1.10.0"
)

// CompressOptions configures a one-shot FAST-engine compression.
type CompressOptions struct {
	// Acceleration raises the skip step on repeated misses, trading ratio for
	// speed on incompressible data. 0 selects the default of 1.
	Acceleration int
}

// DefaultCompressOptions returns options for the default acceleration (1).
func DefaultCompressOptions() CompressOptions {
	return CompressOptions{Acceleration: 1}
}

// HCOptions configures an HC-engine compression.
type HCOptions struct {
	// Level is 1..12 (spec.md §6). Levels 1..2 behave like level 3. Levels
	// 3..9 use the hash-chain parser; 10..12 use the optimal parser.
	Level int
	// FavorDecSpeed rejects HC offsets below 8 and clamps optimal-parser
	// match lengths in 19..36 down to 18, trading ratio for decode speed
	// (spec.md §4.5, §4.7).
	FavorDecSpeed bool
}

// DefaultHCOptions returns options for level 9 (best ratio without the
// optimal parser's extra cost).
func DefaultHCOptions() HCOptions {
	return HCOptions{Level: 9}
}

func clampHCLevel(level int) int {
	if level < 1 {
		return 3
	}
	if level == 1 || level == 2 {
		return 3
	}
	if level > 12 {
		return 12
	}
	return level
}

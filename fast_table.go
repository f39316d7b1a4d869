// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// fastHashTable is the FAST engine's single hash table (spec.md §3 "FAST
// hash table", §4.4). The reference implementation picks one of three
// physical representations per call (byPtr/byU32/byU16) to save memory and
// avoid pointer-width overhead in C. spec.md §9's Design Notes direct a Go
// port to collapse this into one representation: positions as uint32
// indices into a logical window, resolved to bytes through the shared
// window helper (window.go's slidingWindow). This table is always the
// byU32-equivalent; see DESIGN.md Open Question 1 for the full rationale.
//
// An unoccupied slot holds zero, which after rebasing resolves to "older
// than the window" — every candidate is revalidated by a 4-byte equality
// test before use, so a stale zero entry never corrupts correctness
// (grounded on the same "stale dict entry is harmless, always revalidated"
// invariant the teacher documents on its dict []int32 in compress_1x_fast.go).
const fastHashLog = 16

type fastHashTable struct {
	table [1 << fastHashLog]uint32
}

func (t *fastHashTable) reset() {
	clear(t.table[:])
}

// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

import "sync"

// Pooled scratch state for the three compression engines (spec.md §5
// "Concurrency & Resource Model"). Grounded on the teacher's
// hcDictPool/hcCompressBufferPool/slidingWindowDict pool
// (sliding_window_pool.go, compress_1x_999.go): a sync.Pool per workspace
// type, a typed acquire/release pair hiding the type assertion, and a reset
// on acquire rather than on release (so a panic mid-compress never leaks a
// dirty table back into the pool).

var fastTablePool = sync.Pool{
	New: func() any { return new(fastHashTable) },
}

func acquireFastTable() *fastHashTable {
	t := fastTablePool.Get().(*fastHashTable)
	t.reset()
	return t
}

func releaseFastTable(t *fastHashTable) {
	fastTablePool.Put(t)
}

var hcTablePool = sync.Pool{
	New: func() any { return new(hcTable) },
}

func acquireHCTable() *hcTable {
	t := hcTablePool.Get().(*hcTable)
	t.reset()
	return t
}

func releaseHCTable(t *hcTable) {
	hcTablePool.Put(t)
}

// optPriceTable is the optimal parser's 4,099-cell price table (spec.md §5:
// "acquired per block"); pooled the same way as fastHashTable/hcTable. At
// roughly 4099 * 32 bytes (about 128 KiB) it is the smallest of the three,
// against 256 KiB for fastHashTable and 384 KiB for hcTable.
var optPriceTablePool = sync.Pool{
	New: func() any { return new(optPriceTable) },
}

func acquireOptPriceTable() *optPriceTable {
	return optPriceTablePool.Get().(*optPriceTable)
}

func releaseOptPriceTable(t *optPriceTable) {
	optPriceTablePool.Put(t)
}

// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// slidingWindow is the shared backing-buffer abstraction for Stream and
// StreamHC (spec.md §4.10 "sliding window of up to 65,536 bytes"). Grounded
// on the teacher's slidingWindowDict (sliding_window.go: init/accept/
// removeNode bookkeeping around a fixed ring) and its pool
// (sliding_window_pool.go) — same "one owned buffer the engine appends new
// block bytes into, periodically compacted so it never grows unbounded"
// shape, adapted from LZO1X's explicit ring-buffer indices to a single
// append-and-occasionally-rebase buffer, which is simpler to reason about
// in Go and sufficient because every match offset here is just a byte
// distance, not a pointer: as documented in SPEC_FULL.md, the encoder
// always operates in an internally normalized "prefix" layout (dictionary
// bytes immediately followed by block bytes in one buffer) rather than
// modeling the reference implementation's separate prefix/external-dict
// memory layouts — the decoder still implements both regimes explicitly
// (decompress.go), since StreamDecode treats each prior block as a
// genuinely separate external dictionary rather than requiring a
// contiguous caller-supplied buffer across calls.
type slidingWindow struct {
	buf        []byte
	blockStart int
	lowLimit   int
}

func (w *slidingWindow) reset() {
	w.buf = w.buf[:0]
	w.blockStart = 0
	w.lowLimit = 0
}

// loadDict seeds the window with up to the last windowSize bytes of dict,
// returning the number of bytes actually retained.
func (w *slidingWindow) loadDict(dict []byte) int {
	if len(dict) > windowSize {
		dict = dict[len(dict)-windowSize:]
	}
	w.buf = append(w.buf[:0], dict...)
	w.blockStart = len(w.buf)
	w.lowLimit = 0
	return len(w.buf)
}

// beginBlock appends src to the window and returns the buffer the engine
// should search/encode against, along with the position src starts at and
// the oldest position still valid as a back-reference. rebased reports
// whether the backing buffer was compacted, which invalidates any absolute
// position a caller's hash table has cached (the caller must reset it).
func (w *slidingWindow) beginBlock(src []byte) (buf []byte, blockStart, lowLimit int, rebased bool) {
	rebased = w.compact()
	w.buf = append(w.buf[:w.blockStart], src...)
	return w.buf, w.blockStart, w.lowLimit, rebased
}

// endBlock commits the just-encoded block: everything up to the new end of
// buf becomes eligible dictionary content for the next block, subject to
// the windowSize back-reference horizon.
func (w *slidingWindow) endBlock() {
	w.blockStart = len(w.buf)
	if w.blockStart > windowSize {
		w.lowLimit = w.blockStart - windowSize
	}
}

// compact rebases the buffer once it has grown far enough past windowSize
// that trimming the stale prefix is worthwhile, keeping memory use bounded
// for long-running streams (spec.md §4.10 "rebasing when currentOffset
// grows too large").
const compactThreshold = 4 * windowSize

func (w *slidingWindow) compact() bool {
	if w.blockStart <= compactThreshold {
		return false
	}
	keepFrom := w.blockStart - windowSize
	if keepFrom < 0 {
		keepFrom = 0
	}
	copy(w.buf, w.buf[keepFrom:w.blockStart])
	w.buf = w.buf[:w.blockStart-keepFrom]
	w.blockStart -= keepFrom
	w.lowLimit = 0
	return true
}

// saveDict copies up to len(out) of the most recently committed window
// bytes into out, for reuse as the starting dictionary of an independent
// stream. Unlike the reference implementation's pointer rewiring, this
// always copies: simpler and equally correct for the documented use case
// of exporting a dictionary snapshot.
func (w *slidingWindow) saveDict(out []byte) int {
	start := w.blockStart - len(out)
	if start < w.lowLimit {
		start = w.lowLimit
	}
	if start < 0 {
		start = 0
	}
	n := w.blockStart - start
	copy(out[:n], w.buf[start:w.blockStart])
	return n
}

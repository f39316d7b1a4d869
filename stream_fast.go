// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// Stream is a FAST-engine streaming compressor: each CompressContinue call
// encodes one block against a sliding window carrying up to the last
// windowSize bytes of previously compressed data as an implicit dictionary
// (spec.md §4.10). Grounded on the teacher's slidingWindowDict-backed
// compressor state (sliding_window.go, sliding_window_pool.go).
type Stream struct {
	window      slidingWindow
	table       fastHashTable
	initialized bool
}

// NewStream returns a ready-to-use FAST streaming compressor with an empty
// dictionary.
func NewStream() *Stream {
	s := &Stream{}
	s.Reset()
	return s
}

// Reset clears the window and match table, discarding any loaded or
// accumulated dictionary.
func (s *Stream) Reset() {
	s.window.reset()
	s.table.reset()
	s.initialized = true
}

// LoadDict seeds the stream's window with dict and indexes every third
// position of it in the match table, returning the number of bytes retained
// (at most windowSize). Call before the first CompressContinue.
func (s *Stream) LoadDict(dict []byte) int {
	n := s.window.loadDict(dict)
	s.table.reset()
	for pos := 0; pos+minMatch <= n; pos += 3 {
		h := hash4(s.window.buf[pos:], fastHashLog)
		s.table.table[h] = uint32(pos + 1) //nolint:gosec // G115: pos bounded by windowSize
	}
	return n
}

// CompressContinue compresses src as the next block in the stream,
// referencing the window's accumulated dictionary for back-references.
func (s *Stream) CompressContinue(src, dst []byte) (int, error) {
	if !s.initialized {
		return 0, ErrUninitialisedState
	}
	if len(src) > maxInputSize {
		return 0, ErrInputTooLarge
	}
	buf, blockStart, lowLimit, rebased := s.window.beginBlock(src)
	if rebased {
		s.table.reset()
	}
	n, _, err := compressFastCore(buf, blockStart, lowLimit, &s.table, dst, 1, fastModeLimited)
	if err != nil {
		return 0, err
	}
	s.window.endBlock()
	return n, nil
}

// SaveDict copies up to len(buf) of the stream's most recent window
// contents into buf for reuse as an independent stream's starting
// dictionary, returning the number of bytes written.
func (s *Stream) SaveDict(buf []byte) int {
	return s.window.saveDict(buf)
}

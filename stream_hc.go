// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// StreamHC is an HC-engine streaming compressor, the chain-table analogue
// of Stream (spec.md §4.10, §4.6). Grounded on the teacher's
// hcCompressorDict pooled state (compress_1x_999.go).
type StreamHC struct {
	window      slidingWindow
	table       hcTable
	opts        HCOptions
	initialized bool
	badAligned  bool
}

// NewStreamHC returns a ready-to-use HC streaming compressor at the given
// level (clamped to [3,12]).
func NewStreamHC(level int) *StreamHC {
	s := &StreamHC{opts: DefaultHCOptions()}
	s.opts.Level = clampHCLevel(level)
	s.window.reset()
	s.table.reset()
	s.initialized = true
	return s
}

// SetLevel changes the compression level used by subsequent
// CompressContinue calls.
func (s *StreamHC) SetLevel(level int) {
	s.opts.Level = clampHCLevel(level)
}

// LoadDict seeds the stream's window with dict and rebuilds the hash chain
// table over it, returning the number of bytes retained.
func (s *StreamHC) LoadDict(dict []byte) int {
	n := s.window.loadDict(dict)
	s.rebuildTable()
	return n
}

// AttachDict borrows dict's current window contents as this stream's
// dictionary without mutating dict. Unlike the reference implementation's
// shared, non-owning dictCtx table, this copies dict's window bytes into
// this stream's own window and rebuilds its table from them — observably
// equivalent (the same bytes become available as back-reference targets)
// at the cost of the table-sharing performance optimization; see
// DESIGN.md.
func (s *StreamHC) AttachDict(dict *StreamHC) {
	if dict == nil {
		return
	}
	if dict == s {
		// a stream cannot be its own dictionary context; flag it so the next
		// CompressContinue call reports it rather than reading a window mid-mutation.
		s.badAligned = true
		return
	}
	content := dict.window.buf[dict.window.lowLimit:dict.window.blockStart]
	s.LoadDict(content)
}

func (s *StreamHC) rebuildTable() {
	s.table.reset()
	buf := s.window.buf
	for pos := 0; pos+minMatch <= s.window.blockStart; pos++ {
		s.table.insert(buf, pos)
	}
}

// CompressContinue compresses src as the next block in the stream,
// referencing the window's accumulated dictionary for back-references.
func (s *StreamHC) CompressContinue(src, dst []byte) (int, error) {
	if !s.initialized {
		return 0, ErrUninitialisedState
	}
	if s.badAligned {
		return 0, ErrBadAlignment
	}
	if len(src) > maxInputSize {
		return 0, ErrInputTooLarge
	}
	buf, blockStart, lowLimit, rebased := s.window.beginBlock(src)
	if rebased {
		s.table.reset()
		for pos := 0; pos+minMatch <= blockStart; pos++ {
			s.table.insert(buf, pos)
		}
	}
	n, err := compressHCCore(buf, blockStart, lowLimit, &s.table, dst, s.opts)
	if err != nil {
		return 0, err
	}
	s.window.endBlock()
	return n, nil
}

// SaveDict copies up to len(buf) of the stream's most recent window
// contents into buf, returning the number of bytes written.
func (s *StreamHC) SaveDict(buf []byte) int {
	return s.window.saveDict(buf)
}

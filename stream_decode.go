// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// StreamDecode is the decoder counterpart to Stream/StreamHC: each
// DecompressContinue call decodes one block, treating everything decoded
// so far (bounded to the last windowSize bytes) as an external dictionary
// for the next call (spec.md §4.10). Every call therefore exercises
// decompress.go's external-dictionary path uniformly, rather than
// requiring the caller to hand back a single contiguous growing buffer
// across calls the way the reference implementation's prefix mode does.
type StreamDecode struct {
	history []byte
}

// NewStreamDecode returns a ready-to-use streaming decoder with an empty
// dictionary.
func NewStreamDecode() *StreamDecode {
	return &StreamDecode{}
}

// LoadDict seeds the decoder's history with up to the last windowSize bytes
// of dict, so the next DecompressContinue call can resolve back-references
// into it (spec.md §4.10 "load_dict", §8 property 2). Returns the number of
// bytes actually retained.
func (s *StreamDecode) LoadDict(dict []byte) int {
	s.history = nil
	s.appendHistory(dict)
	return len(s.history)
}

// DecompressContinue decodes src into dst as the next block in the stream.
func (s *StreamDecode) DecompressContinue(src, dst []byte) (int, error) {
	n, err := decompressWithDict(src, dst, s.history)
	if err != nil {
		return 0, err
	}
	s.appendHistory(dst[:n])
	return n, nil
}

func (s *StreamDecode) appendHistory(out []byte) {
	combined := append(s.history, out...)
	if len(combined) > windowSize {
		combined = combined[len(combined)-windowSize:]
	}
	s.history = append([]byte(nil), combined...)
}

// SaveDict copies up to len(buf) of the most recently decoded bytes into
// buf, for reuse as the starting dictionary of an independent decode
// stream, returning the number of bytes written.
func (s *StreamDecode) SaveDict(buf []byte) int {
	start := len(s.history) - len(buf)
	if start < 0 {
		start = 0
	}
	return copy(buf, s.history[start:])
}

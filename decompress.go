// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

// Block decoder (spec.md §4.9): token/length-extension reading, literal and
// match copying, short-offset overlap, and the three termination
// disciplines (endOnInputSize / endOnOutputSize / bounded-partial).
// Grounded on the teacher's decompressCore state machine (decompress.go:
// readCompressedByte/readCompressedLE16/readZeroExtendedChunks/
// copyLiteralRun), generalized from LZO1X's opcode classes to LZ4's single
// token-plus-extension sequence shape. The short-offset overlap handling
// and the external-dictionary resolution follow LZ4_decompress_generic in
// the reference C sources bundled alongside this spec, adapted to Go's
// bounds-checked slices rather than the original's raw pointer over-reads
// (see DESIGN.md).

// decodeTermination selects how the decode loop decides it is finished.
type decodeTermination int

const (
	terminateOnInput  decodeTermination = iota // stop once every input byte is consumed (safe)
	terminateOnOutput                          // stop once exactly len(dst) bytes are written (fast, trusted input)
)

// DecompressSafe decodes src into dst, which must be large enough to hold
// the full decompressed block. Returns the number of bytes written.
func DecompressSafe(src, dst []byte) (int, error) {
	return decompressCore(src, dst, nil, terminateOnInput, -1)
}

// DecompressFast decodes src into dst, trusting that src is a well-formed
// block whose decompressed size is exactly outputSize; dst must be at
// least that long. Unlike DecompressSafe it does not require src to be
// fully consumed — decoding stops as soon as outputSize bytes are written.
func DecompressFast(src, dst []byte, outputSize int) (int, error) {
	if outputSize < 0 || outputSize > len(dst) {
		return 0, ErrOutputOverrun
	}
	return decompressCore(src, dst[:outputSize], nil, terminateOnOutput, -1)
}

// DecompressSafePartial decodes src into dst, stopping as soon as
// targetOutputSize bytes have been written even if src still has sequences
// left, trimming the final literal or match run to fit exactly (spec.md
// §4.9 supplemented feature: partial decode for "peek the first N bytes"
// use cases). Returns the number of bytes actually written, which may be
// less than targetOutputSize if src decodes to a shorter block.
func DecompressSafePartial(src, dst []byte, targetOutputSize int) (int, error) {
	return decompressCore(src, dst, nil, terminateOnInput, targetOutputSize)
}

// DecompressSafeUsingDict decodes src into dst exactly as DecompressSafe
// does, except that an offset reaching before the start of dst resolves
// into dict instead of failing with ErrLookBehindUnderrun (spec.md §8
// property 2 "decompress_safe_usingDict"). dict is typically the source
// bytes of a prior block compressed with a matching *Stream.LoadDict call.
func DecompressSafeUsingDict(src, dst, dict []byte) (int, error) {
	return decompressWithDict(src, dst, dict)
}

// decompressWithDict is DecompressSafe with an external dictionary: offsets
// that reach before the start of dst resolve into dict instead of failing
// with ErrLookBehindUnderrun. Used by DecompressSafeUsingDict and
// StreamDecode.
func decompressWithDict(src, dst, dict []byte) (int, error) {
	return decompressCore(src, dst, dict, terminateOnInput, -1)
}

func decompressCore(src, dst, dict []byte, term decodeTermination, partialTarget int) (int, error) {
	oend := len(dst)
	if term == terminateOnInput && partialTarget >= 0 && partialTarget < oend {
		oend = partialTarget
	}
	iend := len(src)
	ip, op := 0, 0

	readExtension := func(n int) (int, error) {
		for {
			if ip >= iend {
				return 0, ErrInputOverrun
			}
			b := src[ip]
			ip++
			n += int(b)
			if b != 255 {
				return n, nil
			}
		}
	}

	for {
		if term == terminateOnOutput && op >= oend {
			return op, nil
		}
		if ip >= iend {
			if term == terminateOnInput && op == oend {
				return op, nil
			}
			return op, ErrInputOverrun
		}

		token := src[ip]
		ip++

		litLen := int(token >> 4)
		if litLen == 15 {
			var err error
			litLen, err = readExtension(litLen)
			if err != nil {
				return op, err
			}
		}

		if ip+litLen > iend {
			return op, ErrInputOverrun
		}
		if op+litLen > oend {
			if partialTarget >= 0 {
				n := oend - op
				copy(dst[op:op+n], src[ip:ip+n])
				return op + n, nil
			}
			return op, ErrOutputOverrun
		}
		if litLen > 0 {
			copy(dst[op:op+litLen], src[ip:ip+litLen])
			ip += litLen
			op += litLen
		}

		if term == terminateOnOutput {
			if op >= oend {
				return op, nil
			}
		} else if ip >= iend {
			return op, nil
		} else if partialTarget >= 0 && op >= oend {
			// target reached exactly on a literal-run boundary: stop now rather
			// than decoding further sequences that would all trim to zero bytes.
			return op, nil
		} else if partialTarget < 0 && op >= oend {
			// dst is exactly full but src still has bytes left over: the block
			// doesn't end where the caller's buffer does.
			return op, ErrInputNotConsumed
		}

		if ip+2 > iend {
			return op, ErrInputOverrun
		}
		offset := int(readLE16(src[ip:]))
		ip += 2
		if offset < minOffset {
			return op, ErrMalformedBlock
		}

		matchLen := int(token&mlMask) + minMatch
		if int(token&mlMask) == mlMask {
			var err error
			matchLen, err = readExtension(matchLen)
			if err != nil {
				return op, err
			}
		}

		matchPos := op - offset
		if matchPos < 0 {
			if dict == nil {
				return op, ErrLookBehindUnderrun
			}
			dictPos := len(dict) + matchPos
			if dictPos < 0 {
				return op, ErrLookBehindUnderrun
			}
			avail := len(dict) - dictPos
			n := matchLen
			if n > avail {
				n = avail
			}
			if op+n > oend {
				if partialTarget >= 0 {
					n = oend - op
				} else {
					return op, ErrOutputOverrun
				}
			}
			copy(dst[op:op+n], dict[dictPos:dictPos+n])
			op += n
			matchLen -= n
			matchPos = 0
			if matchLen > 0 {
				if op+matchLen > oend {
					if partialTarget >= 0 {
						matchLen = oend - op
					} else {
						return op, ErrOutputOverrun
					}
				}
				copyMatch(dst, op, matchPos, matchLen)
				op += matchLen
			}
			if partialTarget >= 0 && op >= oend {
				return op, nil
			}
			if partialTarget < 0 && term == terminateOnInput && op >= oend && ip < iend {
				return op, ErrInputNotConsumed
			}
			continue
		}

		if op+matchLen > oend {
			if partialTarget >= 0 {
				matchLen = oend - op
			} else {
				return op, ErrOutputOverrun
			}
		}
		copyMatch(dst, op, matchPos, matchLen)
		op += matchLen
		if partialTarget >= 0 && op >= oend {
			return op, nil
		}
		if partialTarget < 0 && term == terminateOnInput && op >= oend && ip < iend {
			return op, ErrInputNotConsumed
		}
	}
}

// copyMatch copies matchLen bytes from dst[matchPos:] to dst[op:], where
// the two ranges may overlap when offset (op-matchPos) is shorter than
// matchLen — the back-reference is replicating a repeating pattern rather
// than copying disjoint bytes, so the copy must proceed byte-by-byte (or in
// chunks no wider than the offset) to reproduce the repetition correctly.
func copyMatch(dst []byte, op, matchPos, matchLen int) {
	offset := op - matchPos
	if offset >= matchLen {
		copy(dst[op:op+matchLen], dst[matchPos:matchPos+matchLen])
		return
	}
	if offset >= 8 {
		n := 0
		for n+8 <= matchLen {
			copy(dst[op+n:op+n+8], dst[matchPos+n:matchPos+n+8])
			n += 8
		}
		for ; n < matchLen; n++ {
			dst[op+n] = dst[matchPos+n]
		}
		return
	}
	for i := 0; i < matchLen; i++ {
		dst[op+i] = dst[matchPos+i]
	}
}

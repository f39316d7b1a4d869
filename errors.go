// SPDX-License-Identifier: BSD-2-Clause
// Source: github.com/woozymasta/lz4block

package lz4block

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrInputTooLarge is returned when the source length exceeds the format's
	// maximum input size of 2,113,929,216 bytes.
	ErrInputTooLarge = errors.New("lz4block: input exceeds MaxInputSize")
	// ErrOutputOverrun is returned when the encoder cannot fit another sequence
	// or literal run in the destination buffer.
	ErrOutputOverrun = errors.New("lz4block: output overrun")
	// ErrInputOverrun is returned when the decoder needs more input bytes than
	// are available.
	ErrInputOverrun = errors.New("lz4block: input overrun")
	// ErrMalformedBlock is returned by the safe decoder for a zero offset. A
	// length extension running past the input is reported as ErrInputOverrun,
	// and an offset resolving before the window as ErrLookBehindUnderrun.
	ErrMalformedBlock = errors.New("lz4block: malformed block")
	// ErrLookBehindUnderrun is returned when a back-reference points before the
	// start of the addressable window (prefix + external dictionary).
	ErrLookBehindUnderrun = errors.New("lz4block: lookbehind underrun")
	// ErrInputNotConsumed is returned when endOnInputSize decoding finishes
	// writing output without having consumed all of the declared input.
	ErrInputNotConsumed = errors.New("lz4block: input not fully consumed")
	// ErrBadAlignment is returned when a stream is attached to a dictionary
	// context that cannot be referenced (e.g. attaching a stream to itself).
	ErrBadAlignment = errors.New("lz4block: bad alignment")
	// ErrUninitialisedState is returned when an operation is attempted on a
	// stream that was never reset/initialised.
	ErrUninitialisedState = errors.New("lz4block: uninitialised stream state")

	// ErrCompressInternal is returned when the compressor hits an internal
	// invariant violation. Callers can use errors.Is(err, lz4block.ErrCompressInternal).
	ErrCompressInternal = errors.New("lz4block: internal compressor error")
)

// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/Fluvian/lzkn64

package lzkn64

import "errors"

// Sentinel errors for decoding and encoding.
var (
	// ErrEmptyInput is returned when Decode is given an empty input slice.
	ErrEmptyInput = errors.New("lzkn64: empty input")
	// ErrMalformedHeader is returned when the declared container size is
	// smaller than the header or larger than the actual input.
	ErrMalformedHeader = errors.New("lzkn64: malformed header")
	// ErrTruncatedInput is returned when the decoder runs out of bytes
	// mid-token, before reaching the declared container size.
	ErrTruncatedInput = errors.New("lzkn64: truncated input")
	// ErrBackReferenceUnderflow is returned when a window-copy token
	// names a distance that reaches before the start of the output.
	ErrBackReferenceUnderflow = errors.New("lzkn64: back-reference underflow")
	// ErrInputTooLarge is returned when Encode's input exceeds the
	// container's 24-bit length budget.
	ErrInputTooLarge = errors.New("lzkn64: input too large")
)

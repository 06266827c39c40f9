// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/Fluvian/lzkn64

package lzkn64

// maxContainerSize is the largest total container size the 24-bit
// big-endian length field in the header can represent.
const maxContainerSize = 0xFFFFFF

// maxInputSize is the largest input Encode accepts (0xFFFFFB, the
// format's documented bound). An input within it can still produce a
// container too large for the length field; finalizeContainer checks
// the final size separately.
const maxInputSize = 0xFFFFFB

// tokenMode identifies which non-raw token, if any, the matcher picked
// for the current position.
type tokenMode int

const (
	modeNone tokenMode = iota
	modeWindowCopy
	modeRLEVal
	modeRLEZeroShort
	modeRLEZeroLong
)

// Encode compresses src into an LZKN64 container. The encoder is
// greedy: at each position it prefers the longest dictionary match if it
// both clears a minimum length and beats the forward run length at that
// position, otherwise it prefers run-length encoding once the run is
// long enough, and otherwise emits the byte as a pending literal.
func Encode(src []byte) ([]byte, error) {
	if len(src) > maxInputSize {
		return nil, ErrInputTooLarge
	}

	out := make([]byte, headerSize, headerSize+len(src))
	n := len(src)
	lastLit := 0
	p := 0

	for p < n {
		matchDist, matchLen := findWindowMatch(src, p)
		runValue, runLen := findForwardRun(src, p)

		mode, tokenLen := selectMode(matchLen, runLen, runValue)

		rawPending := p - lastLit
		atEnd := p+1 == n
		if (mode != modeNone && rawPending >= 1) || rawPending >= rawMaxLength || atEnd {
			if atEnd {
				rawPending = n - lastLit
			}

			out, lastLit = flushRawCopies(out, src, lastLit, rawPending)
		}

		switch mode {
		case modeWindowCopy:
			cmd, operand := packWindowCopy(matchLen, matchDist)
			out = append(out, cmd, operand)
			p += tokenLen

		case modeRLEVal:
			out = append(out, packRLEVal(runLen), runValue)
			p += tokenLen

		case modeRLEZeroShort:
			out = append(out, packRLEZeroShort(runLen))
			p += tokenLen

		case modeRLEZeroLong:
			out = append(out, cmdRLEZeroL, byte(runLen-2))
			p += tokenLen

		default:
			p++
			continue
		}

		lastLit = p
	}

	return finalizeContainer(out)
}

// selectMode applies the mode-selection priority order from the format
// notes: a dictionary match must both clear a minimum length and
// strictly beat the forward run; otherwise runs are preferred once long
// enough, with a shorter threshold for zero runs (which have a cheaper
// zero-operand short form, so are worth taking even at length 2).
func selectMode(matchLen, runLen int, runValue byte) (mode tokenMode, length int) {
	switch {
	case matchLen >= 4 && matchLen > runLen:
		return modeWindowCopy, matchLen

	case runLen >= 3:
		switch {
		case runValue != 0x00:
			return modeRLEVal, runLen
		case runLen < rleZeroSMaxLength:
			return modeRLEZeroShort, runLen
		default:
			return modeRLEZeroLong, runLen
		}

	case runLen >= 2 && runValue == 0x00:
		return modeRLEZeroShort, runLen
	}

	return modeNone, 0
}

// flushRawCopies emits one or more RAW_COPY tokens covering
// src[lastLit:lastLit+pending], each carrying at most rawMaxLength
// literal bytes, and returns the updated output and new lastLit.
func flushRawCopies(out []byte, src []byte, lastLit, pending int) ([]byte, int) {
	for pending > 0 {
		chunk := pending
		if chunk > rawMaxLength {
			chunk = rawMaxLength
		}

		out = append(out, packRawCopy(chunk))
		out = append(out, src[lastLit:lastLit+chunk]...)

		lastLit += chunk
		pending -= chunk
	}

	return out, lastLit
}

// finalizeContainer pads the container to an even length, then backfills
// the header's reserved byte and 24-bit length (which counts the pad).
func finalizeContainer(out []byte) ([]byte, error) {
	size := len(out)
	if size%2 != 0 {
		out = append(out, 0x00)
		size++
	}

	if size > maxContainerSize {
		return nil, ErrInputTooLarge
	}

	out[0] = 0x00
	out[1] = byte(size >> 16)
	out[2] = byte(size >> 8)
	out[3] = byte(size)

	return out, nil
}

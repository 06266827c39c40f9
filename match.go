// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/Fluvian/lzkn64

package lzkn64

// boundary residues (modulo 0x1000) at which a long forward run is cut
// short (see nextBoundaryCap): an alignment
// assumption of the consuming game engine, preserved here only so this
// encoder's output stays bit-exact with reference tooling.
var runBoundaryResidues = [4]int{0x021, 0x421, 0x821, 0xC21}

// findWindowMatch searches U[max(0,p-windowMaxDistance):p] for the
// longest prefix of U[p:] (capped at windowMaxLength and by the bytes
// remaining in U), preferring the latest (closest, shortest-distance)
// start position on ties. Returns (distance, length); length is 0 if no
// match of any size exists (a distance-0 "match" of length 0 at p is not
// meaningful, so callers must check length).
func findWindowMatch(u []byte, p int) (distance, length int) {
	maxLen := windowMaxLength
	if remaining := len(u) - p; remaining < maxLen {
		maxLen = remaining
	}

	minStart := p - windowMaxDistance
	if minStart < 0 {
		minStart = 0
	}

	bestStart := -1
	bestLen := 0

	for start := p - 1; start >= minStart; start-- {
		m := 0
		for m < maxLen && u[start+m] == u[p+m] {
			m++
		}

		if m > bestLen {
			bestLen = m
			bestStart = start
		}
	}

	if bestStart < 0 {
		return 0, 0
	}

	return p - bestStart, bestLen
}

// findForwardRun extends a run of the byte at U[p], capped at the
// format's per-value run limit. A run longer than windowMaxLength is
// shortened to end at the first of the four alignment boundaries that
// p+i reaches for i > windowMaxLength; boundaries reached within the
// first windowMaxLength bytes do not shorten it.
func findForwardRun(u []byte, p int) (value byte, length int) {
	value = u[p]

	maxLen := rleForwardMax
	if value != 0x00 && maxLen > windowMaxLength-1 {
		maxLen = windowMaxLength - 1
	}

	if remaining := len(u) - p; remaining < maxLen {
		maxLen = remaining
	}

	for length < maxLen && u[p+length] == value {
		length++
	}

	if boundaryCap := nextBoundaryCap(p, length); boundaryCap < length {
		length = boundaryCap
	}

	return value, length
}

// nextBoundaryCap returns how far a forward run starting at p may extend
// before p+i lands on one of runBoundaryResidues modulo 0x1000, or
// maxRunLen if the search never reaches a boundary within range. Mirrors
// the reference compressor's "search i from COPY_SIZE+1 upward" loop,
// which only ever shortens runs longer than windowMaxLength.
func nextBoundaryCap(p, maxRunLen int) int {
	if maxRunLen <= windowMaxLength {
		return maxRunLen
	}

	for i := windowMaxLength + 1; i <= maxRunLen; i++ {
		pos := (p + i) & 0xFFF
		if pos == runBoundaryResidues[0] || pos == runBoundaryResidues[1] ||
			pos == runBoundaryResidues[2] || pos == runBoundaryResidues[3] {
			return i
		}
	}

	return maxRunLen
}

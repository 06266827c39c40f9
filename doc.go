// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/Fluvian/lzkn64

/*
Package lzkn64 implements the LZKN64 compression container used by a
family of console games.

The format packs four token classes into a byte stream: dictionary
back-references (window copies), literal runs (raw copies), and two
flavors of run-length encoding for repeated bytes. A 4-byte header
carries the total container size; the stream is padded to an even
length.

# Encode

	out, err := lzkn64.Encode(data)

# Decode

	out, err := lzkn64.Decode(compressed)

Both operations work on fully resident buffers; there is no streaming
mode and no caller-facing tuning knobs.
*/
package lzkn64

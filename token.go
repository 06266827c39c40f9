// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/Fluvian/lzkn64

package lzkn64

// LZKN64 token classes: command-byte ranges and the field packing each
// one uses. The encoder only ever emits cmdWindowCopy, cmdRawCopy,
// cmdRLEVal and cmdRLEZeroShort/Long; the gap between 0xA0 and 0xBF is
// never emitted, but the decoder still dispatches it as RAW_COPY (the
// packing formula for raw-copy length is the same across 0x80..0xBF).
const (
	cmdWindowCopy  = 0x00 // 0x00..0x7F, 1 operand byte
	cmdRawCopy     = 0x80 // 0x80..0xBF (only 0x80..0x9F emitted), 0 operand bytes
	cmdRLEVal      = 0xC0 // 0xC0..0xDF, 1 operand byte
	cmdRLEZeroS    = 0xE0 // 0xE0..0xFE, 0 operand bytes
	cmdRLEZeroL    = 0xFF // 0xFF, 1 operand byte
	cmdRLEZeroSEnd = 0xFE
)

// Window-copy parameters: maximum back-distance and maximum match length
// representable in a single token.
const (
	windowMaxDistance = 0x3DF
	windowMaxLength   = 0x21 // 33, length-2 stored in 5 bits
	windowMaxOffset   = 0x3FF
)

// Raw-copy parameters.
const rawMaxLength = 0x1F

// RLE parameters.
const (
	rleMinLength      = 2
	rleValMaxLength   = 0x21 // 33, same 5-bit length field as window copy
	rleZeroSMaxLength = 0x21
	rleZeroLMaxLength = 257 // operand + 2, operand is one byte
	rleForwardMax     = 0x101
)

// packWindowCopy encodes a window-copy token: length in [2,33], offset in
// [1,1023]. Returns the command byte and the single operand byte.
func packWindowCopy(length, offset int) (cmd, operand byte) {
	cmd = byte(((length-2)&0x1F)<<2 | ((offset >> 8) & 0x03))
	operand = byte(offset & 0xFF)
	return cmd, operand
}

// unpackWindowCopy decodes a window-copy command/operand pair into
// (length, offset).
func unpackWindowCopy(cmd, operand byte) (length, offset int) {
	length = int((cmd>>2)&0x1F) + 2
	offset = ((int(cmd&0x03) << 8) | int(operand)) & windowMaxOffset
	return length, offset
}

// packRawCopy encodes a raw-copy command byte for a literal run of the
// given length (1..31).
func packRawCopy(length int) byte {
	return byte(cmdRawCopy | (length & rawMaxLength))
}

// unpackRawCopyLength extracts the literal run length from a raw-copy
// command byte.
func unpackRawCopyLength(cmd byte) int {
	return int(cmd & rawMaxLength)
}

// packRLEVal encodes an RLE_VAL command byte for a run of the given
// length (2..33); the operand byte (the repeated value) is emitted
// separately by the caller.
func packRLEVal(length int) byte {
	return byte(cmdRLEVal | ((length - 2) & 0x1F))
}

// unpackRLELength decodes the 5-bit length field shared by RLE_VAL and
// RLE_ZERO_S command bytes.
func unpackRLELength(cmd byte) int {
	return int(cmd&0x1F) + 2
}

// packRLEZeroShort encodes an RLE_ZERO_S command byte for a run of
// zeros of the given length (2..32). Length 33 would produce 0xFF, which
// is the RLE_ZERO_L command byte, so longer zero runs use that form.
func packRLEZeroShort(length int) byte {
	return byte(cmdRLEZeroS | ((length - 2) & 0x1F))
}

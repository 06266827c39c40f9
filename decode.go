// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/Fluvian/lzkn64

package lzkn64

// headerSize is the fixed 4-byte container header: one reserved byte
// plus a big-endian 24-bit total length.
const headerSize = 4

// Decode decompresses an LZKN64 container back to its original byte
// sequence. The container's own header supplies the decoded-stream
// boundary; callers do not need to know the decompressed size up front.
func Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	if len(src) < headerSize {
		return nil, ErrMalformedHeader
	}

	declaredSize := int(src[1])<<16 | int(src[2])<<8 | int(src[3])
	if declaredSize < headerSize || declaredSize > len(src) {
		return nil, ErrMalformedHeader
	}

	out := make([]byte, 0, (declaredSize-headerSize)*2)

	read := headerSize
	for read < declaredSize {
		// A container padded to an even total length carries its pad byte
		// as the last byte before declaredSize. Since WINDOW_COPY (the
		// only class cmd 0x00 can name) always requires an operand byte,
		// a lone 0x00 with nothing left to read can only be that pad, not
		// a token: stop instead of dispatching it.
		if read == declaredSize-1 && src[read] == 0x00 {
			read++
			break
		}

		cmd := src[read]
		read++

		switch {
		case cmd < cmdRawCopy:
			if read >= declaredSize {
				return nil, ErrTruncatedInput
			}
			operand := src[read]
			read++

			length, offset := unpackWindowCopy(cmd, operand)
			if offset > len(out) {
				return nil, ErrBackReferenceUnderflow
			}

			out = appendWindowCopy(out, offset, length)

		case cmd < cmdRLEVal:
			length := unpackRawCopyLength(cmd)
			if read+length > declaredSize {
				return nil, ErrTruncatedInput
			}

			out = append(out, src[read:read+length]...)
			read += length

		case cmd < cmdRLEZeroS:
			if read >= declaredSize {
				return nil, ErrTruncatedInput
			}
			value := src[read]
			read++

			length := unpackRLELength(cmd)
			out = appendRepeated(out, value, length)

		case cmd < cmdRLEZeroL:
			length := unpackRLELength(cmd)
			out = appendRepeated(out, 0x00, length)

		default: // cmd == cmdRLEZeroL
			if read >= declaredSize {
				return nil, ErrTruncatedInput
			}
			operand := src[read]
			read++

			length := int(operand) + 2
			out = appendRepeated(out, 0x00, length)
		}
	}

	if read != declaredSize {
		return nil, ErrTruncatedInput
	}

	return out, nil
}

// appendWindowCopy appends length bytes read from offset positions
// behind the current end of out. The copy is self-referential: when
// offset < length, bytes appended earlier in this same call become
// valid sources for bytes appended later in it, so each byte is copied
// individually rather than with a single bulk copy.
func appendWindowCopy(out []byte, offset, length int) []byte {
	start := len(out)
	out = append(out, make([]byte, length)...)

	for i := 0; i < length; i++ {
		out[start+i] = out[start+i-offset]
	}

	return out
}

// appendRepeated appends length copies of value to out.
func appendRepeated(out []byte, value byte, length int) []byte {
	start := len(out)
	out = append(out, make([]byte, length)...)

	for i := start; i < start+length; i++ {
		out[i] = value
	}

	return out
}

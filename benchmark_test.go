// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/Fluvian/lzkn64

package lzkn64

import (
	"bytes"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lzkn64 benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"zero-run-256k":   bytes.Repeat([]byte{0x00}, 262144),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkEncode(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Encode(inputData); err != nil {
					b.Fatalf("Encode failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		compressed, err := Encode(inputData)
		if err != nil {
			b.Fatalf("setup Encode failed for %s: %v", inputName, err)
		}

		b.Run(inputName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Decode(compressed); err != nil {
					b.Fatalf("Decode failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compressed, err := Encode(inputData)
		if err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
		if _, err := Decode(compressed); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

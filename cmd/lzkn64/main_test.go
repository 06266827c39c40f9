// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/Fluvian/lzkn64

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCLI_CompressThenDecompressRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.bin")
	compressedPath := filepath.Join(dir, "input.lzkn64")
	roundTripPath := filepath.Join(dir, "roundtrip.bin")

	original := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox")
	require.NoError(t, os.WriteFile(inputPath, original, 0o644))

	require.NoError(t, runCLI(false, inputPath, compressedPath))
	require.NoError(t, runCLI(true, compressedPath, roundTripPath))

	roundTripped, err := os.ReadFile(roundTripPath)
	require.NoError(t, err)
	assert.Equal(t, original, roundTripped)
}

func TestRunCLI_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	err := runCLI(false, filepath.Join(dir, "does-not-exist"), filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "reading input")
}

func TestRunCLI_DecompressMalformedHeader(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "bad.lzkn64")
	require.NoError(t, os.WriteFile(inputPath, []byte{0x00, 0x00}, 0o644))

	err := runCLI(true, inputPath, filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "processing")
}

func TestNewRootCmd_RequiresExactlyTwoArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-c", "only-one-arg"})
	cmd.SetOut(os.Stderr)
	err := cmd.Execute()
	require.Error(t, err)
}

func TestNewRootCmd_CompressFlag(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.bin")
	outputPath := filepath.Join(dir, "output.lzkn64")
	require.NoError(t, os.WriteFile(inputPath, []byte{0x01, 0x02, 0x03}, 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"-c", inputPath, outputPath})
	require.NoError(t, cmd.Execute())

	out, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), out[0])
}

func TestNewRootCmd_RequiresOneOfCompressOrDecompress(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.bin")
	outputPath := filepath.Join(dir, "output.lzkn64")
	require.NoError(t, os.WriteFile(inputPath, []byte{0x01, 0x02, 0x03}, 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{inputPath, outputPath})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorContains(t, err, "exactly one of")
}

// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/Fluvian/lzkn64

// Command lzkn64 compresses or decompresses a file using the LZKN64
// container format. It is a thin shell around package lzkn64: argument
// parsing, file I/O, and error reporting only.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Fluvian/lzkn64"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var decompress, compress bool

	cmd := &cobra.Command{
		Use:           "lzkn64 [-c|-d] input output",
		Short:         "LZKN64 compression and decompression utility",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if compress == decompress {
				return fmt.Errorf("specify exactly one of -c or -d")
			}

			return runCLI(decompress, args[0], args[1])
		},
	}

	cmd.Flags().BoolVarP(&compress, "compress", "c", false, "compress the input file")
	cmd.Flags().BoolVarP(&decompress, "decompress", "d", false, "decompress the input file")

	return cmd
}

// runCLI reads inputPath, runs the requested transform, and writes the
// result to outputPath. decompress selects -d; otherwise -c is assumed.
func runCLI(decompress bool, inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var out []byte
	if decompress {
		out, err = lzkn64.Decode(data)
	} else {
		out, err = lzkn64.Encode(data)
	}
	if err != nil {
		return fmt.Errorf("processing %q: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

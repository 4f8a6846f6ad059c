// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

// Command zlibtool is a thin command-line wrapper around the zlib package's
// Compress and Decompress operations. It performs no tokenising, Huffman
// construction, or bit I/O of its own (spec.md §11).
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/flatepack/zlib"
)

var outputPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zlibtool",
		Short:         "Compress or decompress a ZLIB/DEFLATE stream",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "write result to this file instead of stdout")

	root.AddCommand(newCompressCmd())
	root.AddCommand(newDecompressCmd())
	return root
}

func newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress [file]",
		Short: "Encode input as a ZLIB stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, zlib.Compress)
		},
	}
}

func newDecompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompress [file]",
		Short: "Decode a ZLIB stream back to its original bytes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, zlib.Decompress)
		},
	}
}

// run reads the input (a named file, or stdin if none is given), applies op,
// and writes the result to outputPath, or stdout if unset.
func run(args []string, op func([]byte) ([]byte, error)) error {
	in, err := readInput(args)
	if err != nil {
		return fmt.Errorf("zlibtool: %w", err)
	}

	out, err := op(in)
	if err != nil {
		return fmt.Errorf("zlibtool: %w", err)
	}

	return writeOutput(out)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func writeOutput(data []byte) error {
	if outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

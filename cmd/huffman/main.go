// Command huffman reads a frequency table and a list of commands, and prints
// the Huffman code table or the results of encoding and decoding messages.
//
// Usage:
//
//	huffman [-in FILE] [-out FILE] [-v]
//
// See package internal/script for the input format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/huffcode/internal/script"
	"github.com/chronos-tachyon/huffcode/pkg/logger"
)

func main() {
	inPath := flag.String("in", "", "read the script from `file` instead of stdin")
	outPath := flag.String("out", "", "write results to `file` instead of stdout")
	verbose := flag.Bool("v", false, "log progress and per-command errors to stderr")
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %q\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	logg := logger.Discard()
	if *verbose {
		logg = logger.New()
	}

	if err := run(*inPath, *outPath, logg); err != nil {
		fmt.Fprintln(os.Stderr, "huffman:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, logg logger.Logger) error {
	var in io.Reader = os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	s, err := script.Parse(in)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return script.Run(out, s, logg)
}

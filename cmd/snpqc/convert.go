package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/genotools/snpqc/internal/refdb"
)

func runConvert(args []string) int {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)

	var (
		inputPath  string
		outputPath string
	)

	fs.StringVar(&inputPath, "input", "", "Input marker reference TSV file")
	fs.StringVar(&inputPath, "i", "", "Input marker reference TSV file (shorthand)")
	fs.StringVar(&outputPath, "output", "", "Output DuckDB file path")
	fs.StringVar(&outputPath, "o", "", "Output DuckDB file path (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Build a marker reference database from a TSV file.

The TSV columns are: rsid, gene, category, risk_allele, description.
The resulting DuckDB file supplements the built-in marker tables when
passed to analyze via --refdb.

Usage:
  snpqc convert [options]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  snpqc convert --input markers.tsv --output markers.duckdb
  snpqc convert -i markers.tsv -o ~/.snpqc/markers.duckdb
`)
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if inputPath == "" || outputPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --input and --output are required\n\n")
		fs.Usage()
		return ExitUsage
	}

	store, err := refdb.Open(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	defer store.Close()

	inserted, err := refdb.LoadTSV(store, inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	fmt.Fprintf(os.Stderr, "Loaded %d reference markers into %s\n", inserted, outputPath)
	return ExitSuccess
}

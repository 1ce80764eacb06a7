package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/genotools/snpqc/internal/ancient"
	"github.com/genotools/snpqc/internal/genotype"
	"github.com/genotools/snpqc/internal/output"
)

func runAncient(args []string) int {
	fs := flag.NewFlagSet("ancient", flag.ExitOnError)

	var (
		format    string
		outputDir string
		jsonOut   bool
	)

	fs.StringVar(&format, "format", "", "Input format: 23andme, ancestry (auto-detected if not specified)")
	fs.StringVar(&outputDir, "o", viper.GetString("output_dir"), "Output directory (default: stdout)")
	fs.StringVar(&outputDir, "output", viper.GetString("output_dir"), "Output directory (default: stdout)")
	fs.BoolVar(&jsonOut, "json", false, "Also write a JSON report")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Identify markers shared with ancient populations.

Usage:
  snpqc ancient [options] <file>

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  snpqc ancient genome_raw.txt
  snpqc ancient -json -o ~/dna-analysis/reports genome_raw.txt
`)
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: input file argument required\n\n")
		fs.Usage()
		return ExitUsage
	}

	path := fs.Arg(0)
	parser, err := genotype.NewParser(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	defer parser.Close()
	if format != "" {
		parser.SetFormat(genotype.Format(format))
	}

	records, err := parser.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		return ExitError
	}

	results := ancient.Analyze(genotype.BuildIndex(records))

	out, closeOut, err := openReport(outputDir, stem(path)+"_ancient.txt")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	defer closeOut()

	tw := output.NewTextWriter(out)
	if err := tw.WriteHeader("ANCIENT DNA MARKER ANALYSIS"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	if err := tw.WriteAncient(results); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	if jsonOut {
		jout, closeJSON, err := openReport(outputDir, stem(path)+"_ancient.json")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
		defer closeJSON()

		doc := output.AnalysisReport{
			Source:      path,
			GeneratedAt: time.Now().UTC(),
			Ancient:     results,
		}
		if err := output.WriteJSON(jout, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
	}

	return ExitSuccess
}

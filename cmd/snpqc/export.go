package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/genotools/snpqc/internal/ancient"
	"github.com/genotools/snpqc/internal/genotype"
	"github.com/genotools/snpqc/internal/markers"
	"github.com/genotools/snpqc/internal/output"
	"github.com/genotools/snpqc/internal/quality"
)

func runExport(args []string) int {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	var (
		format    string
		outputDir string
		clinical  bool
	)

	fs.StringVar(&format, "format", "", "Input format: 23andme, ancestry (auto-detected if not specified)")
	fs.StringVar(&outputDir, "o", viper.GetString("output_dir"), "Output directory (default: stdout)")
	fs.StringVar(&outputDir, "output", viper.GetString("output_dir"), "Output directory (default: stdout)")
	fs.BoolVar(&clinical, "clinical", false, "Produce the genetic-counselor clinical export")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Export analysis results as machine-readable JSON.

The default export bundles quality metrics and all marker analyses.
With --clinical, an ACMG-style export for genetic counselors is produced
instead.

Usage:
  snpqc export [options] <file>

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  snpqc export genome_raw.txt
  snpqc export --clinical -o ~/dna-analysis/reports genome_raw.txt
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

	opts := optionsFromConfig()
	opts.Header = parser.Header()
	report := quality.NewAssessor(opts).Assess(records)

	idx := genotype.BuildIndex(records)
	apoe := markers.APOEStatus(idx)
	health := markers.AnalyzeHealth(idx)
	pharma := markers.AnalyzePharma(idx)

	if clinical {
		exp := output.NewClinicalExport(report, apoe, health, pharma)

		out, closeOut, err := openReport(outputDir, output.FileName(stem(path), "clinical"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
		defer closeOut()

		if err := output.WriteClinical(out, exp); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
		return ExitSuccess
	}

	doc := output.AnalysisReport{
		Source:      path,
		GeneratedAt: time.Now().UTC(),
		Quality:     report,
		APOEStatus:  apoe,
		Health:      health,
		Pharma:      pharma,
		Traits:      markers.AnalyzeTraits(idx),
		Ancient:     ancient.Analyze(idx),
	}

	out, closeOut, err := openReport(outputDir, output.FileName(stem(path), "export"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	defer closeOut()

	if err := output.WriteJSON(out, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

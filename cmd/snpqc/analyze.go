package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/genotools/snpqc/internal/genotype"
	"github.com/genotools/snpqc/internal/markers"
	"github.com/genotools/snpqc/internal/output"
	"github.com/genotools/snpqc/internal/quality"
	"github.com/genotools/snpqc/internal/refdb"
)

func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)

	var (
		format      string
		outputDir   string
		jsonOut     bool
		refdbPath   string
		workers     int
		verbose     bool
		qualityOnly bool
	)

	fs.StringVar(&format, "format", "", "Input format: 23andme, ancestry (auto-detected if not specified)")
	fs.StringVar(&outputDir, "o", viper.GetString("output_dir"), "Output directory (default: stdout)")
	fs.StringVar(&outputDir, "output", viper.GetString("output_dir"), "Output directory (default: stdout)")
	fs.BoolVar(&jsonOut, "json", false, "Also write a JSON report per dataset")
	fs.StringVar(&refdbPath, "refdb", viper.GetString("refdb"), "Marker reference database (optional)")
	fs.IntVar(&workers, "workers", 0, "Worker count for multiple datasets (0 = all CPUs)")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	fs.BoolVar(&qualityOnly, "quality-only", false, "Skip marker analysis, report data quality only")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Assess raw-data quality and analyze health, pharmacogenomic, and
trait markers in one or more raw genotype exports.

Usage:
  snpqc analyze [options] <file>...

Arguments:
  <file>  Raw genotype export (23andMe or AncestryDNA layout, optionally
          gzipped; use '-' for stdin)

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  snpqc analyze genome_raw.txt
  snpqc analyze -json -o ~/dna-analysis/reports genome_raw.txt
  snpqc analyze sample_a.txt sample_b.txt.gz
  cat genome_raw.txt | snpqc analyze -
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

	logger := newLogger(verbose)
	defer logger.Sync()

	var store *refdb.Store
	if refdbPath != "" {
		var err error
		store, err = refdb.Open(refdbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open reference database: %v\n", err)
		} else {
			defer store.Close()
		}
	}

	// Parse all datasets up front; assessments run concurrently.
	type dataset struct {
		name    string
		records []genotype.Record
		header  []string
	}
	var datasets []dataset

	for _, path := range fs.Args() {
		parser, err := genotype.NewParser(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Hint: Check that the file path is correct\n")
			}
			return ExitError
		}
		if format != "" {
			parser.SetFormat(genotype.Format(format))
		}

		records, err := parser.ReadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			parser.Close()
			return ExitError
		}
		header := parser.Header()
		parser.Close()

		logger.Info("loaded dataset",
			zap.String("path", path),
			zap.Int("records", len(records)),
			zap.String("format", string(parser.Format())))

		datasets = append(datasets, dataset{name: path, records: records, header: header})
	}

	opts := optionsFromConfig()
	assessor := quality.NewAssessor(opts)
	assessor.SetLogger(logger)

	items := make(chan quality.WorkItem, len(datasets))
	for i, d := range datasets {
		items <- quality.WorkItem{Seq: i, Name: d.name, Records: d.records, Header: d.header}
	}
	close(items)

	results := assessor.ParallelAssess(items, workers)

	err := quality.OrderedCollect(results, func(r quality.WorkResult) error {
		d := datasets[r.Seq]
		return writeAnalysis(d.name, d.records, r.Report, store, outputDir, jsonOut, qualityOnly)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	return ExitSuccess
}

// writeAnalysis renders one dataset's reports to the output directory
// (or stdout when none is configured).
func writeAnalysis(name string, records []genotype.Record, report *quality.Report, store *refdb.Store, outputDir string, jsonOut, qualityOnly bool) error {
	var apoe string
	var health map[string][]markers.HealthResult
	var pharma []markers.PharmaResult
	var traits []markers.TraitResult

	if !qualityOnly {
		idx := genotype.BuildIndex(records)
		apoe = markers.APOEStatus(idx)
		health = markers.AnalyzeHealth(idx)
		pharma = markers.AnalyzePharma(idx)
		traits = markers.AnalyzeTraits(idx)
		annotateFromStore(health, store)
	}

	out, closeOut, err := openReport(outputDir, stem(name)+"_report.txt")
	if err != nil {
		return err
	}
	defer closeOut()

	tw := output.NewTextWriter(out)
	if err := tw.WriteHeader("PERSONAL GENOMICS ANALYSIS REPORT"); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	if err := tw.WriteQuality(name, report); err != nil {
		return fmt.Errorf("write quality section: %w", err)
	}
	if !qualityOnly {
		if err := tw.WriteMarkers(apoe, health, pharma, traits); err != nil {
			return fmt.Errorf("write marker sections: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}

	if jsonOut {
		jout, closeJSON, err := openReport(outputDir, stem(name)+"_report.json")
		if err != nil {
			return err
		}
		defer closeJSON()

		doc := output.AnalysisReport{
			Source:      name,
			GeneratedAt: time.Now().UTC(),
			Quality:     report,
			APOEStatus:  apoe,
			Health:      health,
			Pharma:      pharma,
			Traits:      traits,
		}
		if err := output.WriteJSON(jout, doc); err != nil {
			return fmt.Errorf("write json report: %w", err)
		}
	}

	return nil
}

// annotateFromStore supplements risk findings with reference descriptions
// when a reference database is available.
func annotateFromStore(health map[string][]markers.HealthResult, store *refdb.Store) {
	if store == nil {
		return
	}
	for category, results := range health {
		for i := range results {
			if results[i].Status == "normal" {
				continue
			}
			row, err := store.Marker(results[i].RSID)
			if err != nil || row == nil {
				continue
			}
			results[i].Note = row.Description
		}
		health[category] = results
	}
}

// openReport opens the named report file under dir, or returns stdout when
// dir is empty.
func openReport(dir, name string) (*os.File, func(), error) {
	if dir == "" {
		return os.Stdout, func() {}, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create report file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Writing %s\n", path)
	return f, func() { f.Close() }, nil
}

// stem returns the base filename without extensions, for report naming.
func stem(path string) string {
	base := filepath.Base(path)
	if base == "-" {
		return "stdin"
	}
	for {
		ext := filepath.Ext(base)
		if ext == "" {
			return base
		}
		base = strings.TrimSuffix(base, ext)
	}
}

// optionsFromConfig builds assessor options from viper-backed config.
func optionsFromConfig() quality.Options {
	opts := quality.Options{
		CallRateWarn:          viper.GetFloat64("call_rate_warn"),
		LowCoverageFraction:   viper.GetFloat64("low_coverage_fraction"),
		MalformedWarnFraction: viper.GetFloat64("malformed_warn_fraction"),
	}
	if sentinels := viper.GetStringSlice("no_call_sentinels"); len(sentinels) > 0 {
		opts.NoCallSentinels = sentinels
	}
	return opts
}

// newLogger builds a stderr zap logger.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

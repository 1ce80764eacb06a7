// Package main provides the snpqc command-line tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Parse()

	if showVersion {
		fmt.Printf("snpqc version %s (%s) built %s\n", version, commit, date)
		return ExitSuccess
	}

	initConfig()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return ExitUsage
	}

	switch args[0] {
	case "analyze":
		return runAnalyze(args[1:])
	case "ancient":
		return runAncient(args[1:])
	case "export":
		return runExport(args[1:])
	case "convert":
		return runConvert(args[1:])
	case "config":
		cmd := newConfigCmd()
		cmd.SetArgs(args[1:])
		if err := cmd.Execute(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
		return ExitSuccess
	case "help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage()
		return ExitUsage
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `snpqc - raw genotype quality and marker analysis

All analysis runs locally. No network requests.

Usage:
  snpqc [options] <command> [arguments]

Commands:
  analyze     Assess raw-data quality and analyze health/trait markers
  ancient     Report markers shared with ancient populations
  export      Produce JSON or clinical (genetic counselor) exports
  convert     Build a marker reference database from a TSV file
  config      Manage snpqc configuration
  help        Show this help message

Global Options:
  --version   Show version information

Examples:
  # Quality report plus marker analysis for a raw export
  snpqc analyze genome_raw.txt

  # Assess several datasets at once
  snpqc analyze sample_a.txt sample_b.txt.gz

  # Ancient-DNA marker report
  snpqc ancient genome_raw.txt

  # Clinical export for a genetic counselor
  snpqc export --clinical genome_raw.txt

For more information on a command, use:
  snpqc <command> --help
`)
}

// initConfig wires viper to ~/.snpqc.yaml. A missing config file is fine;
// defaults apply.
func initConfig() {
	viper.SetConfigName(".snpqc")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("snpqc")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("call_rate_warn", 0.98)
	viper.SetDefault("low_coverage_fraction", 0.5)
	viper.SetDefault("malformed_warn_fraction", 0.01)
	viper.SetDefault("output_dir", "")
	viper.SetDefault("refdb", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: could not read config: %v\n", err)
		}
	}
}

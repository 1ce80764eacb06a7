// Package quality computes raw-data quality metrics for genotype datasets:
// call rate, no-call tracking, chromosome coverage, and platform detection.
package quality

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/genotools/snpqc/internal/genotype"
)

// DefaultNoCallSentinels are the genotype values recognized as no-calls,
// matched case-insensitively. Different vendors use different conventions.
var DefaultNoCallSentinels = []string{"--", "00", "NN", "NC", "NO CALL", "??", "DD", "II", "."}

// Options configures an Assessor. Zero-value fields fall back to the
// documented defaults.
type Options struct {
	// NoCallSentinels is the set of genotype values treated as no-calls.
	// Matched case-insensitively. Defaults to DefaultNoCallSentinels.
	NoCallSentinels []string

	// CallRateWarn is the call rate below which a warning is emitted.
	// Defaults to 0.98.
	CallRateWarn float64

	// LowCoverageFraction scales a chromosome's expected minimum count;
	// coverage below min*fraction warns. Defaults to 0.5.
	LowCoverageFraction float64

	// MalformedWarnFraction is the malformed-record proportion above which
	// a warning is emitted. Defaults to 0.01.
	MalformedWarnFraction float64

	// Platforms overrides the known platform table. Checked in order,
	// first match wins. Defaults to KnownPlatforms.
	Platforms []Platform

	// Expected overrides the per-chromosome expected count ranges.
	// Defaults to ExpectedChromosomeCounts.
	Expected map[string]CountRange

	// Header holds raw file comment lines, used only as a platform
	// detection hint. Optional.
	Header []string
}

// ChromStats holds per-chromosome call detail.
type ChromStats struct {
	Calls    int     `json:"calls"`     // valid calls
	NoCalls  int     `json:"no_calls"`  // no-call positions
	CallRate float64 `json:"call_rate"` // valid / (valid + no-call)
}

// Report is the result of a quality assessment. Immutable once returned.
type Report struct {
	TotalCalls  int     `json:"total_calls"`
	NoCallCount int     `json:"no_call_count"`
	ValidCalls  int     `json:"valid_calls"`
	CallRate    float64 `json:"call_rate"` // in [0,1]; 0 when no data

	// ChromosomeCoverage maps chromosome label to valid-call count.
	// Chromosomes with zero valid calls are omitted.
	ChromosomeCoverage map[string]int        `json:"chromosome_coverage"`
	ChromosomeDetail   map[string]ChromStats `json:"chromosome_detail"`

	DetectedPlatform    string   `json:"detected_platform,omitempty"`
	PlatformDescription string   `json:"platform_description,omitempty"`
	PlatformConfidence  string   `json:"platform_confidence,omitempty"`
	PlatformAlternates  []string `json:"platform_alternates,omitempty"`

	Heterozygous int     `json:"heterozygous"`
	Homozygous   int     `json:"homozygous"`
	HetRate      float64 `json:"het_rate"`
	Indels       int     `json:"indels"`
	Malformed    int     `json:"malformed"`

	Grade    string   `json:"grade"`        // excellent, good, acceptable, poor
	Sex      string   `json:"inferred_sex"` // male, female, likely_female, unknown
	Warnings []string `json:"warnings"`     // advisory, deterministic order
}

// Assessor computes quality reports from genotype records.
// Each Assess call is independent; an Assessor may be reused across datasets.
type Assessor struct {
	opts      Options
	sentinels map[string]struct{}
	logger    *zap.Logger
}

// NewAssessor creates an assessor with the given options.
func NewAssessor(opts Options) *Assessor {
	if opts.NoCallSentinels == nil {
		opts.NoCallSentinels = DefaultNoCallSentinels
	}
	if opts.CallRateWarn == 0 {
		opts.CallRateWarn = 0.98
	}
	if opts.LowCoverageFraction == 0 {
		opts.LowCoverageFraction = 0.5
	}
	if opts.MalformedWarnFraction == 0 {
		opts.MalformedWarnFraction = 0.01
	}
	if opts.Platforms == nil {
		opts.Platforms = KnownPlatforms
	}
	if opts.Expected == nil {
		opts.Expected = ExpectedChromosomeCounts
	}

	sentinels := make(map[string]struct{}, len(opts.NoCallSentinels))
	for _, s := range opts.NoCallSentinels {
		sentinels[strings.ToUpper(s)] = struct{}{}
	}

	return &Assessor{
		opts:      opts,
		sentinels: sentinels,
		logger:    zap.NewNop(),
	}
}

// SetLogger sets the logger for progress and warning messages.
func (a *Assessor) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Assess computes a quality report over the given records. It never fails:
// empty or malformed input degrades to a report with warnings.
func (a *Assessor) Assess(records []genotype.Record) *Report {
	r := &Report{
		TotalCalls:         len(records),
		ChromosomeCoverage: make(map[string]int),
		ChromosomeDetail:   make(map[string]ChromStats),
	}

	if len(records) == 0 {
		r.Grade = "poor"
		r.Sex = "unknown"
		r.Warnings = []string{"no data"}
		return r
	}

	chromNoCalls := make(map[string]int)

	for i := range records {
		rec := &records[i]
		g := strings.ToUpper(strings.TrimSpace(rec.Genotype))
		chrom := rec.NormalizeChrom()

		_, isSentinel := a.sentinels[g]
		switch {
		case isSentinel:
			r.NoCallCount++
			chromNoCalls[chrom]++
		case g == "":
			r.NoCallCount++
			r.Malformed++
			chromNoCalls[chrom]++
		case isValidGenotype(g):
			r.ValidCalls++
			r.ChromosomeCoverage[chrom]++
			if len(g) == 2 && g[0] != g[1] {
				r.Heterozygous++
			} else {
				r.Homozygous++
			}
			if strings.ContainsAny(g, "ID") {
				r.Indels++
			}
		default:
			r.NoCallCount++
			r.Malformed++
			chromNoCalls[chrom]++
		}
	}

	r.CallRate = float64(r.TotalCalls-r.NoCallCount) / float64(r.TotalCalls)
	if r.ValidCalls > 0 {
		r.HetRate = float64(r.Heterozygous) / float64(r.ValidCalls)
	}
	r.Grade = gradeFor(r.CallRate)

	for chrom, calls := range r.ChromosomeCoverage {
		nc := chromNoCalls[chrom]
		r.ChromosomeDetail[chrom] = ChromStats{
			Calls:    calls,
			NoCalls:  nc,
			CallRate: float64(calls) / float64(calls+nc),
		}
	}

	r.Sex = inferSex(r.ChromosomeCoverage)

	match := DetectPlatform(r.TotalCalls, a.opts.Header, a.opts.Platforms)
	if match.Found {
		r.DetectedPlatform = match.Label
		r.PlatformDescription = match.Description
		r.PlatformConfidence = match.Confidence
		r.PlatformAlternates = match.Alternates
	}

	r.Warnings = a.buildWarnings(r, match)

	a.logger.Debug("assessment complete",
		zap.Int("total_calls", r.TotalCalls),
		zap.Float64("call_rate", r.CallRate),
		zap.String("platform", r.DetectedPlatform))

	return r
}

// buildWarnings assembles the advisory warning list in a fixed order:
// call rate, chromosome coverage, missing chromosomes, heterozygosity,
// platform, malformed records.
func (a *Assessor) buildWarnings(r *Report, match PlatformMatch) []string {
	var warnings []string

	if r.CallRate < a.opts.CallRateWarn {
		warnings = append(warnings,
			fmt.Sprintf("low call rate (%.1f%%)", r.CallRate*100))
	}

	var lowCov []string
	for chrom, count := range r.ChromosomeCoverage {
		exp, ok := a.opts.Expected[chrom]
		if !ok {
			continue
		}
		floor := int(float64(exp.Min) * a.opts.LowCoverageFraction)
		if count < floor {
			lowCov = append(lowCov, fmt.Sprintf(
				"chromosome %s: low coverage (%d calls, expected %d-%d)",
				chrom, count, exp.Min, exp.Max))
		}
	}
	sort.Strings(lowCov)
	warnings = append(warnings, lowCov...)

	if missing := missingChromosomes(r.ChromosomeCoverage, a.opts.Expected); len(missing) > 0 {
		warnings = append(warnings,
			"missing chromosome data: "+strings.Join(missing, ", "))
	}

	if r.ValidCalls > 0 {
		if r.HetRate < 0.25 {
			warnings = append(warnings,
				"low heterozygosity - possible sample quality issue or consanguinity")
		} else if r.HetRate > 0.45 {
			warnings = append(warnings,
				"high heterozygosity - possible sample contamination")
		}
	}

	if !match.Found {
		warnings = append(warnings,
			fmt.Sprintf("unrecognized platform, %d markers", r.TotalCalls))
	}

	if frac := float64(r.Malformed) / float64(r.TotalCalls); frac > a.opts.MalformedWarnFraction {
		warnings = append(warnings,
			fmt.Sprintf("%d malformed genotype values (%.1f%%)", r.Malformed, frac*100))
	}

	return warnings
}

// isValidGenotype reports whether g is a plausible allele call: one or two
// characters from the allele alphabet, including insertion/deletion codes.
func isValidGenotype(g string) bool {
	if len(g) == 0 || len(g) > 2 {
		return false
	}
	for i := 0; i < len(g); i++ {
		switch g[i] {
		case 'A', 'C', 'G', 'T', 'I', 'D':
		default:
			return false
		}
	}
	return true
}

// gradeFor maps a call rate to a quality grade.
func gradeFor(callRate float64) string {
	switch {
	case callRate >= 0.98:
		return "excellent"
	case callRate >= 0.95:
		return "good"
	case callRate >= 0.90:
		return "acceptable"
	default:
		return "poor"
	}
}

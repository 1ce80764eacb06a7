// Package output provides report formatters and exporters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/genotools/snpqc/internal/ancient"
	"github.com/genotools/snpqc/internal/markers"
	"github.com/genotools/snpqc/internal/quality"
)

const rule = "----------------------------------------------------------------------"
const banner = "======================================================================"

// TextWriter writes human-readable reports.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a new text report writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the report banner.
func (tw *TextWriter) WriteHeader(title string) error {
	fmt.Fprintln(tw.w, banner)
	fmt.Fprintln(tw.w, title)
	fmt.Fprintf(tw.w, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(tw.w, banner)
	fmt.Fprintln(tw.w)
	fmt.Fprintln(tw.w, "DISCLAIMER: This is NOT medical advice. Consult healthcare")
	fmt.Fprintln(tw.w, "professionals before making any health decisions.")
	fmt.Fprintln(tw.w)
	return tw.w.Flush()
}

// WriteQuality writes the raw-data quality section.
func (tw *TextWriter) WriteQuality(name string, r *quality.Report) error {
	fmt.Fprintln(tw.w, rule)
	fmt.Fprintf(tw.w, "DATA QUALITY: %s\n", name)
	fmt.Fprintln(tw.w, rule)
	fmt.Fprintf(tw.w, "Total positions:  %d\n", r.TotalCalls)
	fmt.Fprintf(tw.w, "Valid calls:      %d\n", r.ValidCalls)
	fmt.Fprintf(tw.w, "No-calls:         %d\n", r.NoCallCount)
	fmt.Fprintf(tw.w, "Call rate:        %.2f%% (%s)\n", r.CallRate*100, r.Grade)
	fmt.Fprintf(tw.w, "Heterozygosity:   %.2f%%\n", r.HetRate*100)
	if r.DetectedPlatform != "" {
		fmt.Fprintf(tw.w, "Platform:         %s (%s confidence)\n", r.DetectedPlatform, r.PlatformConfidence)
		fmt.Fprintf(tw.w, "                  %s\n", r.PlatformDescription)
	} else {
		fmt.Fprintln(tw.w, "Platform:         unrecognized")
	}
	fmt.Fprintf(tw.w, "Inferred sex:     %s\n", r.Sex)

	if len(r.ChromosomeCoverage) > 0 {
		fmt.Fprintln(tw.w)
		fmt.Fprintln(tw.w, "Coverage by chromosome:")
		for _, chrom := range sortedChroms(r.ChromosomeCoverage) {
			fmt.Fprintf(tw.w, "  %-3s %d\n", chrom, r.ChromosomeCoverage[chrom])
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(tw.w)
		fmt.Fprintln(tw.w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(tw.w, "  ! %s\n", warn)
		}
	}
	fmt.Fprintln(tw.w)
	return tw.w.Flush()
}

// WriteAncient writes the ancient-marker section.
func (tw *TextWriter) WriteAncient(results []ancient.PeriodResult) error {
	for _, pr := range results {
		fmt.Fprintln(tw.w, rule)
		fmt.Fprintln(tw.w, strings.ToUpper(strings.ReplaceAll(pr.Key, "_", " ")))
		fmt.Fprintf(tw.w, "  %s\n", pr.Description)
		fmt.Fprintln(tw.w, rule)

		if len(pr.Found) == 0 {
			fmt.Fprintln(tw.w, "  No markers available in your data for this category.")
			fmt.Fprintln(tw.w)
			continue
		}

		for _, m := range pr.Found {
			label := m.Name
			if label == "" {
				label = m.RSID
			}
			fmt.Fprintf(tw.w, "\n  %s (%s): %s\n", label, m.RSID, m.Genotype)
			if m.Trait != "" {
				fmt.Fprintf(tw.w, "    -> %s\n", m.Trait)
			}
			if m.Origin != "" {
				fmt.Fprintf(tw.w, "    -> Origin: %s\n", m.Origin)
			}
			if m.HasAncient {
				fmt.Fprintln(tw.w, "    -> Carries ancient/ancestral allele")
			}
			if m.HasDerived {
				fmt.Fprintln(tw.w, "    -> Carries derived allele")
			}
			if m.HasArchaic {
				fmt.Fprintln(tw.w, "    -> Carries archaic (Neanderthal/Denisovan) allele")
			}
			if m.HasHaplogroup {
				fmt.Fprintf(tw.w, "    -> Haplogroup %s indicator positive\n", m.Haplogroup)
			}
		}
		fmt.Fprintln(tw.w)
	}
	return tw.w.Flush()
}

// WriteMarkers writes the health, pharmacogenomics, and trait sections.
func (tw *TextWriter) WriteMarkers(apoe string, health map[string][]markers.HealthResult, pharma []markers.PharmaResult, traits []markers.TraitResult) error {
	fmt.Fprintln(tw.w, rule)
	fmt.Fprintln(tw.w, "APOE STATUS")
	fmt.Fprintln(tw.w, rule)
	fmt.Fprintf(tw.w, "APOE Genotype: %s\n", apoe)
	if strings.Contains(apoe, "e4") {
		fmt.Fprintln(tw.w, "  -> e4 allele present - discuss with physician")
	}
	fmt.Fprintln(tw.w)

	fmt.Fprintln(tw.w, rule)
	fmt.Fprintln(tw.w, "HEALTH MARKERS BY CATEGORY")
	fmt.Fprintln(tw.w, rule)
	categories := make([]string, 0, len(health))
	for c := range health {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(tw.w, "\n%s:\n", strings.ToUpper(strings.ReplaceAll(category, "_", " ")))
		for _, m := range health[category] {
			flag := " "
			if m.Status != "normal" {
				flag = "!"
			}
			fmt.Fprintf(tw.w, "  %s %s %s: %s (%s)\n", flag, m.Gene, m.Name, m.Genotype, m.Status)
			if m.Note != "" {
				fmt.Fprintf(tw.w, "      %s\n", m.Note)
			}
		}
	}
	fmt.Fprintln(tw.w)

	fmt.Fprintln(tw.w, rule)
	fmt.Fprintln(tw.w, "PHARMACOGENOMICS")
	fmt.Fprintln(tw.w, rule)
	actionable := 0
	for _, p := range pharma {
		if !p.Actionable {
			continue
		}
		actionable++
		fmt.Fprintf(tw.w, "  ! %s %s: %s\n", p.Gene, p.Name, p.Genotype)
		fmt.Fprintf(tw.w, "    Effect: %s\n", p.Effect)
		fmt.Fprintf(tw.w, "    Drugs: %s\n", strings.Join(p.Drugs, ", "))
	}
	if actionable == 0 {
		fmt.Fprintln(tw.w, "  No actionable pharmacogenomic variants detected.")
	}
	fmt.Fprintln(tw.w)

	fmt.Fprintln(tw.w, rule)
	fmt.Fprintln(tw.w, "TRAITS")
	fmt.Fprintln(tw.w, rule)
	grouped := make(map[string][]string)
	for _, t := range traits {
		grouped[t.Trait] = append(grouped[t.Trait], t.Interpretations...)
	}
	traitNames := make([]string, 0, len(grouped))
	for t := range grouped {
		traitNames = append(traitNames, t)
	}
	sort.Strings(traitNames)
	for _, trait := range traitNames {
		interps := dedupe(grouped[trait])
		if len(interps) == 0 {
			continue
		}
		fmt.Fprintf(tw.w, "  %s: %s\n", strings.ReplaceAll(trait, "_", " "), strings.Join(interps, ", "))
	}
	fmt.Fprintln(tw.w)
	return tw.w.Flush()
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// sortedChroms orders chromosome labels numerically, then X, Y, MT.
func sortedChroms(coverage map[string]int) []string {
	order := map[string]int{"X": 23, "Y": 24, "MT": 25}
	chroms := make([]string, 0, len(coverage))
	for c := range coverage {
		chroms = append(chroms, c)
	}
	sort.Slice(chroms, func(i, j int) bool {
		return chromRank(chroms[i], order) < chromRank(chroms[j], order)
	})
	return chroms
}

func chromRank(c string, order map[string]int) int {
	if r, ok := order[c]; ok {
		return r
	}
	rank := 0
	for i := 0; i < len(c); i++ {
		if c[i] < '0' || c[i] > '9' {
			return 100 // unknown labels sort last
		}
		rank = rank*10 + int(c[i]-'0')
	}
	return rank
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

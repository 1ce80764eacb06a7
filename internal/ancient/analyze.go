package ancient

import (
	"strings"

	"github.com/genotools/snpqc/internal/genotype"
)

// MarkerResult is a marker joined against the dataset's genotype.
type MarkerResult struct {
	Marker
	Genotype      string
	HasAncient    bool
	HasDerived    bool
	HasArchaic    bool
	HasHaplogroup bool
}

// PeriodResult holds the markers found and missing for one period.
type PeriodResult struct {
	Key         string
	Description string
	Found       []MarkerResult
	Missing     []Marker
}

// Analyze joins the genotype index against the ancient marker table.
// Pure lookup; deterministic order matching Periods. A dataset lacking a
// marker lands in Missing, never an error.
func Analyze(idx genotype.Index) []PeriodResult {
	results := make([]PeriodResult, 0, len(Periods))

	for _, period := range Periods {
		pr := PeriodResult{
			Key:         period.Key,
			Description: period.Description,
		}

		for _, m := range period.Markers {
			geno := idx.Get(m.RSID)
			if geno == "" {
				pr.Missing = append(pr.Missing, m)
				continue
			}

			mr := MarkerResult{Marker: m, Genotype: geno}
			if m.Ancient != "" {
				mr.HasAncient = hasAllele(geno, m.Ancient)
			}
			if m.Derived != "" {
				mr.HasDerived = hasAllele(geno, m.Derived)
			}
			if m.Archaic != "" {
				mr.HasArchaic = hasAllele(geno, m.Archaic)
			}
			if m.Allele != "" {
				mr.HasHaplogroup = hasAllele(geno, m.Allele)
			}
			pr.Found = append(pr.Found, mr)
		}

		results = append(results, pr)
	}

	return results
}

func hasAllele(genotype, allele string) bool {
	return strings.Contains(strings.ToUpper(genotype), strings.ToUpper(allele))
}

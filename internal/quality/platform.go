package quality

import (
	"regexp"
	"strings"
)

// Platform describes a known genotyping chip or sequencing source.
// Min and Max bound the marker count the platform typically exports.
type Platform struct {
	Label         string
	Min, Max      int
	HeaderPattern string // optional regexp matched against file header lines
	Description   string
}

// KnownPlatforms is the reference table for platform detection, checked in
// order with first match winning. Marker-count ranges overlap between
// vendors; the fixed priority keeps classification deterministic.
var KnownPlatforms = []Platform{
	{"23andme_v5", 630000, 680000, `23andme`, "23andMe v5 chip (2017+)"},
	{"23andme_v4", 570000, 620000, `23andme`, "23andMe v4 chip (2013-2017)"},
	{"23andme_v3", 950000, 1050000, `23andme`, "23andMe v3 chip (2010-2013)"},
	{"ancestrydna_v2", 680000, 750000, `ancestrydna|ancestry\.com`, "AncestryDNA v2 chip"},
	{"ancestrydna_v1", 700000, 800000, `ancestrydna`, "AncestryDNA v1 chip"},
	{"myheritage", 680000, 750000, `myheritage`, "MyHeritage DNA"},
	{"ftdna", 680000, 750000, `family\s*tree\s*dna|ftdna`, "FamilyTreeDNA"},
	{"living_dna", 630000, 700000, `living\s*dna`, "LivingDNA"},
	{"wes", 100000, 3000000, `##fileformat=VCF`, "Whole Exome Sequencing"},
	{"wgs", 3000000, 5000000000, `##fileformat=VCF`, "Whole Genome Sequencing"},
	{"nebula", 15000000, 3500000000, `nebula`, "Nebula Genomics (low-pass WGS)"},
}

// PlatformMatch is the outcome of platform detection.
type PlatformMatch struct {
	Found       bool
	Label       string
	Description string
	Confidence  string   // high (header+count), moderate (unique count), low (ambiguous count)
	Alternates  []string // other platforms whose count range also matched
}

// DetectPlatform classifies a dataset against the platform table.
// Header lines, when available, take priority over marker count alone.
// Best effort: an unmatched count yields Found == false, not an error.
func DetectPlatform(markerCount int, header []string, platforms []Platform) PlatformMatch {
	if len(platforms) == 0 {
		platforms = KnownPlatforms
	}

	headerText := strings.ToLower(strings.Join(header, "\n"))
	if headerText != "" {
		for _, p := range platforms {
			if p.HeaderPattern == "" {
				continue
			}
			re, err := regexp.Compile(`(?i)` + p.HeaderPattern)
			if err != nil {
				continue
			}
			if re.MatchString(headerText) && markerCount >= p.Min && markerCount <= p.Max {
				return PlatformMatch{
					Found:       true,
					Label:       p.Label,
					Description: p.Description,
					Confidence:  "high",
				}
			}
		}
	}

	var matched []Platform
	for _, p := range platforms {
		if markerCount >= p.Min && markerCount <= p.Max {
			matched = append(matched, p)
		}
	}

	switch len(matched) {
	case 0:
		return PlatformMatch{}
	case 1:
		return PlatformMatch{
			Found:       true,
			Label:       matched[0].Label,
			Description: matched[0].Description,
			Confidence:  "moderate",
		}
	default:
		alternates := make([]string, 0, len(matched)-1)
		for _, p := range matched[1:] {
			alternates = append(alternates, p.Label)
		}
		return PlatformMatch{
			Found:       true,
			Label:       matched[0].Label,
			Description: matched[0].Description,
			Confidence:  "low",
			Alternates:  alternates,
		}
	}
}

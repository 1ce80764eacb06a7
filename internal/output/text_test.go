package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genotools/snpqc/internal/ancient"
	"github.com/genotools/snpqc/internal/markers"
	"github.com/genotools/snpqc/internal/quality"
)

func sampleReport() *quality.Report {
	return &quality.Report{
		TotalCalls:  10,
		NoCallCount: 2,
		ValidCalls:  8,
		CallRate:    0.8,
		ChromosomeCoverage: map[string]int{
			"1": 5, "2": 2, "X": 1,
		},
		Grade:    "poor",
		Sex:      "likely_female",
		Warnings: []string{"low call rate (80.0%)"},
	}
}

func TestTextWriter_Quality(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf)

	require.NoError(t, tw.WriteQuality("sample.txt", sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "DATA QUALITY: sample.txt")
	assert.Contains(t, out, "Total positions:  10")
	assert.Contains(t, out, "Call rate:        80.00% (poor)")
	assert.Contains(t, out, "Platform:         unrecognized")
	assert.Contains(t, out, "! low call rate (80.0%)")

	// Chromosomes appear in karyotype order
	i1 := strings.Index(out, "1   5")
	i2 := strings.Index(out, "2   2")
	ix := strings.Index(out, "X   1")
	assert.True(t, i1 >= 0 && i1 < i2 && i2 < ix, "chromosomes out of order in:\n%s", out)
}

func TestTextWriter_QualityWithPlatform(t *testing.T) {
	r := sampleReport()
	r.DetectedPlatform = "23andme_v5"
	r.PlatformDescription = "23andMe v5 chip (2017+)"
	r.PlatformConfidence = "high"

	var buf bytes.Buffer
	tw := NewTextWriter(&buf)
	require.NoError(t, tw.WriteQuality("sample.txt", r))

	assert.Contains(t, buf.String(), "23andme_v5 (high confidence)")
	assert.Contains(t, buf.String(), "23andMe v5 chip (2017+)")
}

func TestTextWriter_Markers(t *testing.T) {
	health := map[string][]markers.HealthResult{
		"clotting": {
			{RSID: "rs6025", Gene: "F5", Name: "Factor V Leiden", Genotype: "AG", Status: "heterozygous", Note: "reference note"},
		},
	}
	pharma := []markers.PharmaResult{
		{RSID: "rs9923231", Gene: "VKORC1", Name: "Warfarin sensitivity", Genotype: "TT",
			Effect: "Increased sensitivity - lower dose needed", Drugs: []string{"warfarin"}, Actionable: true},
	}
	traits := []markers.TraitResult{
		{RSID: "rs4988235", Trait: "lactose", Interpretations: []string{"lactase persistent"}},
	}

	var buf bytes.Buffer
	tw := NewTextWriter(&buf)
	require.NoError(t, tw.WriteMarkers("e3/e4", health, pharma, traits))

	out := buf.String()
	assert.Contains(t, out, "APOE Genotype: e3/e4")
	assert.Contains(t, out, "e4 allele present")
	assert.Contains(t, out, "! F5 Factor V Leiden: AG (heterozygous)")
	assert.Contains(t, out, "reference note")
	assert.Contains(t, out, "VKORC1 Warfarin sensitivity: TT")
	assert.Contains(t, out, "Drugs: warfarin")
	assert.Contains(t, out, "lactose: lactase persistent")
}

func TestTextWriter_MarkersNoActionablePharma(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTextWriter(&buf)
	require.NoError(t, tw.WriteMarkers("e3/e3", nil, nil, nil))

	assert.Contains(t, buf.String(), "No actionable pharmacogenomic variants detected.")
}

func TestTextWriter_Ancient(t *testing.T) {
	results := []ancient.PeriodResult{
		{
			Key:         "archaic_introgression",
			Description: "Markers from Neanderthal/Denisovan introgression",
			Found: []ancient.MarkerResult{
				{
					Marker:     ancient.Marker{RSID: "rs2298850", Name: "OAS1", Archaic: "G", Trait: "Immune function (Neanderthal origin)"},
					Genotype:   "GT",
					HasArchaic: true,
				},
			},
		},
		{
			Key:         "neolithic_farmer",
			Description: "Early farmers from Anatolia (~7,000-4,000 BCE)",
		},
	}

	var buf bytes.Buffer
	tw := NewTextWriter(&buf)
	require.NoError(t, tw.WriteAncient(results))

	out := buf.String()
	assert.Contains(t, out, "ARCHAIC INTROGRESSION")
	assert.Contains(t, out, "OAS1 (rs2298850): GT")
	assert.Contains(t, out, "Carries archaic (Neanderthal/Denisovan) allele")
	assert.Contains(t, out, "No markers available in your data for this category.")
}

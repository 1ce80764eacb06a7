package quality

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genotools/snpqc/internal/genotype"
)

func rec(rsid, chrom, geno string) genotype.Record {
	return genotype.Record{RSID: rsid, Chromosome: chrom, Genotype: geno}
}

// Ten records: five valid on chromosome 1, three valid on chromosome 2,
// two no-calls. Heterozygosity kept in the normal range.
func tenRecordDataset() []genotype.Record {
	return []genotype.Record{
		rec("rs1", "1", "AA"),
		rec("rs2", "1", "AG"),
		rec("rs3", "1", "GG"),
		rec("rs4", "1", "CT"),
		rec("rs5", "1", "CC"),
		rec("rs6", "2", "TT"),
		rec("rs7", "2", "AC"),
		rec("rs8", "2", "GG"),
		rec("rs9", "1", "--"),
		rec("rs10", "2", "--"),
	}
}

func TestAssess_BasicCounts(t *testing.T) {
	a := NewAssessor(Options{})
	r := a.Assess(tenRecordDataset())

	assert.Equal(t, 10, r.TotalCalls)
	assert.Equal(t, 2, r.NoCallCount)
	assert.Equal(t, 8, r.ValidCalls)
	assert.InDelta(t, 0.8, r.CallRate, 1e-9)
	assert.Equal(t, map[string]int{"1": 5, "2": 3}, r.ChromosomeCoverage)
}

func TestAssess_Invariants(t *testing.T) {
	a := NewAssessor(Options{})
	r := a.Assess(tenRecordDataset())

	assert.Equal(t, r.TotalCalls, r.NoCallCount+r.ValidCalls)
	assert.InDelta(t, 1-float64(r.NoCallCount)/float64(r.TotalCalls), r.CallRate, 1e-9)

	covered := 0
	for chrom, count := range r.ChromosomeCoverage {
		assert.Greater(t, count, 0, "chromosome %s has zero count", chrom)
		covered += count
	}
	assert.Equal(t, r.ValidCalls, covered)
}

func TestAssess_EmptyInput(t *testing.T) {
	a := NewAssessor(Options{})
	r := a.Assess(nil)

	assert.Equal(t, 0, r.TotalCalls)
	assert.Equal(t, 0.0, r.CallRate)
	assert.Equal(t, []string{"no data"}, r.Warnings)
	assert.Empty(t, r.ChromosomeCoverage)
	assert.Equal(t, "poor", r.Grade)
}

func TestAssess_CallRateBounds(t *testing.T) {
	a := NewAssessor(Options{})

	inputs := [][]genotype.Record{
		nil,
		{rec("rs1", "1", "--")},
		{rec("rs1", "1", "AA")},
		{rec("rs1", "1", "??"), rec("rs2", "1", "AG")},
		tenRecordDataset(),
	}

	for i, records := range inputs {
		r := a.Assess(records)
		assert.GreaterOrEqual(t, r.CallRate, 0.0, "input %d", i)
		assert.LessOrEqual(t, r.CallRate, 1.0, "input %d", i)
	}
}

func TestAssess_SentinelCaseInsensitive(t *testing.T) {
	a := NewAssessor(Options{})

	for _, geno := range []string{"--", "nn", "NN", "Nn", "nc", "no call", "dd", "Ii", "00", "."} {
		r := a.Assess([]genotype.Record{rec("rs1", "1", geno)})
		assert.Equal(t, 1, r.NoCallCount, "genotype %q should be a no-call", geno)
		assert.Equal(t, 0, r.ValidCalls, "genotype %q should not be valid", geno)
	}
}

func TestAssess_CustomSentinels(t *testing.T) {
	a := NewAssessor(Options{NoCallSentinels: []string{"xx"}})

	r := a.Assess([]genotype.Record{
		rec("rs1", "1", "XX"),
		rec("rs2", "1", "AG"),
	})
	assert.Equal(t, 1, r.NoCallCount)
	assert.Equal(t, 0, r.Malformed)

	// With the default set replaced, "--" is no longer a recognized
	// sentinel; it still counts as a no-call, but as a malformed one.
	r = a.Assess([]genotype.Record{rec("rs1", "1", "--")})
	assert.Equal(t, 1, r.NoCallCount)
	assert.Equal(t, 1, r.Malformed)
}

func TestAssess_MalformedRecords(t *testing.T) {
	records := []genotype.Record{
		rec("rs1", "1", "AG"),
		rec("rs2", "1", ""),
		rec("rs3", "1", "Z9"),
		rec("rs4", "1", "AGT"),
	}

	a := NewAssessor(Options{})
	r := a.Assess(records)

	assert.Equal(t, 3, r.NoCallCount)
	assert.Equal(t, 3, r.Malformed)
	assert.Equal(t, 1, r.ValidCalls)
	assertWarningContains(t, r.Warnings, "malformed")
}

func TestAssess_LowCallRateWarning(t *testing.T) {
	var records []genotype.Record
	for i := 0; i < 25; i++ {
		records = append(records, rec(fmt.Sprintf("rs%d", i), "1", "AG"))
	}
	for i := 25; i < 50; i++ {
		records = append(records, rec(fmt.Sprintf("rs%d", i), "1", "--"))
	}

	a := NewAssessor(Options{})
	r := a.Assess(records)

	assert.InDelta(t, 0.5, r.CallRate, 1e-9)
	assertWarningContains(t, r.Warnings, "low call rate")
}

func TestAssess_UnrecognizedPlatformWarning(t *testing.T) {
	a := NewAssessor(Options{})
	r := a.Assess(tenRecordDataset())

	assert.Empty(t, r.DetectedPlatform)
	assertWarningContains(t, r.Warnings, "unrecognized platform, 10 markers")
}

func TestAssess_PlatformFromCustomTable(t *testing.T) {
	a := NewAssessor(Options{
		Platforms: []Platform{
			{Label: "chip_a", Min: 5, Max: 20, Description: "test chip"},
		},
	})
	r := a.Assess(tenRecordDataset())

	assert.Equal(t, "chip_a", r.DetectedPlatform)
	assert.Equal(t, "test chip", r.PlatformDescription)
	assert.Equal(t, "moderate", r.PlatformConfidence)
}

func TestAssess_Heterozygosity(t *testing.T) {
	a := NewAssessor(Options{})
	r := a.Assess(tenRecordDataset())

	require.Equal(t, 8, r.ValidCalls)
	assert.Equal(t, 3, r.Heterozygous)
	assert.Equal(t, 5, r.Homozygous)
	assert.InDelta(t, 0.375, r.HetRate, 1e-9)
}

func TestAssess_LowHeterozygosityWarning(t *testing.T) {
	records := []genotype.Record{
		rec("rs1", "1", "AA"),
		rec("rs2", "1", "GG"),
		rec("rs3", "1", "CC"),
		rec("rs4", "1", "TT"),
	}

	a := NewAssessor(Options{})
	r := a.Assess(records)

	assert.Equal(t, 0.0, r.HetRate)
	assertWarningContains(t, r.Warnings, "low heterozygosity")
}

func TestAssess_LowCoverageWarning(t *testing.T) {
	a := NewAssessor(Options{
		Expected: map[string]CountRange{"1": {100, 200}},
	})
	r := a.Assess(tenRecordDataset())

	assertWarningContains(t, r.Warnings, "chromosome 1: low coverage")
}

func TestAssess_MissingChromosomeWarning(t *testing.T) {
	a := NewAssessor(Options{
		Expected: map[string]CountRange{
			"1": {1, 10},
			"9": {1, 10},
		},
	})
	r := a.Assess(tenRecordDataset())

	assertWarningContains(t, r.Warnings, "missing chromosome data: 9")
}

func TestAssess_IndelGenotypes(t *testing.T) {
	records := []genotype.Record{
		rec("rs1", "1", "AG"),
		rec("rs2", "1", "DI"),
		rec("rs3", "1", "ID"),
	}

	a := NewAssessor(Options{})
	r := a.Assess(records)

	assert.Equal(t, 3, r.ValidCalls)
	assert.Equal(t, 2, r.Indels)
}

func TestAssess_ChromPrefixNormalized(t *testing.T) {
	records := []genotype.Record{
		rec("rs1", "chr1", "AG"),
		rec("rs2", "1", "CC"),
	}

	a := NewAssessor(Options{})
	r := a.Assess(records)

	assert.Equal(t, map[string]int{"1": 2}, r.ChromosomeCoverage)
}

func TestAssess_Grades(t *testing.T) {
	tests := []struct {
		callRate float64
		want     string
	}{
		{0.99, "excellent"},
		{0.98, "excellent"},
		{0.96, "good"},
		{0.92, "acceptable"},
		{0.5, "poor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gradeFor(tt.callRate), "call rate %v", tt.callRate)
	}
}

func TestAssess_OrderIndependent(t *testing.T) {
	records := tenRecordDataset()
	reversed := make([]genotype.Record, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	a := NewAssessor(Options{})
	r1 := a.Assess(records)
	r2 := a.Assess(reversed)

	assert.Equal(t, r1.TotalCalls, r2.TotalCalls)
	assert.Equal(t, r1.NoCallCount, r2.NoCallCount)
	assert.Equal(t, r1.CallRate, r2.CallRate)
	assert.Equal(t, r1.ChromosomeCoverage, r2.ChromosomeCoverage)
	assert.Equal(t, r1.Warnings, r2.Warnings)
}

func assertWarningContains(t *testing.T, warnings []string, substr string) {
	t.Helper()
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return
		}
	}
	t.Errorf("no warning containing %q in %v", substr, warnings)
}

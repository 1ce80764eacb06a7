package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform_ByCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{600000, "23andme_v4"},
		{650000, "23andme_v5"},
		{1000000, "23andme_v3"},
		{4000000, "wgs"},
	}

	for _, tt := range tests {
		m := DetectPlatform(tt.count, nil, nil)
		assert.True(t, m.Found, "count %d should match", tt.count)
		assert.Equal(t, tt.want, m.Label, "count %d", tt.count)
	}
}

func TestDetectPlatform_NoMatch(t *testing.T) {
	for _, count := range []int{0, 10, 99999} {
		m := DetectPlatform(count, nil, nil)
		assert.False(t, m.Found, "count %d should not match", count)
	}
}

func TestDetectPlatform_FirstMatchWins(t *testing.T) {
	// 700000 falls in the ancestrydna_v2, ancestrydna_v1, myheritage, and
	// ftdna ranges; table order decides.
	m := DetectPlatform(700000, nil, nil)
	assert.True(t, m.Found)
	assert.Equal(t, "ancestrydna_v2", m.Label)
	assert.Equal(t, "low", m.Confidence)
	assert.Contains(t, m.Alternates, "myheritage")
	assert.Contains(t, m.Alternates, "ftdna")
}

func TestDetectPlatform_HeaderHint(t *testing.T) {
	header := []string{"# This data file generated by 23andMe at: ..."}

	m := DetectPlatform(650000, header, nil)
	assert.True(t, m.Found)
	assert.Equal(t, "23andme_v5", m.Label)
	assert.Equal(t, "high", m.Confidence)

	// Header hint overrides count-order ambiguity
	header = []string{"#MyHeritage DNA raw data."}
	m = DetectPlatform(700000, header, nil)
	assert.True(t, m.Found)
	assert.Equal(t, "myheritage", m.Label)
	assert.Equal(t, "high", m.Confidence)
}

func TestDetectPlatform_HeaderWithoutCountMatch(t *testing.T) {
	// A vendor banner alone is not enough when the count is out of range.
	header := []string{"# This data file generated by 23andMe at: ..."}
	m := DetectPlatform(50, header, nil)
	assert.False(t, m.Found)
}

func TestDetectPlatform_SingleMatchModerate(t *testing.T) {
	m := DetectPlatform(4000000, nil, nil)
	assert.Equal(t, "wgs", m.Label)
	assert.Equal(t, "moderate", m.Confidence)
	assert.Empty(t, m.Alternates)
}

func TestDetectPlatform_AmbiguousCountReportsAlternates(t *testing.T) {
	// 600000 sits in both the 23andme_v4 and exome ranges.
	m := DetectPlatform(600000, nil, nil)
	assert.Equal(t, "23andme_v4", m.Label)
	assert.Equal(t, "low", m.Confidence)
	assert.Contains(t, m.Alternates, "wes")
}

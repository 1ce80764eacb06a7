// Package genotype provides raw consumer genotype file parsing functionality.
package genotype

import "strings"

// Record represents a single genotyped position from a raw data export.
type Record struct {
	RSID       string // Position identifier (e.g., "rs4680")
	Chromosome string // Chromosome name (e.g., "1", "X", "MT", "chr12")
	Position   int64  // 1-based genomic position (0 when the source omits it)
	Genotype   string // Allele pair (e.g., "AG"), or a no-call sentinel
}

// NormalizeChrom returns the chromosome name without "chr" prefix, uppercased.
func (r *Record) NormalizeChrom() string {
	c := r.Chromosome
	if len(c) > 3 && strings.EqualFold(c[:3], "chr") {
		c = c[3:]
	}
	return strings.ToUpper(c)
}

// Index is an rsid -> genotype lookup built from a record sequence.
// Marker analyses (ancient DNA, health, traits) join against it.
type Index map[string]string

// BuildIndex builds an Index from records. Later duplicates win, matching
// how consumer exports are deduplicated downstream.
func BuildIndex(records []Record) Index {
	idx := make(Index, len(records))
	for _, r := range records {
		idx[r.RSID] = r.Genotype
	}
	return idx
}

// Get returns the genotype for an rsid, or "" when the position is absent.
func (idx Index) Get(rsid string) string {
	return idx[rsid]
}

package markers

import (
	"sort"
	"strings"

	"github.com/genotools/snpqc/internal/genotype"
)

// HealthResult is one health marker joined against the dataset.
type HealthResult struct {
	RSID       string
	Gene       string
	Name       string
	Genotype   string
	RiskAllele string
	RiskCopies int
	Impact     string
	Status     string // homozygous_risk, heterozygous, normal
	Note       string // optional reference-database annotation
}

// PharmaResult is one pharmacogenomic marker joined against the dataset.
type PharmaResult struct {
	RSID         string
	Gene         string
	Name         string
	Genotype     string
	EffectAllele string
	EffectCopies int
	Effect       string
	Drugs        []string
	Actionable   bool
}

// TraitResult is one trait marker joined against the dataset.
type TraitResult struct {
	RSID            string
	Name            string
	Trait           string
	Genotype        string
	Interpretations []string
}

// AnalyzeHealth joins the dataset against the health marker table,
// grouping results by category. Markers absent from the dataset are
// omitted. Results within a category are sorted by rsid.
func AnalyzeHealth(idx genotype.Index) map[string][]HealthResult {
	results := make(map[string][]HealthResult)

	for rsid, info := range HealthMarkers {
		geno := idx.Get(rsid)
		if geno == "" {
			continue
		}

		copies := strings.Count(strings.ToUpper(geno), info.Risk)
		status := "normal"
		switch copies {
		case 2:
			status = "homozygous_risk"
		case 1:
			status = "heterozygous"
		}

		results[info.Category] = append(results[info.Category], HealthResult{
			RSID:       rsid,
			Gene:       info.Gene,
			Name:       info.Name,
			Genotype:   geno,
			RiskAllele: info.Risk,
			RiskCopies: copies,
			Impact:     info.Impact,
			Status:     status,
		})
	}

	for _, rs := range results {
		sort.Slice(rs, func(i, j int) bool { return rs[i].RSID < rs[j].RSID })
	}

	return results
}

// AnalyzePharma joins the dataset against the pharmacogenomic table,
// sorted by rsid.
func AnalyzePharma(idx genotype.Index) []PharmaResult {
	var results []PharmaResult

	for rsid, info := range PharmaMarkers {
		geno := idx.Get(rsid)
		if geno == "" {
			continue
		}

		copies := strings.Count(strings.ToUpper(geno), info.EffectAllele)
		effect := "Normal metabolism"
		if copies > 0 {
			effect = info.Effect
		}

		results = append(results, PharmaResult{
			RSID:         rsid,
			Gene:         info.Gene,
			Name:         info.Name,
			Genotype:     geno,
			EffectAllele: info.EffectAllele,
			EffectCopies: copies,
			Effect:       effect,
			Drugs:        info.Drugs,
			Actionable:   copies > 0,
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].RSID < results[j].RSID })
	return results
}

// AnalyzeTraits joins the dataset against the trait table, sorted by rsid.
func AnalyzeTraits(idx genotype.Index) []TraitResult {
	var results []TraitResult

	for rsid, info := range TraitMarkers {
		geno := idx.Get(rsid)
		if geno == "" {
			continue
		}

		gu := strings.ToUpper(geno)
		var interps []string
		for allele, meaning := range info.Alleles {
			if strings.Contains(gu, allele) {
				interps = append(interps, meaning)
			}
		}
		sort.Strings(interps)

		results = append(results, TraitResult{
			RSID:            rsid,
			Name:            info.Name,
			Trait:           info.Trait,
			Genotype:        geno,
			Interpretations: interps,
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].RSID < results[j].RSID })
	return results
}

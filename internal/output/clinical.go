package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/genotools/snpqc/internal/markers"
	"github.com/genotools/snpqc/internal/quality"
)

// ClassifiedVariant is a variant with an ACMG-style classification code.
type ClassifiedVariant struct {
	RSID           string `json:"rsid"`
	Gene           string `json:"gene"`
	Name           string `json:"name"`
	Genotype       string `json:"genotype"`
	Classification string `json:"classification"` // P, LP, VUS, LB, B, RF
	Zygosity       string `json:"zygosity"`
}

// PharmaSummary is a pharmacogenomic finding for the clinical export.
type PharmaSummary struct {
	RSID   string   `json:"rsid"`
	Gene   string   `json:"gene"`
	Effect string   `json:"effect"`
	Drugs  []string `json:"affected_drugs"`
}

// DataSource describes the raw dataset behind a clinical export.
type DataSource struct {
	SNPsAnalyzed    int     `json:"snps_analyzed"`
	Platform        string  `json:"platform"`
	CallRatePercent float64 `json:"call_rate_percent"`
	QualityGrade    string  `json:"quality_grade"`
}

// ClinicalExport is an ACMG-style report for genetic counselors.
// Consumer-array findings are advisory; classification here never exceeds
// risk-factor level because array data is not clinically confirmed.
type ClinicalExport struct {
	ReportType  string    `json:"report_type"`
	Version     string    `json:"version"`
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`

	DataSource DataSource `json:"data_source"`

	RiskFactors      []ClassifiedVariant `json:"risk_factors"`
	VUSNotable       []ClassifiedVariant `json:"vus_notable"`
	Pharmacogenomics []PharmaSummary     `json:"pharmacogenomics_summary"`
	APOEStatus       string              `json:"apoe_status"`
	QualityWarnings  []string            `json:"quality_warnings"`
	Recommendations  []string            `json:"recommendations"`
	Limitations      []string            `json:"limitations"`
}

// NewClinicalExport assembles a clinical export from analysis results.
func NewClinicalExport(qr *quality.Report, apoe string, health map[string][]markers.HealthResult, pharma []markers.PharmaResult) *ClinicalExport {
	exp := &ClinicalExport{
		ReportType:  "genetic_counselor_clinical_export",
		Version:     "1.0",
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		APOEStatus:  apoe,
		Limitations: []string{
			"Consumer genotyping arrays do not distinguish imputed from directly genotyped calls",
			"Findings require clinical confirmation before any medical action",
			"Absence of a risk variant in this report does not rule out the condition",
		},
	}

	if qr != nil {
		exp.DataSource = DataSource{
			SNPsAnalyzed:    qr.TotalCalls,
			Platform:        qr.DetectedPlatform,
			CallRatePercent: qr.CallRate * 100,
			QualityGrade:    qr.Grade,
		}
		exp.QualityWarnings = qr.Warnings
	}

	for _, results := range health {
		for _, h := range results {
			if h.Status == "normal" {
				continue
			}
			cv := ClassifiedVariant{
				RSID:     h.RSID,
				Gene:     h.Gene,
				Name:     h.Name,
				Genotype: h.Genotype,
				Zygosity: h.Status,
			}
			if h.Impact == "high" {
				cv.Classification = "RF"
				exp.RiskFactors = append(exp.RiskFactors, cv)
			} else {
				cv.Classification = "VUS"
				exp.VUSNotable = append(exp.VUSNotable, cv)
			}
		}
	}
	sortClassified(exp.RiskFactors)
	sortClassified(exp.VUSNotable)

	for _, p := range pharma {
		if !p.Actionable {
			continue
		}
		exp.Pharmacogenomics = append(exp.Pharmacogenomics, PharmaSummary{
			RSID:   p.RSID,
			Gene:   p.Gene,
			Effect: p.Effect,
			Drugs:  p.Drugs,
		})
	}

	exp.Recommendations = buildRecommendations(exp, qr)
	return exp
}

// WriteClinical writes the export as indented JSON.
func WriteClinical(w io.Writer, exp *ClinicalExport) error {
	return WriteJSON(w, exp)
}

func buildRecommendations(exp *ClinicalExport, qr *quality.Report) []string {
	var recs []string
	if len(exp.RiskFactors) > 0 {
		recs = append(recs, "Genetic counseling and clinical confirmation recommended for risk-factor findings")
	}
	if len(exp.Pharmacogenomics) > 0 {
		recs = append(recs, "Review pharmacogenomic findings before prescribing affected drugs")
	}
	if qr != nil && qr.Grade == "poor" {
		recs = append(recs, "Consider re-testing with a fresh sample; data quality is below acceptable thresholds")
	}
	if len(recs) == 0 {
		recs = append(recs, "No clinically actionable findings in analyzed markers")
	}
	return recs
}

func sortClassified(vs []ClassifiedVariant) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].RSID < vs[j].RSID })
}

// FileName returns a stable export file name for a given source path stem.
func FileName(stem, kind string) string {
	return fmt.Sprintf("%s_%s.json", stem, kind)
}

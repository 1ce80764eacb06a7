package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/genotools/snpqc/internal/ancient"
	"github.com/genotools/snpqc/internal/markers"
	"github.com/genotools/snpqc/internal/quality"
)

// AnalysisReport bundles every analysis section for JSON export.
type AnalysisReport struct {
	Source      string                            `json:"source"`
	GeneratedAt time.Time                         `json:"generated_at"`
	Quality     *quality.Report                   `json:"quality,omitempty"`
	APOEStatus  string                            `json:"apoe_status,omitempty"`
	Health      map[string][]markers.HealthResult `json:"health,omitempty"`
	Pharma      []markers.PharmaResult            `json:"pharmacogenomics,omitempty"`
	Traits      []markers.TraitResult             `json:"traits,omitempty"`
	Ancient     []ancient.PeriodResult            `json:"ancient,omitempty"`
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

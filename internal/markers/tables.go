// Package markers analyzes health, pharmacogenomic, and trait markers
// against a genotype dataset. All tables are static domain data covering
// common variants present on major consumer arrays.
package markers

// HealthMarker describes a health-associated variant and its risk allele.
type HealthMarker struct {
	Gene     string
	Name     string
	Risk     string // risk allele
	Category string
	Impact   string // high, moderate, low
}

// HealthMarkers maps rsid to health marker metadata.
var HealthMarkers = map[string]HealthMarker{
	// Cardiovascular
	"rs429358":   {"APOE", "APOE e4 marker 1", "C", "alzheimers_cardiovascular", "high"},
	"rs7412":     {"APOE", "APOE e4 marker 2", "C", "alzheimers_cardiovascular", "high"},
	"rs1333049":  {"9p21", "CAD risk variant", "C", "cardiovascular", "moderate"},
	"rs10757274": {"9p21", "CAD risk variant 2", "G", "cardiovascular", "moderate"},
	"rs4420638":  {"APOC1", "Lipid metabolism", "G", "cardiovascular", "moderate"},
	"rs6025":     {"F5", "Factor V Leiden", "A", "clotting", "high"},
	"rs1799963":  {"F2", "Prothrombin G20210A", "A", "clotting", "high"},

	// Metabolic
	"rs1801133": {"MTHFR", "C677T", "A", "methylation", "moderate"},
	"rs1801131": {"MTHFR", "A1298C", "G", "methylation", "moderate"},
	"rs1805087": {"MTR", "A2756G", "G", "methylation", "low"},
	"rs1801394": {"MTRR", "A66G", "G", "methylation", "low"},
	"rs1800562": {"HFE", "C282Y", "A", "iron_metabolism", "high"},
	"rs1799945": {"HFE", "H63D", "G", "iron_metabolism", "moderate"},
	"rs7903146": {"TCF7L2", "Diabetes risk", "T", "diabetes", "moderate"},

	// Cancer predisposition indicators (common variants only, not diagnostic)
	"rs1042522": {"TP53", "Arg72Pro", "C", "cancer_related", "low"},
	"rs2981582": {"FGFR2", "Breast cancer risk", "A", "cancer_related", "low"},
	"rs6983267": {"8q24", "Colorectal risk", "G", "cancer_related", "low"},

	// Eye health
	"rs1061170":  {"CFH", "Macular degeneration", "C", "eye_health", "moderate"},
	"rs10490924": {"ARMS2", "AMD risk", "T", "eye_health", "moderate"},

	// Autoimmune
	"rs2187668": {"HLA-DQ2.5", "Celiac risk", "T", "autoimmune", "moderate"},
	"rs7454108": {"HLA-DQ8", "Celiac risk 2", "C", "autoimmune", "moderate"},

	// Neurological / metabolic
	"rs9939609": {"FTO", "Obesity risk", "A", "metabolic", "low"},
	"rs4680":    {"COMT", "Val158Met", "G", "neurological", "moderate"},
	"rs6265":    {"BDNF", "Val66Met", "T", "neurological", "moderate"},
	"rs53576":   {"OXTR", "Oxytocin receptor", "A", "neurological", "low"},
	"rs1800497": {"DRD2", "Taq1A", "A", "neurological", "moderate"},
}

// PharmaMarker describes a pharmacogenomic variant.
type PharmaMarker struct {
	Gene         string
	Name         string
	EffectAllele string
	Effect       string
	Drugs        []string
}

// PharmaMarkers maps rsid to pharmacogenomic marker metadata.
var PharmaMarkers = map[string]PharmaMarker{
	"rs9923231":  {"VKORC1", "Warfarin sensitivity", "T", "Increased sensitivity - lower dose needed", []string{"warfarin"}},
	"rs1799853":  {"CYP2C9", "*2 variant", "T", "Reduced metabolism", []string{"warfarin", "NSAIDs"}},
	"rs1057910":  {"CYP2C9", "*3 variant", "C", "Significantly reduced metabolism", []string{"warfarin", "NSAIDs"}},
	"rs4244285":  {"CYP2C19", "*2 variant", "A", "Poor metabolizer", []string{"clopidogrel", "PPIs"}},
	"rs4986893":  {"CYP2C19", "*3 variant", "A", "Poor metabolizer", []string{"clopidogrel"}},
	"rs12248560": {"CYP2C19", "*17 variant", "T", "Ultra-rapid metabolizer", []string{"clopidogrel"}},
	"rs4149056":  {"SLCO1B1", "Statin myopathy risk", "C", "Increased myopathy risk", []string{"simvastatin", "atorvastatin"}},
	"rs1799971":  {"OPRM1", "Opioid receptor", "G", "Reduced response to opioids", []string{"morphine", "codeine"}},
	"rs762551":   {"CYP1A2", "Caffeine metabolism", "C", "Slow metabolizer", []string{"caffeine"}},
	"rs3892097":  {"CYP2D6", "*4 variant", "A", "Poor metabolizer", []string{"codeine", "tramadol", "antidepressants"}},
	"rs25531":    {"SLC6A4", "Serotonin transporter", "G", "May affect SSRI response", []string{"SSRIs"}},
}

// TraitMarker describes a trait-associated variant. Alleles maps each
// informative allele to its interpretation.
type TraitMarker struct {
	Name    string
	Trait   string
	Alleles map[string]string
}

// TraitMarkers maps rsid to trait marker metadata.
var TraitMarkers = map[string]TraitMarker{
	"rs12913832": {"Eye color (primary)", "eye_color", map[string]string{"A": "brown tendency", "G": "blue/green tendency"}},
	"rs1800407":  {"Eye color (OCA2)", "eye_color", map[string]string{"T": "blue/green tendency", "C": "brown tendency"}},
	"rs1805007":  {"MC1R R151C", "red_hair", map[string]string{"T": "red hair variant"}},
	"rs1805008":  {"MC1R R160W", "red_hair", map[string]string{"T": "red hair variant"}},
	"rs1805009":  {"MC1R D294H", "red_hair", map[string]string{"C": "red hair variant"}},
	"rs12203592": {"IRF4", "freckling", map[string]string{"T": "increased freckling"}},
	"rs1815739":  {"ACTN3 R577X", "muscle_type", map[string]string{"T": "endurance tendency", "C": "power/sprint tendency"}},
	"rs713598":   {"TAS2R38", "bitter_taste", map[string]string{"C": "taster", "G": "non-taster"}},
	"rs1726866":  {"TAS2R38 (2)", "bitter_taste", map[string]string{"T": "taster", "C": "non-taster"}},
	"rs4988235":  {"MCM6/LCT", "lactose", map[string]string{"A": "lactase persistent", "G": "lactose intolerant tendency"}},
	"rs671":      {"ALDH2", "alcohol_flush", map[string]string{"A": "alcohol flush reaction"}},
	"rs1801260":  {"CLOCK", "chronotype", map[string]string{"C": "evening preference", "T": "morning preference"}},
}

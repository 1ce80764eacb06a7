// Package ancient identifies markers shared with ancient populations.
package ancient

// Marker is a single ancient-ancestry informative position. Only the
// fields relevant to its period are set.
type Marker struct {
	RSID       string
	Name       string
	Ancient    string // ancestral allele observed in ancient samples
	Derived    string // derived allele
	Archaic    string // Neanderthal/Denisovan-origin allele
	Haplogroup string // haplogroup this marker indicates
	Allele     string // haplogroup indicator allele
	Trait      string
	Origin     string
}

// Period groups markers by the ancient population layer they inform on.
type Period struct {
	Key         string
	Description string
	Markers     []Marker
}

// Periods is the reference marker table, in report order. Static domain
// data drawn from published aDNA studies.
var Periods = []Period{
	{
		Key:         "mesolithic_hunter_gatherer",
		Description: "Pre-farming Europeans (~10,000-5,000 BCE)",
		Markers: []Marker{
			{RSID: "rs12913832", Name: "HERC2", Ancient: "A", Derived: "G", Trait: "Blue eyes arose in this population"},
			{RSID: "rs16891982", Name: "SLC45A2", Ancient: "C", Derived: "G", Trait: "Light skin (partial)"},
		},
	},
	{
		Key:         "neolithic_farmer",
		Description: "Early farmers from Anatolia (~7,000-4,000 BCE)",
		Markers: []Marker{
			{RSID: "rs1426654", Name: "SLC24A5", Ancient: "A", Derived: "A", Trait: "Light skin (fixed in this population)"},
			{RSID: "rs4988235", Name: "LCT", Ancient: "G", Derived: "A", Trait: "Lactose tolerance (rare in early farmers)"},
		},
	},
	{
		Key:         "steppe_pastoralist",
		Description: "Bronze Age steppe herders (Yamnaya, ~3,000-2,000 BCE)",
		Markers: []Marker{
			{RSID: "rs4988235", Name: "LCT", Ancient: "A", Derived: "A", Trait: "Lactase persistence spread with this population"},
			{RSID: "rs12913832", Name: "HERC2", Ancient: "G", Derived: "G", Trait: "Mixed eye color"},
		},
	},
	{
		Key:         "archaic_introgression",
		Description: "Markers from Neanderthal/Denisovan introgression",
		Markers: []Marker{
			{RSID: "rs2298850", Name: "OAS1", Archaic: "G", Trait: "Immune function (Neanderthal origin)"},
			{RSID: "rs1051730", Name: "CHRNA3", Archaic: "A", Trait: "Nicotine addiction (possible Neanderthal origin)"},
			{RSID: "rs4846049", Name: "MCPH1", Archaic: "T", Trait: "Brain development (archaic variant)"},
		},
	},
	{
		Key:         "ancient_y_haplogroups",
		Description: "Y-chromosome lineages traceable to ancient populations",
		Markers: []Marker{
			{RSID: "rs9786184", Haplogroup: "R1b", Allele: "A", Origin: "Steppe to Western Europe via Bell Beaker"},
			{RSID: "rs17250804", Haplogroup: "R1a", Allele: "G", Origin: "Steppe to Eastern Europe via Corded Ware"},
			{RSID: "rs2032652", Haplogroup: "I", Allele: "G", Origin: "Mesolithic Europe (WHG)"},
			{RSID: "rs2032631", Haplogroup: "J", Allele: "A", Origin: "Middle East, spread with Neolithic"},
			{RSID: "rs9341296", Haplogroup: "E", Allele: "C", Origin: "Africa, present in Mediterranean"},
			{RSID: "rs2032636", Haplogroup: "G", Allele: "T", Origin: "Anatolia, spread with early farmers"},
			{RSID: "rs9341301", Haplogroup: "N", Allele: "A", Origin: "Siberia, spread to Baltic/Finland"},
			{RSID: "rs3908", Haplogroup: "O", Allele: "T", Origin: "East Asia"},
			{RSID: "rs17316625", Haplogroup: "Q", Allele: "C", Origin: "Siberia, spread to Americas"},
		},
	},
	{
		Key:         "ancient_mt_haplogroups",
		Description: "Mitochondrial lineages with ancient origins",
		Markers: []Marker{
			{RSID: "rs2853499", Haplogroup: "H", Allele: "G", Origin: "Most common European, expanded post-LGM"},
			{RSID: "rs28358571", Haplogroup: "U", Allele: "A", Origin: "Ancient European, strong in WHG"},
			{RSID: "rs3928306", Haplogroup: "L", Allele: "A", Origin: "African origin, basal human mtDNA"},
			{RSID: "rs2853515", Haplogroup: "A", Allele: "G", Origin: "East Asian/Native American"},
			{RSID: "rs2853508", Haplogroup: "B", Allele: "A", Origin: "East Asian/Polynesian"},
		},
	},
}

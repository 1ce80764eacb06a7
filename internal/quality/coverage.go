package quality

import "sort"

// CountRange bounds the marker count expected for a chromosome on a
// typical consumer genotyping array.
type CountRange struct {
	Min, Max int
}

// ExpectedChromosomeCounts holds approximate per-chromosome SNP counts for
// consumer arrays. Varies by chip; used only for low-coverage warnings and
// missing-chromosome checks.
var ExpectedChromosomeCounts = map[string]CountRange{
	"1":  {45000, 75000},
	"2":  {45000, 70000},
	"3":  {35000, 55000},
	"4":  {30000, 50000},
	"5":  {30000, 50000},
	"6":  {35000, 55000},
	"7":  {30000, 45000},
	"8":  {25000, 40000},
	"9":  {25000, 40000},
	"10": {25000, 40000},
	"11": {25000, 40000},
	"12": {25000, 40000},
	"13": {18000, 30000},
	"14": {17000, 28000},
	"15": {16000, 26000},
	"16": {17000, 28000},
	"17": {16000, 26000},
	"18": {15000, 24000},
	"19": {12000, 22000},
	"20": {13000, 22000},
	"21": {7000, 14000},
	"22": {8000, 14000},
	"X":  {20000, 40000},
	"Y":  {500, 5000},
	"MT": {100, 1000},
}

// missingChromosomes returns the sorted list of expected chromosomes with
// no valid calls in the coverage map.
func missingChromosomes(coverage map[string]int, expected map[string]CountRange) []string {
	var missing []string
	for chrom := range expected {
		if coverage[chrom] == 0 {
			missing = append(missing, chrom)
		}
	}
	sort.Strings(missing)
	return missing
}

// inferSex infers genetic sex from X and Y chromosome coverage.
// Consumer arrays always include Y probes; females show only background
// noise there.
func inferSex(coverage map[string]int) string {
	y := coverage["Y"]
	x := coverage["X"]

	switch {
	case y > 100 && x > 5000:
		return "male"
	case y < 50 && x > 10000:
		return "female"
	case y < 50:
		return "likely_female"
	default:
		return "unknown"
	}
}

package genotype

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParser_23andMe(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "sample_23andme.txt"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	records, err := parser.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read records: %v", err)
	}

	if len(records) != 8 {
		t.Fatalf("Expected 8 records, got %d", len(records))
	}
	if parser.Format() != Format23andMe {
		t.Errorf("Expected 23andme format, got %q", parser.Format())
	}

	first := records[0]
	if first.RSID != "rs4477212" {
		t.Errorf("Expected rsid rs4477212, got %s", first.RSID)
	}
	if first.Chromosome != "1" {
		t.Errorf("Expected chromosome 1, got %s", first.Chromosome)
	}
	if first.Position != 82154 {
		t.Errorf("Expected position 82154, got %d", first.Position)
	}
	if first.Genotype != "AA" {
		t.Errorf("Expected genotype AA, got %s", first.Genotype)
	}

	// No-call sentinel passes through untouched
	if records[3].Genotype != "--" {
		t.Errorf("Expected genotype --, got %s", records[3].Genotype)
	}

	// Single-allele calls on Y and MT
	if records[6].Genotype != "T" {
		t.Errorf("Expected genotype T, got %s", records[6].Genotype)
	}
}

func TestParser_23andMeGzip(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "sample_23andme.txt.gz"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	records, err := parser.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read records: %v", err)
	}
	if len(records) != 8 {
		t.Errorf("Expected 8 records, got %d", len(records))
	}
}

func TestParser_Ancestry(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "sample_ancestry.txt"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	records, err := parser.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read records: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(records))
	}
	if parser.Format() != FormatAncestry {
		t.Errorf("Expected ancestry format, got %q", parser.Format())
	}

	// Alleles are joined into a genotype pair
	if records[1].Genotype != "AG" {
		t.Errorf("Expected genotype AG, got %s", records[1].Genotype)
	}
	// AncestryDNA no-call convention
	if records[2].Genotype != "00" {
		t.Errorf("Expected genotype 00, got %s", records[2].Genotype)
	}
}

func TestParser_HeaderCapture(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "sample_23andme.txt"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	if _, err := parser.ReadAll(); err != nil {
		t.Fatalf("Failed to read records: %v", err)
	}

	header := parser.Header()
	if len(header) != 2 {
		t.Fatalf("Expected 2 header lines, got %d", len(header))
	}
	if !strings.Contains(header[0], "23andMe") {
		t.Errorf("Expected vendor banner in header, got %q", header[0])
	}
}

func TestParser_ShortLine(t *testing.T) {
	parser, err := NewParserFromReader(strings.NewReader("rs123\t1\n"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	_, err = parser.Next()
	if err == nil {
		t.Fatal("Expected parse error for short line")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if perr.Line != 1 {
		t.Errorf("Expected error at line 1, got %d", perr.Line)
	}
}

func TestParser_ForcedFormat(t *testing.T) {
	// A 5-column line read as 23andme takes the fourth column as genotype.
	parser, err := NewParserFromReader(strings.NewReader("rs123\t1\t100\tAA\textra\n"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	parser.SetFormat(Format23andMe)

	rec, err := parser.Next()
	if err != nil {
		t.Fatalf("Failed to read record: %v", err)
	}
	if rec.Genotype != "AA" {
		t.Errorf("Expected genotype AA, got %s", rec.Genotype)
	}
}

func TestParser_Empty(t *testing.T) {
	parser, err := NewParserFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	rec, err := parser.Next()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rec != nil {
		t.Errorf("Expected nil record at EOF, got %+v", rec)
	}
}

package refdb

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadTSV loads marker reference rows from a tab-separated file into the
// store. Expected columns: rsid, gene, category, risk_allele, description.
// Lines starting with "#" and a leading "rsid" column header are skipped.
// Returns the number of rows inserted.
func LoadTSV(s *Store, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open reference tsv: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	inserted := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if strings.EqualFold(fields[0], "rsid") {
			continue
		}
		if len(fields) < 4 {
			return inserted, fmt.Errorf("reference tsv line %d: expected at least 4 columns, found %d", lineNumber, len(fields))
		}

		m := MarkerRow{
			RSID:       fields[0],
			Gene:       fields[1],
			Category:   fields[2],
			RiskAllele: fields[3],
		}
		if len(fields) > 4 {
			m.Description = fields[4]
		}

		if err := s.InsertMarker(m); err != nil {
			return inserted, err
		}
		inserted++
	}

	if err := scanner.Err(); err != nil {
		return inserted, fmt.Errorf("read reference tsv: %w", err)
	}
	return inserted, nil
}

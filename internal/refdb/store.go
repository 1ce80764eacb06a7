// Package refdb provides a DuckDB-backed marker reference store.
// The store holds static reference rows (built offline by the convert
// command) and is queried read-only during analysis. Analysis results are
// never written here.
package refdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// MarkerRow is one reference marker record.
type MarkerRow struct {
	RSID        string
	Gene        string
	Category    string
	RiskAllele  string
	Description string
}

// Store manages a DuckDB connection for marker reference data.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create refdb directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS marker_reference (
		rsid VARCHAR PRIMARY KEY,
		gene VARCHAR,
		category VARCHAR,
		risk_allele VARCHAR,
		description VARCHAR
	)`)
	return err
}

// InsertMarker inserts or replaces one reference marker.
func (s *Store) InsertMarker(m MarkerRow) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO marker_reference (rsid, gene, category, risk_allele, description)
		 VALUES (?, ?, ?, ?, ?)`,
		m.RSID, m.Gene, m.Category, m.RiskAllele, m.Description)
	if err != nil {
		return fmt.Errorf("insert marker %s: %w", m.RSID, err)
	}
	return nil
}

// Marker looks up a reference marker by rsid.
// Returns nil, nil when the rsid is not present.
func (s *Store) Marker(rsid string) (*MarkerRow, error) {
	row := s.db.QueryRow(
		`SELECT rsid, gene, category, risk_allele, description
		 FROM marker_reference WHERE rsid = ?`, rsid)

	var m MarkerRow
	err := row.Scan(&m.RSID, &m.Gene, &m.Category, &m.RiskAllele, &m.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query marker %s: %w", rsid, err)
	}
	return &m, nil
}

// MarkersByCategory returns all reference markers in a category, ordered
// by rsid.
func (s *Store) MarkersByCategory(category string) ([]MarkerRow, error) {
	rows, err := s.db.Query(
		`SELECT rsid, gene, category, risk_allele, description
		 FROM marker_reference WHERE category = ? ORDER BY rsid`, category)
	if err != nil {
		return nil, fmt.Errorf("query category %s: %w", category, err)
	}
	defer rows.Close()

	var markers []MarkerRow
	for rows.Next() {
		var m MarkerRow
		if err := rows.Scan(&m.RSID, &m.Gene, &m.Category, &m.RiskAllele, &m.Description); err != nil {
			return nil, fmt.Errorf("scan marker row: %w", err)
		}
		markers = append(markers, m)
	}
	return markers, rows.Err()
}

// Count returns the number of reference markers in the store.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM marker_reference`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count markers: %w", err)
	}
	return count, nil
}

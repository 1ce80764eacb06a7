package genotype

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Format identifies a raw genotype export layout.
type Format string

const (
	// Format23andMe is the 4-column layout: rsid, chromosome, position, genotype.
	Format23andMe Format = "23andme"
	// FormatAncestry is the 5-column layout: rsid, chromosome, position, allele1, allele2.
	FormatAncestry Format = "ancestry"
	// FormatAuto selects the format from the first data line.
	FormatAuto Format = ""
)

// Parser reads genotype records from a raw data export.
// Supports plain and gzipped files, 23andMe and AncestryDNA layouts.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
	format     Format
	header     []string
}

// NewParser creates a parser for the given file path.
// Use "-" to read from stdin. The format is detected from the first
// data line unless forced with SetFormat before the first Next call.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open genotype file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read genotype file: %w", err)
	}

	_, err = file.Seek(0, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("seek genotype file: %w", err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) (*Parser, error) {
	return &Parser{reader: bufio.NewReader(r)}, nil
}

// SetFormat forces the input layout instead of autodetecting it.
func (p *Parser) SetFormat(f Format) {
	p.format = f
}

// Format returns the layout in use ("" until the first data line is seen
// when autodetecting).
func (p *Parser) Format() Format {
	return p.format
}

// Header returns the "#" comment lines seen so far. Consumer exports put
// vendor banners here, which platform detection can use as a hint.
func (p *Parser) Header() []string {
	return p.header
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Next reads the next record. Returns nil, nil when there are no more records.
func (p *Parser) Next() (*Record, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read genotype line: %w", err)
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		if strings.HasPrefix(line, "#") {
			p.header = append(p.header, line)
			continue
		}

		rec, perr := p.parseLine(line)
		if perr != nil {
			return nil, perr
		}
		if rec == nil {
			// Column header row, keep reading
			continue
		}
		return rec, nil
	}
}

// parseLine parses a single data line into a Record.
// Returns nil, nil for a recognized column-header row.
func (p *Parser) parseLine(line string) (*Record, error) {
	fields := strings.Split(line, "\t")

	if p.format == FormatAuto {
		p.format = detectFormat(fields)
	}

	// AncestryDNA exports start data with an uncommented column header.
	if strings.EqualFold(fields[0], "rsid") {
		return nil, nil
	}

	switch p.format {
	case FormatAncestry:
		if len(fields) < 5 {
			return nil, &ParseError{
				Line:    p.lineNumber,
				Message: fmt.Sprintf("expected 5 columns, found %d", len(fields)),
			}
		}
		return &Record{
			RSID:       fields[0],
			Chromosome: fields[1],
			Position:   parsePos(fields[2]),
			Genotype:   fields[3] + fields[4],
		}, nil
	default:
		if len(fields) < 4 {
			return nil, &ParseError{
				Line:    p.lineNumber,
				Message: fmt.Sprintf("expected 4 columns, found %d", len(fields)),
			}
		}
		return &Record{
			RSID:       fields[0],
			Chromosome: fields[1],
			Position:   parsePos(fields[2]),
			Genotype:   fields[3],
		}, nil
	}
}

// detectFormat infers the layout from a data line's column count.
func detectFormat(fields []string) Format {
	if len(fields) >= 5 {
		return FormatAncestry
	}
	return Format23andMe
}

// parsePos parses a position column, returning 0 for missing or
// unparseable values. Position is advisory for this toolkit.
func parsePos(s string) int64 {
	pos, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return pos
}

// ReadAll reads every remaining record into memory.
func (p *Parser) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := p.Next()
		if err != nil {
			return records, err
		}
		if rec == nil {
			return records, nil
		}
		records = append(records, *rec)
	}
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseError represents an error during parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("genotype parse error at line %d: %s", e.Line, e.Message)
}

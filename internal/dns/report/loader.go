// Package report implements the categorized DNS record report: a CSV loader,
// a set of independent classifiers, and an aligned plain-text formatter.
//
// Classifier matching is naive substring matching on lowered text, not
// word-boundary matching. A name like "historian" matches the Tor category.
// This is a known limitation kept for compatibility with existing reports.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poyrazK/dnsaudit/internal/core/domain"
)

// requiredColumns are the header columns the loader insists on, matched
// case-sensitively. Additional columns are ignored.
var requiredColumns = []string{"name", "type", "ttl", "rdata"}

// MissingColumnError reports a required header column absent from the input.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("input is missing required column %q", e.Column)
}

// MalformedRowError reports a data row with no value for a required column.
type MalformedRowError struct {
	Row int // 1-based data row number, header excluded
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d is missing a required field", e.Row)
}

// Load opens the CSV file at path and parses it into records.
func Load(path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads CSV data and returns one Record per data row, in input order.
// Every field is trimmed of surrounding whitespace. Duplicate rows produce
// duplicate records; nothing is skipped or deduplicated.
func Parse(r io.Reader) ([]domain.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &MissingColumnError{Column: requiredColumns[0]}
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if _, ok := index[col]; !ok {
			index[col] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &MissingColumnError{Column: col}
		}
	}

	var records []domain.Record
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		row++

		for _, col := range requiredColumns {
			if index[col] >= len(fields) {
				return nil, &MalformedRowError{Row: row}
			}
		}

		records = append(records, domain.Record{
			Name:  strings.TrimSpace(fields[index["name"]]),
			Type:  strings.TrimSpace(fields[index["type"]]),
			TTL:   strings.TrimSpace(fields[index["ttl"]]),
			Rdata: strings.TrimSpace(fields[index["rdata"]]),
		})
	}

	return records, nil
}

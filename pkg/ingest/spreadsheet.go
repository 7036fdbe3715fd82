// Package ingest parses uploaded spreadsheets into normalized row maps.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table holds spreadsheet content keyed by upper-cased column headers.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// HasColumns reports whether every named column is present.
func (t Table) HasColumns(names ...string) bool {
	set := make(map[string]struct{}, len(t.Headers))
	for _, h := range t.Headers {
		set[h] = struct{}{}
	}
	for _, name := range names {
		if _, ok := set[name]; !ok {
			return false
		}
	}
	return true
}

// Parse reads CSV or Excel content depending on the file name extension.
func Parse(r io.Reader, filename string) (Table, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return parseCSV(r)
	}
	return parseXLSX(r)
}

func parseCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	return fromRecords(records)
}

func parseXLSX(r io.Reader) (Table, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer book.Close() //nolint:errcheck

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("spreadsheet has no sheets")
	}

	records, err := book.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) (Table, error) {
	if len(records) == 0 {
		return Table{}, fmt.Errorf("spreadsheet is empty")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}, nil
}

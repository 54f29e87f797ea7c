// Package importer parses foreign expense CSVs for bulk loading into a
// store. Columns are resolved by header name, with common aliases for
// exports from other trackers, so column order never matters.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one parsed expense from a foreign CSV, not yet validated or
// assigned an id.
type Row struct {
	Date     time.Time
	Category string
	Amount   decimal.Decimal
	Note     string
}

// Header names accepted for each field, lowercased. The first match in
// the file's header wins.
var fieldAliases = map[string][]string{
	"date":     {"date", "transaction date", "posted date", "day"},
	"category": {"category", "type", "expense category"},
	"amount":   {"amount", "value", "total", "cost"},
	"note":     {"note", "notes", "description", "memo"},
}

// dateFormats tried in order when parsing a foreign date column.
var dateFormats = []string{"2006-01-02", "01/02/2006", "02/01/2006", "2006/01/02"}

// Parse reads a foreign CSV and returns its rows. The date, category,
// and amount columns are required; note is optional. Any unparseable
// row aborts the whole parse.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	cols, err := resolveHeader(records[0])
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// header holds resolved column indexes; -1 means absent.
type header struct {
	date, category, amount, note int
}

func resolveHeader(row []string) (header, error) {
	byName := make(map[string]int, len(row))
	for i, name := range row {
		byName[strings.ToLower(strings.TrimSpace(name))] = i
	}

	lookup := func(field string) int {
		for _, alias := range fieldAliases[field] {
			if i, ok := byName[alias]; ok {
				return i
			}
		}
		return -1
	}

	h := header{
		date:     lookup("date"),
		category: lookup("category"),
		amount:   lookup("amount"),
		note:     lookup("note"),
	}
	for _, req := range []struct {
		field string
		idx   int
	}{
		{"date", h.date},
		{"category", h.category},
		{"amount", h.amount},
	} {
		if req.idx < 0 {
			return header{}, fmt.Errorf("no recognizable %s column in header %v", req.field, row)
		}
	}
	return h, nil
}

func parseRow(rec []string, cols header) (Row, error) {
	need := cols.amount
	if cols.category > need {
		need = cols.category
	}
	if cols.date > need {
		need = cols.date
	}
	if len(rec) <= need {
		return Row{}, fmt.Errorf("expected at least %d fields, got %d", need+1, len(rec))
	}

	date, err := parseDate(rec[cols.date])
	if err != nil {
		return Row{}, err
	}

	raw := strings.TrimSpace(rec[cols.amount])
	raw = strings.TrimLeft(raw, "$€£₹")
	raw = strings.ReplaceAll(raw, ",", "")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[cols.amount], err)
	}

	row := Row{
		Date:     date,
		Category: strings.TrimSpace(rec[cols.category]),
		Amount:   amount,
	}
	if cols.note >= 0 && cols.note < len(rec) {
		row.Note = rec[cols.note]
	}
	return row, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, format := range dateFormats {
		if d, err := time.Parse(format, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unrecognized format", s)
}

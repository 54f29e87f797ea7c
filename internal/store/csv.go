package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/model"
)

// Header is the canonical CSV header for expenses.csv.
const Header = "id,date,category,amount,note"

const (
	numFields  = 5
	dateFormat = "2006-01-02"
	colID      = 0
	colDate    = 1
	colCat     = 2
	colAmount  = 3
	colNote    = 4
)

// columns maps each named column to its index in the file being read.
// Readers resolve columns from the header row rather than assuming the
// canonical order, so a reordered file still round-trips.
type columns struct {
	id, date, category, amount, note int
}

func resolveColumns(header []string) (columns, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[name] = i
	}

	cols := columns{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{"id", &cols.id},
		{"date", &cols.date},
		{"category", &cols.category},
		{"amount", &cols.amount},
		{"note", &cols.note},
	} {
		idx, ok := byName[want.name]
		if !ok {
			return columns{}, fmt.Errorf("header missing column %q", want.name)
		}
		*want.dst = idx
	}
	return cols, nil
}

// ReadRecords reads all expense records from an expenses.csv reader.
// An empty reader yields no records; anything malformed is an error,
// never a skipped row.
func ReadRecords(r io.Reader) ([]model.ExpenseRecord, error) {
	cr := csv.NewReader(r)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var records []model.ExpenseRecord
	for i, row := range rows[1:] {
		rec, err := unmarshalRecord(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteRecords writes records in canonical column order, header included.
func WriteRecords(w io.Writer, records []model.ExpenseRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "date", "category", "amount", "note"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendRecords appends rows to an existing expenses.csv writer (no header).
func AppendRecords(w io.Writer, records []model.ExpenseRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts an ExpenseRecord to a CSV row in canonical order.
func MarshalRecord(rec model.ExpenseRecord) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(rec.ID)
	row[colDate] = rec.Date.Format(dateFormat)
	row[colCat] = rec.Category
	row[colAmount] = rec.Amount.StringFixed(2)
	row[colNote] = rec.Note
	return row
}

func unmarshalRecord(row []string, cols columns) (model.ExpenseRecord, error) {
	if len(row) < numFields {
		return model.ExpenseRecord{}, fmt.Errorf("expected at least %d fields, got %d", numFields, len(row))
	}

	id, err := strconv.Atoi(row[cols.id])
	if err != nil {
		return model.ExpenseRecord{}, fmt.Errorf("parsing id %q: %w", row[cols.id], err)
	}
	if id <= 0 {
		return model.ExpenseRecord{}, fmt.Errorf("id %d out of range", id)
	}

	date, err := time.Parse(dateFormat, row[cols.date])
	if err != nil {
		return model.ExpenseRecord{}, fmt.Errorf("parsing date %q: %w", row[cols.date], err)
	}

	amount, err := decimal.NewFromString(row[cols.amount])
	if err != nil {
		return model.ExpenseRecord{}, fmt.Errorf("parsing amount %q: %w", row[cols.amount], err)
	}
	if amount.IsNegative() {
		return model.ExpenseRecord{}, fmt.Errorf("amount %s is negative", amount)
	}
	hundred := decimal.NewFromInt(100)
	if !amount.Mul(hundred).Equal(amount.Mul(hundred).Floor()) {
		return model.ExpenseRecord{}, fmt.Errorf("amount %s has more than 2 decimal places", amount)
	}

	return model.ExpenseRecord{
		ID:       id,
		Date:     date,
		Category: row[cols.category],
		Amount:   amount,
		Note:     row[cols.note],
	}, nil
}

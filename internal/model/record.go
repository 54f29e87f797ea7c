package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is a single spending event, one row in expenses.csv.
type ExpenseRecord struct {
	ID       int             // assigned by the store, never reused
	Date     time.Time       // calendar date, midnight UTC
	Category string          // free-form label, grouped case-insensitively
	Amount   decimal.Decimal // non-negative, at most 2 decimal places
	Note     string          // optional
}

// CategoryKey returns the fold used for case-insensitive category grouping.
func (r ExpenseRecord) CategoryKey() string {
	return strings.ToLower(strings.TrimSpace(r.Category))
}

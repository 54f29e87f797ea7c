package store

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Fields holds the mutable portion of an expense record, as supplied to
// Add and Update.
type Fields struct {
	Date     time.Time
	Category string
	Amount   decimal.Decimal
	Note     string
}

// ParseDate parses a calendar date in the on-disk YYYY-MM-DD format,
// normalized to midnight UTC. Anything else is a ValidationError.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, ValidationError{Field: "date", Reason: "not a valid YYYY-MM-DD date: " + s}
	}
	return d, nil
}

// ParseAmount parses a user-supplied monetary amount. Non-numeric input
// is a ValidationError, matching the treatment of a negative amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, ValidationError{Field: "amount", Reason: "not a number: " + s}
	}
	return amount, nil
}

// Validate checks fields against the record invariants without touching
// storage. Add and Update apply the same rules.
func Validate(f Fields) error {
	return validateFields(f)
}

// validateFields enforces the record invariants shared by Add and Update.
func validateFields(f Fields) error {
	if f.Date.IsZero() {
		return ValidationError{Field: "date", Reason: "required"}
	}
	if strings.TrimSpace(f.Category) == "" {
		return ValidationError{Field: "category", Reason: "required"}
	}
	if f.Amount.IsNegative() {
		return ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	// Amounts are currency values with exactly two subunit digits.
	hundred := decimal.NewFromInt(100)
	if !f.Amount.Mul(hundred).Equal(f.Amount.Mul(hundred).Floor()) {
		return ValidationError{Field: "amount", Reason: "more than 2 decimal places"}
	}
	return nil
}

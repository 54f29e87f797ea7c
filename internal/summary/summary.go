// Package summary computes derived views over a snapshot of expense
// records: per-category totals, per-period totals, and running totals.
//
// Every function is a pure function of its input slice. Nothing here
// queries storage or mutates the records it is given.
package summary

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/model"
)

// Granularity selects the bucket size for TotalsByPeriod.
type Granularity string

const (
	Daily   Granularity = "day"
	Monthly Granularity = "month"
	Yearly  Granularity = "year"
)

// CategoryTotal is the summed amount for one case-insensitive category
// group. Category carries the spelling of the first record observed for
// the group.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// PeriodTotal is the summed amount for one calendar period.
type PeriodTotal struct {
	Period string // "2006-01-02", "2006-01", or "2006" per granularity
	Total  decimal.Decimal
}

// RunningPoint is one entry of a cumulative total series.
type RunningPoint struct {
	Date       time.Time
	Cumulative decimal.Decimal
}

// TotalsByCategory groups records by category, comparing labels
// case-insensitively, and sums each group's amounts. Groups appear in
// the order their first record appears in the input.
func TotalsByCategory(records []model.ExpenseRecord) []CategoryTotal {
	idx := make(map[string]int)
	var totals []CategoryTotal

	for _, rec := range records {
		key := rec.CategoryKey()
		i, seen := idx[key]
		if !seen {
			idx[key] = len(totals)
			totals = append(totals, CategoryTotal{Category: rec.Category, Total: rec.Amount})
			continue
		}
		totals[i].Total = totals[i].Total.Add(rec.Amount)
	}
	return totals
}

// TotalsByPeriod buckets records by the start of their calendar period
// and sums within each bucket, emitting buckets in chronological order.
// With includeEmpty set, gap periods between the first and last bucket
// are emitted with zero totals; by default they are omitted.
func TotalsByPeriod(records []model.ExpenseRecord, g Granularity, includeEmpty bool) ([]PeriodTotal, error) {
	layout, err := periodLayout(g)
	if err != nil {
		return nil, err
	}

	byStart := make(map[time.Time]decimal.Decimal)
	var starts []time.Time
	for _, rec := range records {
		start := periodStart(rec.Date, g)
		if _, seen := byStart[start]; !seen {
			starts = append(starts, start)
		}
		byStart[start] = byStart[start].Add(rec.Amount)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	if includeEmpty && len(starts) > 1 {
		starts = fillGaps(starts, g)
	}

	totals := make([]PeriodTotal, 0, len(starts))
	for _, start := range starts {
		totals = append(totals, PeriodTotal{
			Period: start.Format(layout),
			Total:  byStart[start],
		})
	}
	return totals, nil
}

// RunningTotal sorts records by date ascending (stable on input order
// for ties) and pairs each with the cumulative sum of all amounts up to
// and including it.
func RunningTotal(records []model.ExpenseRecord) []RunningPoint {
	ordered := make([]model.ExpenseRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	points := make([]RunningPoint, 0, len(ordered))
	sum := decimal.Zero
	for _, rec := range ordered {
		sum = sum.Add(rec.Amount)
		points = append(points, RunningPoint{Date: rec.Date, Cumulative: sum})
	}
	return points
}

// ParseGranularity converts a user-supplied string to a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case Daily, Monthly, Yearly:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("unknown granularity %q (want day, month, or year)", s)
	}
}

func periodLayout(g Granularity) (string, error) {
	switch g {
	case Daily:
		return "2006-01-02", nil
	case Monthly:
		return "2006-01", nil
	case Yearly:
		return "2006", nil
	default:
		return "", fmt.Errorf("unknown granularity %q (want day, month, or year)", g)
	}
}

func periodStart(d time.Time, g Granularity) time.Time {
	switch g {
	case Monthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	case Yearly:
		return time.Date(d.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// fillGaps expands a sorted list of period starts to cover every period
// between the first and the last.
func fillGaps(starts []time.Time, g Granularity) []time.Time {
	var filled []time.Time
	for cur := starts[0]; !cur.After(starts[len(starts)-1]); cur = nextPeriod(cur, g) {
		filled = append(filled, cur)
	}
	return filled
}

func nextPeriod(start time.Time, g Granularity) time.Time {
	switch g {
	case Monthly:
		return start.AddDate(0, 1, 0)
	case Yearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleRecords() []model.ExpenseRecord {
	return []model.ExpenseRecord{
		{ID: 1, Date: date(2024, 1, 5), Category: "Food", Amount: dec("12.50")},
		{ID: 2, Date: date(2024, 1, 20), Category: "Food", Amount: dec("7.25")},
		{ID: 3, Date: date(2024, 2, 1), Category: "Transport", Amount: dec("3.00")},
	}
}

func TestTotalsByCategory(t *testing.T) {
	totals := TotalsByCategory(sampleRecords())

	require.Len(t, totals, 2)
	assert.Equal(t, "Food", totals[0].Category)
	assert.True(t, totals[0].Total.Equal(dec("19.75")), "got %s", totals[0].Total)
	assert.Equal(t, "Transport", totals[1].Category)
	assert.True(t, totals[1].Total.Equal(dec("3.00")), "got %s", totals[1].Total)
}

func TestTotalsByCategory_CaseInsensitive(t *testing.T) {
	records := []model.ExpenseRecord{
		{ID: 1, Date: date(2024, 1, 5), Category: "Food", Amount: dec("1.00")},
		{ID: 2, Date: date(2024, 1, 6), Category: "FOOD", Amount: dec("2.00")},
		{ID: 3, Date: date(2024, 1, 7), Category: "food", Amount: dec("4.00")},
	}

	totals := TotalsByCategory(records)
	require.Len(t, totals, 1)
	assert.Equal(t, "Food", totals[0].Category, "label uses the first observed spelling")
	assert.True(t, totals[0].Total.Equal(dec("7.00")))
}

func TestTotalsByCategory_ConservesSum(t *testing.T) {
	records := sampleRecords()

	input := decimal.Zero
	for _, rec := range records {
		input = input.Add(rec.Amount)
	}

	output := decimal.Zero
	for _, ct := range TotalsByCategory(records) {
		output = output.Add(ct.Total)
	}
	assert.True(t, input.Equal(output), "no record double-counted or dropped: %s vs %s", input, output)
}

func TestTotalsByCategory_Empty(t *testing.T) {
	assert.Empty(t, TotalsByCategory(nil))
}

func TestTotalsByPeriod_Monthly(t *testing.T) {
	totals, err := TotalsByPeriod(sampleRecords(), Monthly, false)
	require.NoError(t, err)

	require.Len(t, totals, 2)
	assert.Equal(t, "2024-01", totals[0].Period)
	assert.True(t, totals[0].Total.Equal(dec("19.75")))
	assert.Equal(t, "2024-02", totals[1].Period)
	assert.True(t, totals[1].Total.Equal(dec("3.00")))
}

func TestTotalsByPeriod_DailyAndYearly(t *testing.T) {
	records := []model.ExpenseRecord{
		{ID: 1, Date: date(2023, 12, 31), Category: "A", Amount: dec("1.00")},
		{ID: 2, Date: date(2024, 1, 1), Category: "A", Amount: dec("2.00")},
		{ID: 3, Date: date(2024, 1, 1), Category: "B", Amount: dec("3.00")},
	}

	daily, err := TotalsByPeriod(records, Daily, false)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, "2023-12-31", daily[0].Period)
	assert.Equal(t, "2024-01-01", daily[1].Period)
	assert.True(t, daily[1].Total.Equal(dec("5.00")))

	yearly, err := TotalsByPeriod(records, Yearly, false)
	require.NoError(t, err)
	require.Len(t, yearly, 2)
	assert.Equal(t, "2023", yearly[0].Period)
	assert.Equal(t, "2024", yearly[1].Period)
}

func TestTotalsByPeriod_IncludeEmpty(t *testing.T) {
	records := []model.ExpenseRecord{
		{ID: 1, Date: date(2024, 1, 5), Category: "A", Amount: dec("1.00")},
		{ID: 2, Date: date(2024, 4, 5), Category: "A", Amount: dec("2.00")},
	}

	// Default omits gap periods.
	sparse, err := TotalsByPeriod(records, Monthly, false)
	require.NoError(t, err)
	require.Len(t, sparse, 2)

	filled, err := TotalsByPeriod(records, Monthly, true)
	require.NoError(t, err)
	require.Len(t, filled, 4)
	assert.Equal(t, "2024-02", filled[1].Period)
	assert.True(t, filled[1].Total.IsZero())
	assert.Equal(t, "2024-03", filled[2].Period)
	assert.True(t, filled[2].Total.IsZero())
}

func TestTotalsByPeriod_UnknownGranularity(t *testing.T) {
	_, err := TotalsByPeriod(sampleRecords(), Granularity("week"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown granularity")
}

func TestRunningTotal(t *testing.T) {
	// Unsorted input; ties on 2024-01-05 keep input order.
	records := []model.ExpenseRecord{
		{ID: 3, Date: date(2024, 2, 1), Category: "Transport", Amount: dec("3.00")},
		{ID: 1, Date: date(2024, 1, 5), Category: "Food", Amount: dec("12.50")},
		{ID: 2, Date: date(2024, 1, 5), Category: "Food", Amount: dec("7.25")},
	}

	points := RunningTotal(records)
	require.Len(t, points, 3)

	assert.True(t, points[0].Date.Equal(date(2024, 1, 5)))
	assert.True(t, points[0].Cumulative.Equal(dec("12.50")))
	assert.True(t, points[1].Cumulative.Equal(dec("19.75")))
	assert.True(t, points[2].Date.Equal(date(2024, 2, 1)))
	assert.True(t, points[2].Cumulative.Equal(dec("22.75")), "last point equals the sum of all amounts")
}

func TestRunningTotal_DoesNotMutateInput(t *testing.T) {
	records := []model.ExpenseRecord{
		{ID: 2, Date: date(2024, 2, 1), Category: "B", Amount: dec("2.00")},
		{ID: 1, Date: date(2024, 1, 1), Category: "A", Amount: dec("1.00")},
	}

	_ = RunningTotal(records)
	assert.Equal(t, 2, records[0].ID, "input order must be preserved")
	assert.Equal(t, 1, records[1].ID)
}

func TestParseGranularity(t *testing.T) {
	for _, ok := range []string{"day", "month", "year"} {
		g, err := ParseGranularity(ok)
		require.NoError(t, err)
		assert.Equal(t, Granularity(ok), g)
	}

	_, err := ParseGranularity("weekly")
	require.Error(t, err)
}

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/model"
	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/store"
	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/summary"
)

func newSummaryCommand(file *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregated views over recorded expenses",
	}

	cmd.AddCommand(newSummaryCategoryCommand(file))
	cmd.AddCommand(newSummaryPeriodCommand(file))
	cmd.AddCommand(newSummaryRunningCommand(file))

	return cmd
}

func newSummaryCategoryCommand(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "category",
		Short: "Total spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, records, err := loadRecords(*file)
			if err != nil {
				return err
			}

			totals := summary.TotalsByCategory(records)
			if len(totals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tTOTAL")
			for _, ct := range totals {
				fmt.Fprintf(w, "%s\t%s%s\n", ct.Category, t.currency(), ct.Total.StringFixed(2))
			}
			return w.Flush()
		},
	}
}

func newSummaryPeriodCommand(file *string) *cobra.Command {
	var granularityStr string
	var includeEmpty bool

	cmd := &cobra.Command{
		Use:   "period",
		Short: "Total spending per day, month, or year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			granularity, err := summary.ParseGranularity(granularityStr)
			if err != nil {
				return err
			}

			t, records, err := loadRecords(*file)
			if err != nil {
				return err
			}

			totals, err := summary.TotalsByPeriod(records, granularity, includeEmpty)
			if err != nil {
				return err
			}
			if len(totals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PERIOD\tTOTAL")
			for _, pt := range totals {
				fmt.Fprintf(w, "%s\t%s%s\n", pt.Period, t.currency(), pt.Total.StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&granularityStr, "granularity", "month", "bucket size: day, month, or year")
	cmd.Flags().BoolVar(&includeEmpty, "include-empty", false, "emit zero totals for gap periods")

	return cmd
}

func newSummaryRunningCommand(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "running",
		Short: "Cumulative spending over time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, records, err := loadRecords(*file)
			if err != nil {
				return err
			}

			points := summary.RunningTotal(records)
			if len(points) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCUMULATIVE")
			for _, pt := range points {
				fmt.Fprintf(w, "%s\t%s%s\n", pt.Date.Format("2006-01-02"), t.currency(), pt.Cumulative.StringFixed(2))
			}
			return w.Flush()
		},
	}
}

// loadRecords opens the tracker and materializes the full record
// snapshot the summary engine consumes.
func loadRecords(fileFlag string) (*tracker, []model.ExpenseRecord, error) {
	t, err := openTracker(fileFlag)
	if err != nil {
		return nil, nil, err
	}
	records, err := t.store.List(store.Filter{})
	if err != nil {
		return nil, nil, err
	}
	return t, records, nil
}

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/store"
)

func newListCommand(file *string) *cobra.Command {
	var fromStr, toStr, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, optionally filtered by date range and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := openTracker(*file)
			if err != nil {
				return err
			}

			filter := store.Filter{Category: category}
			if fromStr != "" {
				if filter.From, err = store.ParseDate(fromStr); err != nil {
					return err
				}
			}
			if toStr != "" {
				if filter.To, err = store.ParseDate(toStr); err != nil {
					return err
				}
			}

			records, err := t.store.List(filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No expenses recorded.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tAMOUNT\tNOTE")
			total := decimal.Zero
			for _, rec := range records {
				total = total.Add(rec.Amount)
				fmt.Fprintf(w, "%d\t%s\t%s\t%s%s\t%s\n",
					rec.ID, rec.Date.Format("2006-01-02"), rec.Category, t.currency(), rec.Amount.StringFixed(2), rec.Note)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			average := total.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
			fmt.Fprintf(out, "\n%d expense(s), total %s%s, average %s%s\n",
				len(records), t.currency(), total.StringFixed(2), t.currency(), average.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "earliest date to include, YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "latest date to include, YYYY-MM-DD")
	cmd.Flags().StringVar(&category, "category", "", "only this category (case-insensitive)")

	return cmd
}

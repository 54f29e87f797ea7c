package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/store"
)

func newAddCommand(file *string) *cobra.Command {
	var dateStr string
	var category string
	var amountStr string
	var note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := openTracker(*file)
			if err != nil {
				return err
			}

			date := time.Now().UTC()
			if dateStr != "" {
				date, err = store.ParseDate(dateStr)
				if err != nil {
					return err
				}
			}

			amount, err := store.ParseAmount(amountStr)
			if err != nil {
				return err
			}

			rec, err := t.store.Add(store.Fields{
				Date:     date,
				Category: category,
				Amount:   amount,
				Note:     note,
			})
			if err != nil {
				return err
			}

			details := fmt.Sprintf("%s %s %s", rec.Date.Format("2006-01-02"), rec.Category, rec.Amount.StringFixed(2))
			if err := t.recordMutation("add", rec.ID, details); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added expense %d: %s %s%s (%s)\n",
				rec.ID, rec.Date.Format("2006-01-02"), t.currency(), rec.Amount.StringFixed(2), rec.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "expense date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "expense amount (required)")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

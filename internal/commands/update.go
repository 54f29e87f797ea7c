package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/store"
)

func newUpdateCommand(file *string) *cobra.Command {
	var dateStr, category, amountStr, note string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the fields of an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}

			t, err := openTracker(*file)
			if err != nil {
				return err
			}

			// Start from the current record so unset flags keep their value.
			current, err := t.store.Get(id)
			if err != nil {
				return err
			}

			fields := store.Fields{
				Date:     current.Date,
				Category: current.Category,
				Amount:   current.Amount,
				Note:     current.Note,
			}
			if cmd.Flags().Changed("date") {
				if fields.Date, err = store.ParseDate(dateStr); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("category") {
				fields.Category = category
			}
			if cmd.Flags().Changed("amount") {
				if fields.Amount, err = store.ParseAmount(amountStr); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("note") {
				fields.Note = note
			}

			rec, err := t.store.Update(id, fields)
			if err != nil {
				return err
			}

			details := fmt.Sprintf("%s %s %s", rec.Date.Format("2006-01-02"), rec.Category, rec.Amount.StringFixed(2))
			if err := t.recordMutation("update", rec.ID, details); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated expense %d: %s %s%s (%s)\n",
				rec.ID, rec.Date.Format("2006-01-02"), t.currency(), rec.Amount.StringFixed(2), rec.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "new date, YYYY-MM-DD")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&note, "note", "", "new note")

	return cmd
}

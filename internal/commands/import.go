package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/importer"
	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/store"
)

func newImportCommand(file *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Bulk-load expenses from a foreign CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			rows, err := importer.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import.")
				return nil
			}

			t, err := openTracker(*file)
			if err != nil {
				return err
			}

			// Validate every row up front so a bad row aborts the import
			// before anything is persisted.
			fields := make([]store.Fields, len(rows))
			for i, row := range rows {
				fields[i] = store.Fields{
					Date:     row.Date,
					Category: row.Category,
					Amount:   row.Amount,
					Note:     row.Note,
				}
				if err := store.Validate(fields[i]); err != nil {
					return fmt.Errorf("row %d: %w", i+2, err)
				}
			}

			for _, fl := range fields {
				if _, err := t.store.Add(fl); err != nil {
					return err
				}
			}

			if err := t.recordMutation("import", 0, fmt.Sprintf("%d record(s) from %s", len(fields), args[0])); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d expense(s) from %s\n", len(fields), args[0])
			return nil
		},
	}

	return cmd
}

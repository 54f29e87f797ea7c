package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/auditlog"
)

func newLogCommand(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the mutation audit trail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := openTracker(*file)
			if err != nil {
				return err
			}

			entries, err := auditlog.Read(t.rootDir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Audit log is empty.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIMESTAMP\tACTION\tID\tDETAILS")
			for _, e := range entries {
				id := ""
				if e.RecordID != 0 {
					id = fmt.Sprintf("%d", e.RecordID)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Timestamp.Format(time.RFC3339), e.Action, id, e.Details)
			}
			return w.Flush()
		},
	}
}

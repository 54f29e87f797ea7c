// Package commands wires the CLI to the record store and summary
// engine. Commands are pass-through glue: they parse flags, call the
// core, print results, and surface core errors unchanged.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var file string

	rootCmd := &cobra.Command{
		Use:     "expenses",
		Short:   "Personal expense tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&file, "file", "", "expenses CSV file (overrides expenses.yaml and EXPENSES_FILE)")

	rootCmd.AddCommand(newInitCommand(&file))
	rootCmd.AddCommand(newAddCommand(&file))
	rootCmd.AddCommand(newListCommand(&file))
	rootCmd.AddCommand(newUpdateCommand(&file))
	rootCmd.AddCommand(newDeleteCommand(&file))
	rootCmd.AddCommand(newSummaryCommand(&file))
	rootCmd.AddCommand(newImportCommand(&file))
	rootCmd.AddCommand(newLogCommand(&file))

	return rootCmd
}

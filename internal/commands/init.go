package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/config"
	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/gitops"
	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/store"
)

func newInitCommand(file *string) *cobra.Command {
	var currency string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new expense tracker directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, currency, useGit)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "$", "currency symbol for display")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and auto-commit changes")

	return cmd
}

func runInit(cmd *cobra.Command, dir, currency string, useGit bool) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write expenses.yaml.
	cfg := config.Default(defaultFile)
	cfg.Display.CurrencySymbol = currency
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write a header-only expenses.csv so the table exists from day one.
	csvPath := filepath.Join(dir, defaultFile)
	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		if err := os.WriteFile(csvPath, []byte(store.Header+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing expenses file: %w", err)
		}
	}

	// Write .gitignore.
	gitignore := "*.tmp\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if useGit && !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		if _, err := gitops.CommitPaths(dir, "init: new expense tracker", cfg.Git.AuthorName, cfg.Git.AuthorEmail, "."); err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized expense tracker in %s\n", dir)
	return nil
}

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/auditlog"
	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/config"
	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/gitops"
	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/store"
)

// defaultFile is used when no flag, env var, or config names the store.
const defaultFile = "expenses.csv"

// tracker bundles the resolved store with the optional expenses.yaml
// surrounding it. Audit logging and git auto-commit only apply when a
// config file is present (an initialized tracker directory); pointing
// at a bare CSV with --file mutates just that file.
type tracker struct {
	store   *store.Store
	cfg     *config.Config // nil when no expenses.yaml was found
	rootDir string
}

// openTracker resolves the store path (flag, then EXPENSES_FILE, then
// expenses.yaml in the working directory, then ./expenses.csv) and
// opens a store handle on it.
func openTracker(fileFlag string) (*tracker, error) {
	cfg, cfgDir, err := findConfig()
	if err != nil {
		return nil, err
	}

	file := fileFlag
	if file == "" {
		file = os.Getenv("EXPENSES_FILE")
	}
	if file == "" && cfg != nil {
		file = cfg.Storage.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(cfgDir, file)
		}
	}
	if file == "" {
		file = defaultFile
	}

	s, err := store.Open(file)
	if err != nil {
		return nil, err
	}

	t := &tracker{store: s, rootDir: filepath.Dir(file)}
	if fileFlag == "" && os.Getenv("EXPENSES_FILE") == "" {
		t.cfg = cfg
	}
	return t, nil
}

// findConfig looks for expenses.yaml in the working directory. A
// missing file means no config; an unreadable or malformed one is an
// error, never a silent fallback to the default store path.
func findConfig() (*config.Config, string, error) {
	path := config.FileName
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, "", nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("loading %s: %w", path, err)
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return cfg, dir, nil
}

// recordMutation appends an audit entry and, when configured, commits
// the changed data files. Called only after the store mutation has
// durably succeeded.
func (t *tracker) recordMutation(action string, recordID int, details string) error {
	if t.cfg == nil {
		return nil
	}

	if t.cfg.AuditLog.Enabled {
		entry := auditlog.Entry{
			Timestamp: time.Now().UTC(),
			Action:    action,
			RecordID:  recordID,
			Details:   details,
		}
		if err := auditlog.Append(t.rootDir, []auditlog.Entry{entry}); err != nil {
			return fmt.Errorf("recording audit entry: %w", err)
		}
	}

	if t.cfg.Git.AutoCommit && gitops.IsRepo(t.rootDir) {
		rel, err := filepath.Rel(t.rootDir, t.store.Path())
		if err != nil {
			rel = filepath.Base(t.store.Path())
		}
		message := fmt.Sprintf("%s: %s", action, details)
		if _, err := gitops.CommitPaths(t.rootDir, message, t.cfg.Git.AuthorName, t.cfg.Git.AuthorEmail, rel, "logs"); err != nil {
			return fmt.Errorf("committing change: %w", err)
		}
	}
	return nil
}

// currency returns the configured display symbol, defaulting to "$".
func (t *tracker) currency() string {
	if t.cfg != nil && t.cfg.Display.CurrencySymbol != "" {
		return t.cfg.Display.CurrencySymbol
	}
	return "$"
}

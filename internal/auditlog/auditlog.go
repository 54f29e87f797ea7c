// Package auditlog keeps an append-only CSV trail of store mutations,
// so every add/update/delete is traceable after the fact.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the audit log.
type Entry struct {
	Timestamp time.Time
	Action    string // "add", "update", "delete", "import", "init"
	RecordID  int    // 0 when the action spans more than one record
	Details   string
}

// Header is the CSV header for audit-log.csv.
const Header = "timestamp,action,record_id,details"

const (
	numFields    = 4
	logDir       = "logs"
	logFile      = "logs/audit-log.csv"
	colTimestamp = 0
	colAction    = 1
	colRecordID  = 2
	colDetails   = 3
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	if e.RecordID != 0 {
		row[colRecordID] = strconv.Itoa(e.RecordID)
	}
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	var recordID int
	if record[colRecordID] != "" {
		recordID, err = strconv.Atoi(record[colRecordID])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing record_id %q: %w", record[colRecordID], err)
		}
	}

	return Entry{
		Timestamp: ts,
		Action:    record[colAction],
		RecordID:  recordID,
		Details:   record[colDetails],
	}, nil
}

// Append writes entries to <rootDir>/logs/audit-log.csv, creating the
// file and header if needed.
func Append(rootDir string, entries []Entry) error {
	dir := filepath.Join(rootDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(rootDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()
	for _, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
	}
	return cw.Error()
}

// Read returns all entries from <rootDir>/logs/audit-log.csv. A missing
// file is an empty log.
func Read(rootDir string) ([]Entry, error) {
	path := filepath.Join(rootDir, logFile)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, row := range rows {
		if i == 0 && strings.Join(row, ",") == Header {
			continue
		}
		e, err := UnmarshalEntry(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Package store owns durable persistence of expense records as a flat
// CSV table and exposes create/list/update/delete over it.
//
// A Store is an explicit handle on one file. It keeps no cache: every
// operation reads the file, and every mutation is fully written back
// before the call returns, so the on-disk table is always the single
// source of truth. Concurrent writers are not supported.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/indusrimarikanti/EXPENSES-TRACKER/internal/model"
)

// Store is a durable, ordered collection of expense records backed by a
// single CSV file.
type Store struct {
	path   string
	nextID int // high-water mark; never moves backward, so ids are not reused
}

// Open creates a handle on the expenses file at path. The file does not
// need to exist yet; a missing file is an empty store. An existing file
// is read once to seed the id high-water mark and to surface corruption
// early.
func Open(path string) (*Store, error) {
	s := &Store{path: path, nextID: 1}
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID >= s.nextID {
			s.nextID = rec.ID + 1
		}
	}
	return s, nil
}

// Path returns the file this store persists to.
func (s *Store) Path() string {
	return s.path
}

// Filter restricts a List call. Zero-value fields do not restrict.
type Filter struct {
	From     time.Time // inclusive lower date bound
	To       time.Time // inclusive upper date bound
	Category string    // matched case-insensitively
}

func (f Filter) matches(rec model.ExpenseRecord) bool {
	if !f.From.IsZero() && rec.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && rec.Date.After(f.To) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(strings.TrimSpace(f.Category), rec.CategoryKey()) {
		return false
	}
	return true
}

// Add validates the fields, assigns a fresh id, and appends the record
// to durable storage. Nothing is persisted on a validation failure.
func (s *Store) Add(f Fields) (model.ExpenseRecord, error) {
	if err := validateFields(f); err != nil {
		return model.ExpenseRecord{}, err
	}

	records, err := s.load()
	if err != nil {
		return model.ExpenseRecord{}, err
	}
	for _, rec := range records {
		if rec.ID >= s.nextID {
			s.nextID = rec.ID + 1
		}
	}

	rec := model.ExpenseRecord{
		ID:       s.nextID,
		Date:     midnightUTC(f.Date),
		Category: strings.TrimSpace(f.Category),
		Amount:   f.Amount,
		Note:     f.Note,
	}

	if err := s.appendRecord(rec); err != nil {
		return model.ExpenseRecord{}, err
	}
	s.nextID++
	return rec, nil
}

// List returns a snapshot of live records, optionally filtered, ordered
// by date ascending with ties broken by insertion order. Later mutations
// do not alter an already-returned slice.
func (s *Store) List(f Filter) ([]model.ExpenseRecord, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make([]model.ExpenseRecord, 0, len(records))
	for _, rec := range records {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// Get returns the live record with the given id, or NotFoundError.
func (s *Store) Get(id int) (model.ExpenseRecord, error) {
	records, err := s.load()
	if err != nil {
		return model.ExpenseRecord{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return model.ExpenseRecord{}, NotFoundError{ID: id}
}

// Update replaces the mutable fields of the record with the given id,
// preserving the id and the record's insertion position. Fails with
// NotFoundError for a dead or unknown id, ValidationError under the
// same rules as Add.
func (s *Store) Update(id int, f Fields) (model.ExpenseRecord, error) {
	if err := validateFields(f); err != nil {
		return model.ExpenseRecord{}, err
	}

	records, err := s.load()
	if err != nil {
		return model.ExpenseRecord{}, err
	}

	idx := -1
	for i, rec := range records {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ExpenseRecord{}, NotFoundError{ID: id}
	}

	records[idx] = model.ExpenseRecord{
		ID:       id,
		Date:     midnightUTC(f.Date),
		Category: strings.TrimSpace(f.Category),
		Amount:   f.Amount,
		Note:     f.Note,
	}

	if err := s.writeAll(records); err != nil {
		return model.ExpenseRecord{}, err
	}
	return records[idx], nil
}

// Delete permanently removes the record with the given id. Deleting an
// id that is not live, including an already-deleted one, fails with
// NotFoundError. The id is never assigned again by this handle.
func (s *Store) Delete(id int) error {
	records, err := s.load()
	if err != nil {
		return err
	}

	idx := -1
	for i, rec := range records {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return NotFoundError{ID: id}
	}

	records = append(records[:idx], records[idx+1:]...)
	return s.writeAll(records)
}

// load reads the whole file. A missing file is an empty store; any
// malformed content aborts the read with StorageError rather than
// skipping rows.
func (s *Store) load() ([]model.ExpenseRecord, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, StorageError{Path: s.path, Err: err}
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, StorageError{Path: s.path, Err: err}
	}

	seen := make(map[int]bool, len(records))
	for _, rec := range records {
		if seen[rec.ID] {
			return nil, StorageError{Path: s.path, Err: fmt.Errorf("duplicate id %d", rec.ID)}
		}
		seen[rec.ID] = true
	}
	return records, nil
}

// appendRecord adds one row to the file, writing the header first if the
// file is new or still empty, and flushes before returning.
func (s *Store) appendRecord(rec model.ExpenseRecord) error {
	isNew := false
	if info, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	} else if err == nil && info.Size() == 0 {
		isNew = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return StorageError{Path: s.path, Err: err}
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return StorageError{Path: s.path, Err: err}
		}
	}
	if err := AppendRecords(f, []model.ExpenseRecord{rec}); err != nil {
		return StorageError{Path: s.path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return StorageError{Path: s.path, Err: err}
	}
	return nil
}

// writeAll rewrites the file atomically: write a temp file next to the
// target, then rename it into place, so a crash mid-write never leaves a
// half-written table behind.
func (s *Store) writeAll(records []model.ExpenseRecord) error {
	tmp := s.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return StorageError{Path: s.path, Err: err}
	}

	if err := WriteRecords(f, records); err != nil {
		f.Close()
		os.Remove(tmp)
		return StorageError{Path: s.path, Err: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return StorageError{Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return StorageError{Path: s.path, Err: err}
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return StorageError{Path: s.path, Err: err}
	}
	return nil
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

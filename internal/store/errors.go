package store

import "fmt"

// ValidationError describes a record field that violates an invariant.
// Nothing is persisted when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation against an id with no live record.
type NotFoundError struct {
	ID int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no record with id %d", e.ID)
}

// StorageError reports that the durable medium is unreachable, unwritable,
// or corrupt. Distinguished from caller mistakes (ValidationError,
// NotFoundError) so the presentation layer can tell them apart.
type StorageError struct {
	Path string
	Err  error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Path, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}

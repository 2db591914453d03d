package store

import "errors"

var (
	// ErrEmptySpecies rejects a catch with no species; nothing is persisted.
	ErrEmptySpecies = errors.New("species must not be empty")

	// ErrNotFound is returned by Update/Get when the id does not exist.
	// Delete treats a missing id as a silent no-op instead.
	ErrNotFound = errors.New("catch not found")

	// ErrStorageUnavailable means the on-device database cannot be used at
	// all. Callers should surface a visible diagnostic rather than render
	// an empty log.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

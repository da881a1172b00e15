package domain

import "errors"

// Domain errors represent business logic failures.
// The extraction and search engine never returns them; they surface from
// the note services and adapters around it.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown note type, rule or backend.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrStoreUnavailable indicates no note store is configured.
	ErrStoreUnavailable = errors.New("note store unavailable")

	// ErrSourceClosed indicates the note source has been closed.
	ErrSourceClosed = errors.New("note source closed")
)

package migration

import "errors"

// Sentinel errors for path validation.
var (
	// ErrNilIndex indicates a nil adjacency index was passed to Validate.
	ErrNilIndex = errors.New("migration: adjacency index is nil")

	// ErrBadTime indicates a time value is not a parseable number.
	ErrBadTime = errors.New("migration: time value is not numeric")
)

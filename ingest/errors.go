package ingest

import "errors"

// Sentinel errors for input adaptation.
var (
	// ErrMissingField indicates an observation record lacks a required field
	// (edge_id, state_id or time). Malformed input aborts the whole run.
	ErrMissingField = errors.New("ingest: record is missing a required field")

	// ErrEmptyCSV indicates the CSV input holds no data rows.
	ErrEmptyCSV = errors.New("ingest: CSV input has no data rows")

	// ErrBadHeader indicates the observation CSV header does not carry the
	// expected edge_id/state_id/time columns.
	ErrBadHeader = errors.New("ingest: unexpected CSV header")
)

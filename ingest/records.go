package ingest

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/geomigrate/adjacency"
	"github.com/katalvlaran/geomigrate/migration"
)

// flatRecord is one row of the flat observation shape. Pointer fields let
// decoding distinguish "absent" from zero values; json.Number keeps the time
// text verbatim whether the producer wrote it as a number or a string.
type flatRecord struct {
	EdgeID  *int           `json:"edge_id"`
	StateID *int           `json:"state_id"`
	Time    *gojson.Number `json:"time"`
}

// nestedRecord is one entity of the pre-grouped observation shape.
type nestedRecord struct {
	EdgeID  *int          `json:"edge_id"`
	Entries []nestedEntry `json:"entries"`
}

// nestedEntry is one observation inside a nestedRecord.
type nestedEntry struct {
	Time    *gojson.Number `json:"time"`
	StateID *int           `json:"state_id"`
}

// DecodeFlat reads a flat JSON array of {edge_id, state_id, time} records
// and groups them into a PathSet. Records belonging to the same edge_id are
// appended in input order; sorting is the validator's job.
// Returns ErrMissingField when any record lacks a required field.
func DecodeFlat(r io.Reader) (migration.PathSet, error) {
	var records []flatRecord
	if err := gojson.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("ingest: flat records: %w", err)
	}

	paths := make(migration.PathSet)
	for i, rec := range records {
		if rec.EdgeID == nil || rec.StateID == nil || rec.Time == nil {
			return nil, fmt.Errorf("ingest: flat record %d: %w", i, ErrMissingField)
		}
		tm, err := migration.ParseTime(rec.Time.String())
		if err != nil {
			return nil, fmt.Errorf("ingest: flat record %d: %w", i, err)
		}
		id := migration.EntityID(*rec.EdgeID)
		paths[id] = append(paths[id], migration.Observation{
			Time:  tm,
			State: adjacency.State(*rec.StateID),
		})
	}

	return paths, nil
}

// DecodeNested reads the pre-grouped JSON shape, one record per entity with
// an entries array, and normalizes it to the same PathSet DecodeFlat
// produces. Entities repeated across records merge by appending.
// Returns ErrMissingField when a record or entry lacks a required field.
func DecodeNested(r io.Reader) (migration.PathSet, error) {
	var records []nestedRecord
	if err := gojson.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("ingest: nested records: %w", err)
	}

	paths := make(migration.PathSet)
	for i, rec := range records {
		if rec.EdgeID == nil {
			return nil, fmt.Errorf("ingest: nested record %d: %w", i, ErrMissingField)
		}
		id := migration.EntityID(*rec.EdgeID)
		for j, entry := range rec.Entries {
			if entry.Time == nil || entry.StateID == nil {
				return nil, fmt.Errorf("ingest: nested record %d entry %d: %w", i, j, ErrMissingField)
			}
			tm, err := migration.ParseTime(entry.Time.String())
			if err != nil {
				return nil, fmt.Errorf("ingest: nested record %d entry %d: %w", i, j, err)
			}
			paths[id] = append(paths[id], migration.Observation{
				Time:  tm,
				State: adjacency.State(*entry.StateID),
			})
		}
		if _, seen := paths[id]; !seen {
			// An entity with zero entries still normalizes to an (empty) path.
			paths[id] = nil
		}
	}

	return paths, nil
}

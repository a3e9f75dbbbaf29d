package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// flatOut is the JSON form ConvertCSV emits. Time stays a string so the
// source text survives the round trip bit for bit.
type flatOut struct {
	EdgeID  int    `json:"edge_id"`
	StateID int    `json:"state_id"`
	Time    string `json:"time"`
}

// ConvertCSV converts an observation CSV (columns edge_id, state_id, time,
// located by header name in any order) into the flat JSON array shape.
// Time cells are copied verbatim — never reparsed through a float — so
// values like "0.123450000" keep their exact text.
//
// Returns ErrBadHeader when a required column is absent, ErrEmptyCSV when
// only a header is present, and strconv errors for non-integer ids.
func ConvertCSV(r io.Reader, w io.Writer) error {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return fmt.Errorf("ingest: observation csv: %w", err)
	}
	if len(records) == 0 {
		return ErrEmptyCSV
	}

	cols := map[string]int{}
	for i, name := range records[0] {
		cols[name] = i
	}
	edgeCol, okEdge := cols["edge_id"]
	stateCol, okState := cols["state_id"]
	timeCol, okTime := cols["time"]
	if !okEdge || !okState || !okTime {
		return fmt.Errorf("ingest: %w: got %v", ErrBadHeader, records[0])
	}
	if len(records) == 1 {
		return ErrEmptyCSV
	}

	out := make([]flatOut, 0, len(records)-1)
	for n, record := range records[1:] {
		edgeID, convErr := strconv.Atoi(record[edgeCol])
		if convErr != nil {
			return fmt.Errorf("ingest: csv row %d edge_id: %w", n+1, convErr)
		}
		stateID, convErr := strconv.Atoi(record[stateCol])
		if convErr != nil {
			return fmt.Errorf("ingest: csv row %d state_id: %w", n+1, convErr)
		}
		out = append(out, flatOut{
			EdgeID:  edgeID,
			StateID: stateID,
			Time:    record[timeCol],
		})
	}

	if err = gojson.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("ingest: encode flat json: %w", err)
	}

	return nil
}

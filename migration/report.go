package migration

import (
	"fmt"
	"io"
	"sort"

	gojson "github.com/goccy/go-json"
)

// Report maps each entity with at least one violation to its ordered finding
// list. An empty Report means every path was valid.
type Report map[EntityID][]Violation

// Valid reports whether no entity produced any violation.
func (r Report) Valid() bool { return len(r) == 0 }

// Entities returns the ids present in the report, ascending.
func (r Report) Entities() []EntityID {
	ids := make([]EntityID, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// MarshalJSON serializes the report as an object keyed by decimal entity id,
// each value being the ordered violation array.
func (r Report) MarshalJSON() ([]byte, error) {
	out := make(map[string][]Violation, len(r))
	for id, vs := range r {
		out[fmt.Sprintf("%d", id)] = vs
	}

	return gojson.Marshal(out)
}

// Format writes the human-readable report. A clean report prints a distinct
// all-valid line; otherwise each offending entity is listed with its
// violations, entities in ascending id order.
func (r Report) Format(w io.Writer) error {
	if r.Valid() {
		_, err := fmt.Fprintln(w, "No violations found!")

		return err
	}

	if _, err := fmt.Fprintf(w, "Found %d edges with violations:\n", len(r)); err != nil {
		return err
	}
	for _, id := range r.Entities() {
		if _, err := fmt.Fprintf(w, "\nEdge ID: %d\n", id); err != nil {
			return err
		}
		for _, v := range r[id] {
			if _, err := fmt.Fprintf(w, "  %s\n", v); err != nil {
				return err
			}
		}
	}

	return nil
}

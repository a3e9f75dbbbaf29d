package migration

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/geomigrate/adjacency"
)

// ViolationKind discriminates the two violation variants.
type ViolationKind int

const (
	// KindDuplicateTimestamp marks ≥2 distinct states at one time point.
	KindDuplicateTimestamp ViolationKind = iota
	// KindIllegalTransition marks a sorted-neighbor hop between
	// non-adjacent states.
	KindIllegalTransition
)

// Wire-format error strings; the report schema predates this implementation
// and downstream tooling matches on them.
const (
	msgDuplicateTimestamp = "Multiple states at same time point"
	msgIllegalTransition  = "Non-adjacent states transition"
)

// Violation is one detected inconsistency in an entity's migration path.
// It is a sealed union with exactly two variants: DuplicateTimestamp and
// IllegalTransition. Switch on Kind() when exhaustive handling is needed.
type Violation interface {
	// Kind returns the variant tag.
	Kind() ViolationKind
	// String renders the one-line human report form.
	String() string

	sealed()
}

// DuplicateTimestamp reports that an entity was observed in two or more
// distinct states at the exact same time value. States holds the distinct
// state set, sorted ascending for deterministic output.
type DuplicateTimestamp struct {
	Time   Time
	States []adjacency.State
}

// Kind returns KindDuplicateTimestamp.
func (DuplicateTimestamp) Kind() ViolationKind { return KindDuplicateTimestamp }

func (DuplicateTimestamp) sealed() {}

// String renders e.g. "Time 5: Multiple states found: [1 2]".
func (v DuplicateTimestamp) String() string {
	return fmt.Sprintf("Time %s: Multiple states found: %v", v.Time, v.States)
}

// MarshalJSON emits {"time": ..., "states": [...], "error": ...} matching
// the established report schema.
func (v DuplicateTimestamp) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(struct {
		Time   Time              `json:"time"`
		States []adjacency.State `json:"states"`
		Error  string            `json:"error"`
	}{v.Time, v.States, msgDuplicateTimestamp})
}

// IllegalTransition reports a hop between two non-adjacent states at
// consecutive positions of the time-sorted path.
type IllegalTransition struct {
	Start Time
	End   Time
	From  adjacency.State
	To    adjacency.State
}

// Kind returns KindIllegalTransition.
func (IllegalTransition) Kind() ViolationKind { return KindIllegalTransition }

func (IllegalTransition) sealed() {}

// String renders e.g. "Time 0 -> 1: Invalid transition from state 1 to state 2".
func (v IllegalTransition) String() string {
	return fmt.Sprintf("Time %s -> %s: Invalid transition from state %d to state %d",
		v.Start, v.End, v.From, v.To)
}

// MarshalJSON emits {"time_start", "time_end", "from_state", "to_state",
// "error"} matching the established report schema.
func (v IllegalTransition) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(struct {
		TimeStart Time            `json:"time_start"`
		TimeEnd   Time            `json:"time_end"`
		FromState adjacency.State `json:"from_state"`
		ToState   adjacency.State `json:"to_state"`
		Error     string          `json:"error"`
	}{v.Start, v.End, v.From, v.To, msgIllegalTransition})
}

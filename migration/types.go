// Package migration: core value types shared by the validator and its
// adapters. Time preserves source text verbatim so that validation never
// loses precision the producer chose to emit.
package migration

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/geomigrate/adjacency"
)

// EntityID identifies one migrating entity ("edge_id" in source data).
type EntityID int

// Time is an opaque orderable time value. The raw source text is preserved
// verbatim; the parsed numeric value is used only for ordering. Two times are
// equal iff their raw texts are identical, so "0.5" and "0.50" order together
// but never collapse into one time point.
type Time struct {
	raw string
	num float64
}

// ParseTime builds a Time from its raw source text.
// Returns ErrBadTime when the text is not a parseable number.
func ParseTime(raw string) (Time, error) {
	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Time{}, fmt.Errorf("%q: %w", raw, ErrBadTime)
	}

	return Time{raw: raw, num: num}, nil
}

// TimeFromFloat builds a Time from a numeric value; the raw text becomes the
// shortest exact decimal representation of f.
func TimeFromFloat(f float64) Time {
	return Time{raw: strconv.FormatFloat(f, 'g', -1, 64), num: f}
}

// String returns the verbatim source text of the time value.
func (t Time) String() string { return t.raw }

// Float returns the parsed numeric value used for ordering.
func (t Time) Float() float64 { return t.num }

// Equal reports exact (raw-text) equality. This is the equality used for
// duplicate-timestamp grouping.
func (t Time) Equal(u Time) bool { return t.raw == u.raw }

// Less orders times numerically; textual compare breaks numeric ties so that
// ordering is total and deterministic.
func (t Time) Less(u Time) bool {
	if t.num != u.num {
		return t.num < u.num
	}

	return t.raw < u.raw
}

// MarshalJSON emits the raw text as a JSON number when it is one, falling
// back to a quoted string (CSV sources keep times as strings end to end).
func (t Time) MarshalJSON() ([]byte, error) {
	if isJSONNumber(t.raw) {
		return []byte(t.raw), nil
	}

	return []byte(strconv.Quote(t.raw)), nil
}

// isJSONNumber reports whether s is a valid JSON number token. Go's float
// syntax is wider than JSON's (leading "+", ".5", hex floats), so a raw text
// can parse as float64 yet still need quoting.
func isJSONNumber(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[i] == '-' {
		i++
	}
	// Integer part: "0" alone or a nonzero digit followed by digits.
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	default:
		return false
	}
	// Optional fraction.
	if i < len(s) && s[i] == '.' {
		i++
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	// Optional exponent.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}

	return i == len(s)
}

// Observation is one (time, state) data point in an entity's path.
type Observation struct {
	Time  Time
	State adjacency.State
}

// PathSet maps each entity to its observations. Observations need not be
// sorted at ingestion; Validate sorts a private copy before analysis.
type PathSet map[EntityID][]Observation

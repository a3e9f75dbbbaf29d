package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// LoadAdjacencyCSV reads an adjacency-matrix CSV into a gonum dense matrix.
//
// The expected layout is the one dataframe exporters produce: a header row,
// and a leading index column on every data row; both are dropped. Cells are
// parsed permissively — anything that does not parse as a number counts as 0.
// Squareness is not enforced here; adjacency.FromDense owns that check.
//
// Returns ErrEmptyCSV when no data rows remain after dropping the header,
// or the underlying csv error for ragged input.
// Complexity: O(n²).
func LoadAdjacencyCSV(r io.Reader) (*mat.Dense, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: adjacency csv: %w", err)
	}
	// Drop the header row.
	if len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 || len(records[0]) < 2 {
		return nil, ErrEmptyCSV
	}

	rows := len(records)
	cols := len(records[0]) - 1 // leading index column dropped
	data := make([]float64, 0, rows*cols)
	for _, record := range records {
		for _, cell := range record[1:] {
			v, parseErr := strconv.ParseFloat(cell, 64)
			if parseErr != nil {
				v = 0 // permissive: junk cells are non-adjacent
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

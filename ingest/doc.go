// Package ingest adapts on-disk data shapes to the in-memory forms the
// validator consumes. It is deliberately dumb: schema mapping only, no
// validation semantics.
//
// What:
//
//   - LoadAdjacencyCSV: adjacency-matrix CSV (header row + leading index
//     column, as exported by dataframe tooling) → gonum *mat.Dense, ready
//     for adjacency.FromDense.
//   - DecodeFlat: flat JSON array of {edge_id, state_id, time} records →
//     migration.PathSet.
//   - DecodeNested: nested JSON array of {edge_id, entries: [{time,
//     state_id}]} records → migration.PathSet.
//   - ConvertCSV: observation CSV → flat JSON, preserving time text exactly.
//
// Both JSON shapes normalize to the same PathSet; the validator never sees
// which shape the data arrived in. Time values ride through as verbatim
// source text (json.Number / CSV cell), so no precision is lost between file
// and report.
//
// Errors:
//
//   - ErrMissingField: a record lacks edge_id, state_id or time — fatal for
//     the whole input, per the malformed-input contract.
//   - ErrEmptyCSV: the CSV holds a header but no data rows.
//
// Cell values other than 0/1 in the matrix CSV are not errors; anything that
// is not exactly 1 is simply non-adjacent.
package ingest

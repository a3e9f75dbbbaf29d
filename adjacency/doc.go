// Package adjacency builds a symmetric O(1) lookup of legal state-to-state
// transitions from a square 0/1 matrix.
//
// What:
//
//   - Index is an immutable set of ordered state pairs (a, b) such that a
//     direct transition between a and b is legal in either direction.
//   - Built once from an n×n 0/1 matrix; row/column i (0-based) maps to the
//     external state id i+1 (1-based), matching externally numbered
//     state catalogs.
//   - Membership is mirrored on construction: if either (i,j) or (j,i) is 1,
//     both directions become legal.
//   - Backed by a fixed-size bitset keyed by (a-1)*n+(b-1) — state ids are
//     small bounded integers, so no hashing is needed.
//
// Why:
//
//   - Migration-path validation: decide in O(1) whether two spatial regions
//     border each other.
//   - Grid/region analysis: any domain where legality of a hop is a symmetric
//     relation over a small integer-indexed state space.
//
// Complexity:
//
//   - New / FromDense: O(n²) time, O(n²) bits memory.
//   - IsAdjacent:      O(1) time.
//
// Errors:
//
//   - ErrNonSquare: the input matrix is ragged or not square.
//
// Values other than 1 in the input are treated as non-adjacent, never as an
// error; real-world CSV ingestion is permissive by design.
package adjacency

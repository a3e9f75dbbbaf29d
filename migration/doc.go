// Package migration validates per-entity migration paths against a spatial
// adjacency constraint.
//
// What:
//
//   - An entity path is a sequence of (time, state) observations belonging to
//     one migrating entity ("edge" in tree-sequence terminology).
//   - Validate checks every entity independently for two kinds of findings:
//     DuplicateTimestamp (two or more distinct states observed at the exact
//     same time value) and IllegalTransition (consecutive states in the
//     time-sorted path that are not adjacent per the index).
//   - Findings are data, not failures: they are collected into a Report keyed
//     by entity id; entities with no findings are omitted entirely.
//
// Why:
//
//   - Sanity-check simulated or inferred geographic migrations: a path that
//     teleports between non-bordering regions, or that occupies two regions
//     at once, is inconsistent with the spatial model that produced it.
//
// Algorithm, per entity:
//
//  1. Group raw observations by exact time value; any time with ≥2 distinct
//     states yields one DuplicateTimestamp (first-encountered group order).
//  2. Stable-sort observations ascending by time.
//  3. For each consecutive pair in the sorted path: same state ⇒ skip (a
//     "stay" is always legal); otherwise the pair must be present in the
//     adjacency index or an IllegalTransition is recorded.
//  4. Duplicate findings first, then transitions in chronological order.
//
// The two checks are independent: a duplicated timestamp does not suppress
// transition checking and vice versa.
//
// Complexity:
//
//   - Validate: O(Σ kᵢ·log kᵢ) time over entities with kᵢ observations,
//     O(max kᵢ) extra memory (O(Σ kᵢ) under WithParallelism).
//
// Errors:
//
//   - ErrNilIndex: a nil adjacency index was supplied.
//   - ErrBadTime: a time value could not be parsed as a number.
//
// Concurrency:
//
//   - Entities never interact, so Validate may fan out across entities when
//     configured via WithParallelism; the Report is identical regardless of
//     execution order.
package migration

// Package geomigrate checks simulated or inferred geographic migration paths
// against a spatial adjacency constraint.
//
// 🚀 What is geomigrate?
//
//	A small toolkit around one core question: given per-entity (time, state)
//	observations and a map of which regions border each other, is every
//	recorded path physically consistent?
//		• adjacency/  — symmetric O(1) state-pair index built from a 0/1 matrix
//		• migration/  — the validator: duplicate timestamps + illegal transitions
//		• ingest/     — CSV/JSON adapters normalizing both input shapes
//		• treeseq/    — tree-sequence tables → JSON dumps and validator input
//		• server/     — HTTP API with /metrics and /healthz
//		• cmd/        — the geomigrate CLI (one-shot, convert, serve)
//
// ✨ Design:
//
//   - Findings are data, not errors — a violation lands in a report keyed by
//     entity, and every entity is always fully evaluated
//   - Time values ride through as verbatim source text, so nothing the
//     producer wrote is ever rounded away
//   - The validator is a pure function; logging, metrics and I/O live at the
//     edges
//
// Quick ASCII example, three regions in a row:
//
//	[1]──[2]──[3]
//
//	path 1: (t=0, 1) → (t=1, 2) → (t=2, 3)   ✓ every hop crosses a border
//	path 2: (t=0, 1) → (t=1, 3)              ✗ illegal transition 1→3
//	path 3: (t=5, 1), (t=5, 2)               ✗ two states at one time
//
// Start with migration.Validate and adjacency.New; everything else feeds
// them or renders their output.
package geomigrate

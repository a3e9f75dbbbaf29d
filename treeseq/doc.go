// Package treeseq maps tree-sequence tables onto JSON documents and
// validator input.
//
// What:
//
//   - Table row types (Population, Individual, Node, Edge) mirroring the
//     tree-sequence table model, 0-based ids preserved.
//   - NA-safe coercion helpers (Float, Int): empty and "NA" metadata values
//     become nulls instead of parse failures.
//   - WriteTables: dump one JSON file per table
//     (populations/individuals/nodes/edges).
//   - TreeSequence.Paths: derive per-edge (time, state) observations from
//     node times and populations, producing migration.PathSet directly.
//
// Populations are 0-based in tree-sequence tables while spatial states are
// 1-based externally; Paths applies the +1 offset in one place so nothing
// downstream needs to know.
//
// Errors:
//
//   - ErrNodeRange: an edge references a node id outside the node table.
package treeseq

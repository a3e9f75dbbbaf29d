package treeseq

import (
	"fmt"
	"os"
	"path/filepath"

	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/geomigrate/adjacency"
	"github.com/katalvlaran/geomigrate/migration"
)

// tableFiles maps table names to output file names.
var tableFiles = []string{"populations", "individuals", "nodes", "edges"}

// WriteTables dumps each table of ts into dir as <table>.json. Existing
// files are overwritten. One file per table keeps downstream loaders free to
// pick only the tables they need.
func (ts *TreeSequence) WriteTables(dir string) error {
	tables := map[string]any{
		"populations": ts.Populations,
		"individuals": ts.Individuals,
		"nodes":       ts.Nodes,
		"edges":       ts.Edges,
	}
	for _, name := range tableFiles {
		data, err := gojson.Marshal(tables[name])
		if err != nil {
			return fmt.Errorf("treeseq: marshal %s: %w", name, err)
		}
		path := filepath.Join(dir, name+".json")
		if err = os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("treeseq: write %s: %w", name, err)
		}
	}

	return nil
}

// Paths derives validator input from the tables: for every edge, the child
// and parent node each contribute one (time, state) observation, where the
// state is the node's population shifted to the external 1-based numbering.
// Nodes without a population reference contribute nothing.
// Returns ErrNodeRange when an edge references a node id outside the table.
func (ts *TreeSequence) Paths() (migration.PathSet, error) {
	paths := make(migration.PathSet, len(ts.Edges))
	for _, e := range ts.Edges {
		id := migration.EntityID(e.ID)
		for _, nodeID := range [2]int{e.Child, e.Parent} {
			if nodeID < 0 || nodeID >= len(ts.Nodes) {
				return nil, fmt.Errorf("treeseq: edge %d node %d: %w", e.ID, nodeID, ErrNodeRange)
			}
			node := ts.Nodes[nodeID]
			if node.Population == nil {
				continue
			}
			paths[id] = append(paths[id], migration.Observation{
				Time:  migration.TimeFromFloat(node.Time),
				State: adjacency.State(*node.Population + 1),
			})
		}
	}

	return paths, nil
}

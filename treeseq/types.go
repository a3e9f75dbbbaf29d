package treeseq

import (
	"errors"
	"strconv"
)

// ErrNodeRange indicates an edge row references a node id outside the node
// table.
var ErrNodeRange = errors.New("treeseq: edge references unknown node")

// Population is one row of the population table. Name and Region come from
// table metadata and may be empty.
type Population struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Individual is one row of the individual table plus its sequencing QC
// metadata. Numeric metadata is nullable: sources write "NA" where a value
// is unknown, and that must stay null in JSON rather than become zero.
type Individual struct {
	ID       int       `json:"id"`
	Flags    int       `json:"flags"`
	Location []float64 `json:"location"`
	Parents  []int     `json:"parents"`
	Nodes    []int     `json:"nodes"`

	ArrayNonReferenceDiscordance *float64 `json:"array_non_reference_discordance"`
	Capmq                        *int     `json:"capmq"`
	Coverage                     *float64 `json:"coverage"`
	Freemix                      *float64 `json:"freemix"`
	InsertSizeAverage            *float64 `json:"insert_size_average"`
	Library                      string   `json:"library"`
	LibraryType                  string   `json:"library_type"`
	Region                       string   `json:"region"`
	Sample                       string   `json:"sample"`
	SampleAccession              string   `json:"sample_accession"`
	Sex                          string   `json:"sex"`
	Source                       string   `json:"source"`
}

// Node is one row of the node table. Population and Individual are nil when
// the source stored -1 (no reference).
type Node struct {
	ID             int     `json:"id"`
	Flags          int     `json:"flags"`
	Time           float64 `json:"time"`
	Population     *int    `json:"population"`
	Individual     *int    `json:"individual"`
	AncestorDataID *int    `json:"ancestor_data_id"`
}

// Edge is one row of the edge table: a parent/child link between nodes.
type Edge struct {
	ID     int `json:"id"`
	Parent int `json:"parent"`
	Child  int `json:"child"`
}

// TreeSequence bundles the four tables of one sequence.
type TreeSequence struct {
	Populations []Population
	Individuals []Individual
	Nodes       []Node
	Edges       []Edge
}

// Float coerces a metadata value to a nullable float. Empty, "NA" and
// unparseable values all map to nil.
func Float(v string) *float64 {
	if v == "" || v == "NA" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}

	return &f
}

// Int coerces a metadata value to a nullable int. Empty, "NA" and
// unparseable values all map to nil.
func Int(v string) *int {
	if v == "" || v == "NA" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}

	return &n
}

// Ref converts a -1-means-absent table reference to a nullable int.
func Ref(id int) *int {
	if id == -1 {
		return nil
	}

	return &id
}

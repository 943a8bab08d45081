// Package ground models evidence returned by the Kremis Core and the
// parsing of raw query responses into grounded results.
package ground

// Edge is a weighted directed edge from the Core's evidence subgraph.
type Edge struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

// Artifact is the concrete evidence the Core returned for a query:
// an ordered node path and, optionally, the surrounding subgraph.
type Artifact struct {
	Path     []int
	Subgraph []Edge
}

// Result is the canonical outcome of a grounding query.
// Immutable once constructed; produced only by ParseQueryResponse.
type Result struct {
	Artifact     *Artifact
	Confidence   int // 0-100
	Verified     bool
	EvidencePath []int
}

package honesty

import "github.com/M2Dr3g0n/kremis/internal/ground"

// Outcome is the raw Core response captured in an audit cycle. It is a
// closed set of known reply shapes plus a raw-text fallback, so audit
// consumers can inspect what the Core actually said without untyped
// access.
type Outcome interface {
	OutcomeKind() string
}

// QueryOutcome records a /query reply, found or not.
type QueryOutcome struct {
	Found bool          `json:"found"`
	Path  []int         `json:"path,omitempty"`
	Edges []ground.Edge `json:"edges,omitempty"`
}

func (QueryOutcome) OutcomeKind() string { return "query" }

// SignalOutcome records a /signal reply.
type SignalOutcome struct {
	NodeID int `json:"node_id"`
}

func (SignalOutcome) OutcomeKind() string { return "signal" }

// StatusOutcome records a /status reply.
type StatusOutcome struct {
	NodeCount         int `json:"node_count"`
	EdgeCount         int `json:"edge_count"`
	StableEdges       int `json:"stable_edges"`
	DensityMillionths int `json:"density_millionths"`
}

func (StatusOutcome) OutcomeKind() string { return "status" }

// StageOutcome records a /stage reply.
type StageOutcome struct {
	Stage           int    `json:"stage"`
	Name            string `json:"name"`
	ProgressPercent int    `json:"progress_percent"`
}

func (StageOutcome) OutcomeKind() string { return "stage" }

// FailureOutcome records a transport-level failure. Classification
// treats failures like absence, but the trail keeps them apart.
type FailureOutcome struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

func (FailureOutcome) OutcomeKind() string { return "failure" }

// RawOutcome is the forward-compatibility fallback for reply shapes
// this version does not know how to type.
type RawOutcome struct {
	Text string `json:"text"`
}

func (RawOutcome) OutcomeKind() string { return "raw" }

// QueryOutcomeOf derives the audit outcome from a parsed result.
// A nil result means the call produced no reply at all.
func QueryOutcomeOf(res *ground.Result) Outcome {
	if res == nil {
		return nil
	}
	oc := QueryOutcome{Found: res.Verified, Path: res.EvidencePath}
	if res.Artifact != nil {
		oc.Edges = res.Artifact.Subgraph
	}
	return oc
}

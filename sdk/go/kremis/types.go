package kremis

import (
	"github.com/M2Dr3g0n/kremis/internal/core"
	"github.com/M2Dr3g0n/kremis/internal/ground"
	"github.com/M2Dr3g0n/kremis/internal/honesty"
)

// Status is the outcome of one verification.
type Status string

const (
	Verified   Status = Status(honesty.StatusVerified)
	Unverified Status = Status(honesty.StatusUnverified)
	Partial    Status = Status(honesty.StatusPartial)
)

// Edge is a weighted directed edge from an evidence subgraph.
type Edge struct {
	From   int
	To     int
	Weight int
}

// Artifact is the concrete evidence the Core returned.
type Artifact struct {
	Path     []int
	Subgraph []Edge
}

// GroundedResult is the outcome of a grounding query. A nil
// *GroundedResult from a query method means the Core produced nothing.
type GroundedResult struct {
	Artifact     *Artifact
	Confidence   int
	Verified     bool
	EvidencePath []int
}

// Fact is a Core-confirmed claim.
type Fact struct {
	Statement    string
	EvidencePath []int
}

// Inference is a partially supported claim with clamped confidence.
type Inference struct {
	Statement  string
	Confidence int
	Reasoning  string
}

// Unknown is an explicit refusal to assert.
type Unknown struct {
	Query       string
	Explanation string
}

// Response is the honest result of one verification.
type Response struct {
	Facts      []Fact
	Inferences []Inference
	Unknowns   []Unknown
	Rendered   string
}

// GraphStatus mirrors the Core's /status counters.
type GraphStatus struct {
	NodeCount         int
	EdgeCount         int
	StableEdges       int
	DensityMillionths int
}

// StageInfo mirrors the Core's /stage reply.
type StageInfo struct {
	Stage           int
	Name            string
	ProgressPercent int
}

// AuditSummary holds the running verification statistics.
type AuditSummary struct {
	Total            int
	Verified         int
	Unverified       int
	Partial          int
	VerificationRate float64
}

func toGroundedResult(r *ground.Result) *GroundedResult {
	if r == nil {
		return nil
	}
	out := &GroundedResult{
		Confidence:   r.Confidence,
		Verified:     r.Verified,
		EvidencePath: r.EvidencePath,
	}
	if r.Artifact != nil {
		a := &Artifact{Path: r.Artifact.Path}
		for _, e := range r.Artifact.Subgraph {
			a.Subgraph = append(a.Subgraph, Edge{From: e.From, To: e.To, Weight: e.Weight})
		}
		out.Artifact = a
	}
	return out
}

func toResponse(r *honesty.Response) Response {
	out := Response{Rendered: r.Render()}
	for _, f := range r.Facts {
		out.Facts = append(out.Facts, Fact{Statement: f.Statement, EvidencePath: f.EvidencePath})
	}
	for _, i := range r.Inferences {
		out.Inferences = append(out.Inferences, Inference{
			Statement:  i.Statement,
			Confidence: i.Confidence,
			Reasoning:  i.Reasoning,
		})
	}
	for _, u := range r.Unknowns {
		out.Unknowns = append(out.Unknowns, Unknown{Query: u.Query, Explanation: u.Explanation})
	}
	return out
}

func toGraphStatus(gs *core.GraphStatus) *GraphStatus {
	if gs == nil {
		return nil
	}
	return &GraphStatus{
		NodeCount:         gs.NodeCount,
		EdgeCount:         gs.EdgeCount,
		StableEdges:       gs.StableEdges,
		DensityMillionths: gs.DensityMillionths,
	}
}

func toStageInfo(si *core.StageInfo) *StageInfo {
	if si == nil {
		return nil
	}
	return &StageInfo{Stage: si.Stage, Name: si.Name, ProgressPercent: si.ProgressPercent}
}

package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/M2Dr3g0n/kremis/internal/core"
	"github.com/M2Dr3g0n/kremis/internal/honesty"
)

// --- Input/Output types ---

// LookupInput defines parameters for the kremis_lookup tool.
type LookupInput struct {
	EntityID int `json:"entity_id" jsonschema:"entity id to look up"`
}

// TraverseInput defines parameters for the kremis_traverse tool.
type TraverseInput struct {
	NodeID int `json:"node_id" jsonschema:"node id to traverse from"`
	Depth  int `json:"depth,omitempty" jsonschema:"maximum traversal depth (default 3)"`
}

// PathInput defines parameters for the kremis_path tool.
type PathInput struct {
	Start int `json:"start" jsonschema:"starting node id"`
	End   int `json:"end" jsonschema:"ending node id"`
}

// RelatedInput defines parameters for the kremis_related tool.
type RelatedInput struct {
	NodeID int `json:"node_id" jsonschema:"node id to extract a subgraph from"`
	Depth  int `json:"depth,omitempty" jsonschema:"maximum depth (default 3)"`
}

// IngestInput defines parameters for the kremis_ingest tool.
type IngestInput struct {
	EntityID  int    `json:"entity_id" jsonschema:"entity id"`
	Attribute string `json:"attribute" jsonschema:"attribute name"`
	Value     string `json:"value" jsonschema:"attribute value"`
}

// StatusInput has no parameters.
type StatusInput struct{}

// AuditInput has no parameters.
type AuditInput struct{}

// VerifyOutput carries the honest response for one verification.
type VerifyOutput struct {
	Facts      []FactItem      `json:"facts"`
	Inferences []InferenceItem `json:"inferences"`
	Unknowns   []UnknownItem   `json:"unknowns"`
	Rendered   string          `json:"rendered"`
}

// FactItem is a Core-confirmed claim.
type FactItem struct {
	Statement    string `json:"statement"`
	EvidencePath []int  `json:"evidence_path"`
}

// InferenceItem is a partially supported claim.
type InferenceItem struct {
	Statement  string `json:"statement"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// UnknownItem is an explicit refusal to assert.
type UnknownItem struct {
	Query       string `json:"query"`
	Explanation string `json:"explanation"`
}

// AuditOutput is the session audit summary.
type AuditOutput struct {
	Total            int     `json:"total"`
	Verified         int     `json:"verified"`
	Unverified       int     `json:"unverified"`
	Partial          int     `json:"partial"`
	VerificationRate float64 `json:"verification_rate"`
}

func toOutput(resp *honesty.Response) VerifyOutput {
	out := VerifyOutput{
		Facts:      []FactItem{},
		Inferences: []InferenceItem{},
		Unknowns:   []UnknownItem{},
		Rendered:   resp.Render(),
	}
	for _, f := range resp.Facts {
		out.Facts = append(out.Facts, FactItem{Statement: f.Statement, EvidencePath: f.EvidencePath})
	}
	for _, i := range resp.Inferences {
		out.Inferences = append(out.Inferences, InferenceItem{
			Statement:  i.Statement,
			Confidence: i.Confidence,
			Reasoning:  i.Reasoning,
		})
	}
	for _, u := range resp.Unknowns {
		out.Unknowns = append(out.Unknowns, UnknownItem{Query: u.Query, Explanation: u.Explanation})
	}
	return out
}

// --- Handlers ---
//
// Grammar-backed tools go through the dispatcher with a synthesized
// command line, so tool calls and typed commands cannot classify
// differently.

func (s *Server) handleLookup(ctx context.Context, req *mcpsdk.CallToolRequest, in LookupInput) (*mcpsdk.CallToolResult, VerifyOutput, error) {
	resp := s.dispatcher.Dispatch(ctx, fmt.Sprintf("lookup %d", in.EntityID))
	return nil, toOutput(resp), nil
}

func (s *Server) handleTraverse(ctx context.Context, req *mcpsdk.CallToolRequest, in TraverseInput) (*mcpsdk.CallToolResult, VerifyOutput, error) {
	depth := in.Depth
	if depth == 0 {
		depth = 3
	}
	resp := s.dispatcher.Dispatch(ctx, fmt.Sprintf("traverse %d %d", in.NodeID, depth))
	return nil, toOutput(resp), nil
}

func (s *Server) handlePath(ctx context.Context, req *mcpsdk.CallToolRequest, in PathInput) (*mcpsdk.CallToolResult, VerifyOutput, error) {
	resp := s.dispatcher.Dispatch(ctx, fmt.Sprintf("path %d %d", in.Start, in.End))
	return nil, toOutput(resp), nil
}

// handleRelated is the one tool without a command-grammar equivalent:
// it drives the client and verifier directly, preserving the surface
// asymmetry of the original design.
func (s *Server) handleRelated(ctx context.Context, req *mcpsdk.CallToolRequest, in RelatedInput) (*mcpsdk.CallToolResult, VerifyOutput, error) {
	depth := in.Depth
	if depth == 0 {
		depth = 3
	}

	res, err := s.client.Related(ctx, in.NodeID, depth)
	hypothesis := fmt.Sprintf("Node %d has a related subgraph within depth %d", in.NodeID, depth)
	if err != nil {
		outcome := honesty.FailureOutcome{Kind: core.KindOf(err), Detail: err.Error()}
		_, resp := s.verifier.Verify(hypothesis, "related", nil, outcome)
		return nil, toOutput(resp), nil
	}
	_, resp := s.verifier.Verify(hypothesis, "related", res, nil)
	return nil, toOutput(resp), nil
}

func (s *Server) handleIngest(ctx context.Context, req *mcpsdk.CallToolRequest, in IngestInput) (*mcpsdk.CallToolResult, VerifyOutput, error) {
	resp := s.dispatcher.Dispatch(ctx,
		fmt.Sprintf("ingest %d %s %s", in.EntityID, in.Attribute, in.Value))
	return nil, toOutput(resp), nil
}

func (s *Server) handleStatus(ctx context.Context, req *mcpsdk.CallToolRequest, in StatusInput) (*mcpsdk.CallToolResult, VerifyOutput, error) {
	resp := s.dispatcher.Dispatch(ctx, "status")
	return nil, toOutput(resp), nil
}

func (s *Server) handleAudit(ctx context.Context, req *mcpsdk.CallToolRequest, in AuditInput) (*mcpsdk.CallToolResult, AuditOutput, error) {
	sum := s.trail.Summary()
	return nil, AuditOutput{
		Total:            sum.Total,
		Verified:         sum.Verified,
		Unverified:       sum.Unverified,
		Partial:          sum.Partial,
		VerificationRate: sum.VerificationRate,
	}, nil
}

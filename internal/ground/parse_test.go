package ground

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFoundWithPath(t *testing.T) {
	qr := QueryResponse{
		Success: true,
		Found:   true,
		Path:    []int{1, 2, 3},
		Edges: []Edge{
			{From: 1, To: 2, Weight: 10},
			{From: 2, To: 3, Weight: 5},
		},
	}

	res := ParseQueryResponse(qr)
	if !res.Verified {
		t.Fatal("expected verified result")
	}
	if res.Confidence != 100 {
		t.Errorf("confidence: got %d, want 100", res.Confidence)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, res.EvidencePath); diff != "" {
		t.Errorf("evidence path mismatch (-want +got):\n%s", diff)
	}
	if res.Artifact == nil {
		t.Fatal("expected artifact")
	}
	if diff := cmp.Diff(qr.Edges, res.Artifact.Subgraph); diff != "" {
		t.Errorf("subgraph mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFoundWithoutEdges(t *testing.T) {
	qr := QueryResponse{Success: true, Found: true, Path: []int{7}}

	res := ParseQueryResponse(qr)
	if !res.Verified {
		t.Fatal("expected verified result")
	}
	if res.Artifact == nil {
		t.Fatal("expected artifact")
	}
	if res.Artifact.Subgraph != nil {
		t.Errorf("expected no subgraph, got %v", res.Artifact.Subgraph)
	}
}

func TestParseNotFound(t *testing.T) {
	res := ParseQueryResponse(QueryResponse{Success: true, Found: false})

	if res == nil {
		t.Fatal("parser must never return absence")
	}
	if res.Verified {
		t.Error("expected unverified result")
	}
	if res.Confidence != 0 {
		t.Errorf("confidence: got %d, want 0", res.Confidence)
	}
	if res.Artifact != nil {
		t.Errorf("expected no artifact, got %+v", res.Artifact)
	}
	if len(res.EvidencePath) != 0 {
		t.Errorf("expected empty evidence path, got %v", res.EvidencePath)
	}
}

func TestParseFoundEmptyPath(t *testing.T) {
	// found=true with an empty path is not grounded evidence
	res := ParseQueryResponse(QueryResponse{Success: true, Found: true})

	if res.Verified {
		t.Error("expected unverified result for empty path")
	}
	if res.Confidence != 0 {
		t.Errorf("confidence: got %d, want 0", res.Confidence)
	}
	if res.Artifact != nil {
		t.Error("expected no artifact for empty path")
	}
}

func TestParseCopiesEdges(t *testing.T) {
	edges := []Edge{{From: 1, To: 2, Weight: 3}}
	res := ParseQueryResponse(QueryResponse{Success: true, Found: true, Path: []int{1, 2}, Edges: edges})

	edges[0].Weight = 99
	if res.Artifact.Subgraph[0].Weight != 3 {
		t.Error("subgraph must not alias the input slice")
	}
}

package honesty

import (
	"strings"
	"testing"
)

func TestAddInferenceClamps(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-50, 0},
		{-1, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{101, 100},
		{1000, 100},
	}
	for _, c := range cases {
		r := NewResponse()
		r.AddInference("claim", c.in, "because")
		if got := r.Inferences[0].Confidence; got != c.want {
			t.Errorf("AddInference(%d): stored %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFactString(t *testing.T) {
	f := Fact{Statement: "Entity 1 exists in the graph", EvidencePath: []int{1, 2, 3}}
	want := "[FACT] Entity 1 exists in the graph [path: 1 -> 2 -> 3]"
	if got := f.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	empty := Fact{Statement: "Graph: 5 nodes"}
	if got := empty.String(); got != "[FACT] Graph: 5 nodes [path: no path]" {
		t.Errorf("empty path: got %q", got)
	}
}

func TestInferenceString(t *testing.T) {
	i := Inference{Statement: "maybe", Confidence: 40, Reasoning: "partial"}
	if got := i.String(); got != "[INFERENCE] maybe [40% confidence]" {
		t.Errorf("got %q", got)
	}
}

func TestUnknownString(t *testing.T) {
	u := Unknown{Query: "lookup 42", Explanation: "No supporting structure in graph"}
	if got := u.String(); got != "[UNKNOWN] lookup 42: No supporting structure in graph" {
		t.Errorf("got %q", got)
	}
}

func TestConfidenceThresholds(t *testing.T) {
	if !(Inference{Confidence: 70}).HighConfidence() {
		t.Error("70 should be high confidence")
	}
	if (Inference{Confidence: 69}).HighConfidence() {
		t.Error("69 should not be high confidence")
	}
	if !(Inference{Confidence: 49}).LowConfidence() {
		t.Error("49 should be low confidence")
	}
	if (Inference{Confidence: 50}).LowConfidence() {
		t.Error("50 should not be low confidence")
	}
}

func TestIsEmpty(t *testing.T) {
	r := NewResponse()
	if !r.IsEmpty() {
		t.Error("new response should be empty")
	}
	r.AddUnknown("q", "e")
	if r.IsEmpty() {
		t.Error("response with an unknown is not empty")
	}
}

func TestRenderEmpty(t *testing.T) {
	text := NewResponse().Render()

	for _, header := range []string{"FACTS", "INFERENCES", "UNKNOWN"} {
		if !strings.Contains(text, header) {
			t.Errorf("rendered text missing %s header", header)
		}
	}
	if got := strings.Count(text, "(none)"); got != 3 {
		t.Errorf("expected 3 (none) placeholders, got %d", got)
	}
}

func TestRenderEntries(t *testing.T) {
	r := NewResponse()
	r.AddFact("Entity 1 exists in the graph", []int{1, 2, 3})
	r.AddInference("maybe related", 40, "partial evidence")
	r.AddUnknown("lookup 42", "No supporting structure in graph")

	text := r.Render()
	if !strings.Contains(text, "[FACT] Entity 1 exists in the graph [path: 1 -> 2 -> 3]") {
		t.Errorf("missing fact line:\n%s", text)
	}
	if !strings.Contains(text, "[INFERENCE] maybe related [40% confidence]") {
		t.Errorf("missing inference line:\n%s", text)
	}
	if !strings.Contains(text, "[UNKNOWN] lookup 42: No supporting structure in graph") {
		t.Errorf("missing unknown line:\n%s", text)
	}
	if strings.Contains(text, "(none)") {
		t.Errorf("populated response should not render (none):\n%s", text)
	}
}

func TestRenderOrderPreserved(t *testing.T) {
	r := NewResponse()
	r.AddFact("first", nil)
	r.AddFact("second", nil)

	text := r.Render()
	if strings.Index(text, "first") > strings.Index(text, "second") {
		t.Error("facts must render in insertion order")
	}
}

func TestMerge(t *testing.T) {
	a := NewResponse()
	a.AddFact("kept", []int{1})
	b := NewResponse()
	b.AddUnknown("q", "e")
	b.AddInference("i", 10, "r")

	a.Merge(b)
	if len(a.Facts) != 1 || len(a.Inferences) != 1 || len(a.Unknowns) != 1 {
		t.Errorf("merge result: %d facts, %d inferences, %d unknowns",
			len(a.Facts), len(a.Inferences), len(a.Unknowns))
	}
	a.Merge(nil)
	if len(a.Facts) != 1 {
		t.Error("merging nil must be a no-op")
	}
}

package honesty

import (
	"fmt"
	"strconv"
	"strings"
)

// Confidence thresholds for inference quality.
const (
	HighConfidenceThreshold = 70
	LowConfidenceThreshold  = 50
)

// Fact is a claim backed by a Core-confirmed evidence path.
type Fact struct {
	Statement    string
	EvidencePath []int
}

func (f Fact) String() string {
	path := "no path"
	if len(f.EvidencePath) > 0 {
		parts := make([]string, len(f.EvidencePath))
		for i, n := range f.EvidencePath {
			parts[i] = strconv.Itoa(n)
		}
		path = strings.Join(parts, " -> ")
	}
	return fmt.Sprintf("[FACT] %s [path: %s]", f.Statement, path)
}

// Inference is a claim with partial graph support. Confidence is always
// within [0,100]; AddInference clamps on write.
type Inference struct {
	Statement  string
	Confidence int
	Reasoning  string
}

func (i Inference) String() string {
	return fmt.Sprintf("[INFERENCE] %s [%d%% confidence]", i.Statement, i.Confidence)
}

// HighConfidence reports whether the inference clears the high threshold.
func (i Inference) HighConfidence() bool {
	return i.Confidence >= HighConfidenceThreshold
}

// LowConfidence reports whether the inference falls below the low threshold.
func (i Inference) LowConfidence() bool {
	return i.Confidence < LowConfidenceThreshold
}

// Unknown is an explicit refusal to assert, the mechanism that keeps
// fabricated content out of responses.
type Unknown struct {
	Query       string
	Explanation string
}

func (u Unknown) String() string {
	return fmt.Sprintf("[UNKNOWN] %s: %s", u.Query, u.Explanation)
}

// Response accumulates facts, inferences, and unknowns for one query.
// Entries are append-only; insertion order is the rendering order.
type Response struct {
	Facts      []Fact
	Inferences []Inference
	Unknowns   []Unknown
}

// NewResponse returns an empty response.
func NewResponse() *Response {
	return &Response{}
}

// AddFact appends a fact with its evidence path.
func (r *Response) AddFact(statement string, evidencePath []int) {
	r.Facts = append(r.Facts, Fact{Statement: statement, EvidencePath: evidencePath})
}

// AddInference appends an inference, clamping confidence into [0,100].
func (r *Response) AddInference(statement string, confidence int, reasoning string) {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	r.Inferences = append(r.Inferences, Inference{
		Statement:  statement,
		Confidence: confidence,
		Reasoning:  reasoning,
	})
}

// AddUnknown appends an unknown with its explanation.
func (r *Response) AddUnknown(query, explanation string) {
	r.Unknowns = append(r.Unknowns, Unknown{Query: query, Explanation: explanation})
}

// IsEmpty reports whether no entries have been added in any category.
func (r *Response) IsEmpty() bool {
	return len(r.Facts) == 0 && len(r.Inferences) == 0 && len(r.Unknowns) == 0
}

// Merge appends all entries of other onto r, preserving order.
func (r *Response) Merge(other *Response) {
	if other == nil {
		return
	}
	r.Facts = append(r.Facts, other.Facts...)
	r.Inferences = append(r.Inferences, other.Inferences...)
	r.Unknowns = append(r.Unknowns, other.Unknowns...)
}

const sectionBorder = "+-------------------------------------+"

// Render formats the response as the standard three-section layout.
// The layout is fixed; callers must not depend on entry widths.
func (r *Response) Render() string {
	var b strings.Builder

	b.WriteString(sectionBorder + "\n")
	b.WriteString("| FACTS (Extracted from Core)        |\n")
	if len(r.Facts) == 0 {
		b.WriteString("| - (none)                           |\n")
	} else {
		for _, f := range r.Facts {
			fmt.Fprintf(&b, "| - %s\n", f)
		}
	}

	b.WriteString(sectionBorder + "\n")
	b.WriteString("| INFERENCES (Cortex deductions)     |\n")
	if len(r.Inferences) == 0 {
		b.WriteString("| - (none)                           |\n")
	} else {
		for _, inf := range r.Inferences {
			fmt.Fprintf(&b, "| - %s\n", inf)
		}
	}

	b.WriteString(sectionBorder + "\n")
	b.WriteString("| UNKNOWN (Core returned nothing)    |\n")
	if len(r.Unknowns) == 0 {
		b.WriteString("| - (none)                           |\n")
	} else {
		for _, u := range r.Unknowns {
			fmt.Fprintf(&b, "| - %s\n", u)
		}
	}

	b.WriteString(sectionBorder)
	return b.String()
}

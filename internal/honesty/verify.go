package honesty

import (
	"fmt"

	"github.com/M2Dr3g0n/kremis/internal/ground"
)

// Verifier classifies grounding results against hypotheses and records
// every cycle on its trail. Safe for concurrent use; the trail is the
// only shared state.
type Verifier struct {
	trail *Trail
}

// NewVerifier returns a verifier writing to the given trail.
func NewVerifier(trail *Trail) *Verifier {
	return &Verifier{trail: trail}
}

// Trail exposes the underlying audit trail.
func (v *Verifier) Trail() *Trail {
	return v.trail
}

// Verify classifies a hypothesis against a grounding result. A nil
// result means the Core produced nothing: the expected, correctly
// handled path, not an error. The priority is strict: absence beats
// everything, full verification beats partial evidence.
//
// outcome is what gets recorded as the raw Core response; pass nil to
// derive it from the result. Exactly one cycle is logged per call.
func (v *Verifier) Verify(hypothesis, queryType string, res *ground.Result, outcome Outcome) (Status, *Response) {
	resp := NewResponse()

	var status Status
	switch {
	case res == nil:
		resp.AddUnknown(hypothesis, "No supporting structure in graph")
		status = StatusUnverified
	case res.Verified:
		resp.AddFact(hypothesis, res.EvidencePath)
		status = StatusVerified
	default:
		resp.AddInference(
			hypothesis,
			res.Confidence,
			fmt.Sprintf("Partial evidence with %d%% confidence", res.Confidence),
		)
		status = StatusPartial
	}

	if outcome == nil {
		outcome = QueryOutcomeOf(res)
	}
	var path []int
	if res != nil {
		path = res.EvidencePath
	}
	v.trail.Log(hypothesis, queryType, outcome, status, path)

	return status, resp
}

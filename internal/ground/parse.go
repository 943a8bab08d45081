package ground

// QueryResponse is the wire shape of a Core /query reply.
// Unknown extra fields are ignored by the JSON decoder; missing fields
// keep their zero values, which default safely (found=false, empty path).
type QueryResponse struct {
	Success bool   `json:"success"`
	Found   bool   `json:"found"`
	Path    []int  `json:"path"`
	Edges   []Edge `json:"edges"`
	Error   string `json:"error"`
}

// ParseQueryResponse maps a successful Core query reply into a Result.
// Found with a non-empty path means fully grounded: confidence is fixed
// at 100 and the artifact carries the evidence. Anything else is an
// unverified result with zero confidence, still a Result and never nil.
// Absence (no reply at all) is the transport layer's to report.
func ParseQueryResponse(qr QueryResponse) *Result {
	found := qr.Found && len(qr.Path) > 0

	var artifact *Artifact
	if found {
		artifact = &Artifact{Path: qr.Path}
		if len(qr.Edges) > 0 {
			subgraph := make([]Edge, len(qr.Edges))
			copy(subgraph, qr.Edges)
			artifact.Subgraph = subgraph
		}
	}

	confidence := 0
	path := []int{}
	if found {
		confidence = 100
		path = qr.Path
	}

	return &Result{
		Artifact:     artifact,
		Confidence:   confidence,
		Verified:     found,
		EvidencePath: path,
	}
}

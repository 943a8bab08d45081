// Package honesty implements the verification discipline: claims are
// asserted as facts only when the Core confirms them, downgraded to
// inferences on partial evidence, and refused as unknowns otherwise.
// Every classification leaves exactly one cycle on the audit trail.
package honesty

// Status is the outcome of one hypothesis-verification cycle.
type Status string

const (
	StatusVerified   Status = "verified"
	StatusUnverified Status = "unverified"
	StatusPartial    Status = "partial"
)

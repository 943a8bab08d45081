package honesty

import (
	"sync"
	"time"
)

// Cycle is one hypothesis-verification cycle. Immutable once logged.
type Cycle struct {
	Timestamp    time.Time `json:"timestamp"`
	Hypothesis   string    `json:"hypothesis"`
	QueryType    string    `json:"query_type"`
	CoreResponse Outcome   `json:"core_response,omitempty"`
	Status       Status    `json:"status"`
	EvidencePath []int     `json:"evidence_path"`
}

// Summary holds derived statistics over a trail.
type Summary struct {
	Total            int     `json:"total"`
	Verified         int     `json:"verified"`
	Unverified       int     `json:"unverified"`
	Partial          int     `json:"partial"`
	VerificationRate float64 `json:"verification_rate"`
}

// Trail is an append-only in-memory log of verification cycles, safe
// for concurrent writers. It lives for the process and is never
// persisted; Clear resets it between sessions. The mutex is held only
// for in-memory work, never across a network call.
type Trail struct {
	mu     sync.Mutex
	cycles []Cycle
}

// NewTrail returns an empty trail. Construct one per process and
// inject it wherever classification happens.
func NewTrail() *Trail {
	return &Trail{}
}

// Log appends one cycle. evidencePath may be nil; it is stored as an
// empty path.
func (t *Trail) Log(hypothesis, queryType string, resp Outcome, status Status, evidencePath []int) {
	if evidencePath == nil {
		evidencePath = []int{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cycles = append(t.cycles, Cycle{
		Timestamp:    time.Now().UTC(),
		Hypothesis:   hypothesis,
		QueryType:    queryType,
		CoreResponse: resp,
		Status:       status,
		EvidencePath: evidencePath,
	})
}

// Summary computes counts and the verification rate under the lock.
// Rate is 0.0 for an empty trail.
func (t *Trail) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s Summary
	s.Total = len(t.cycles)
	for _, c := range t.cycles {
		switch c.Status {
		case StatusVerified:
			s.Verified++
		case StatusUnverified:
			s.Unverified++
		case StatusPartial:
			s.Partial++
		}
	}
	if s.Total > 0 {
		s.VerificationRate = float64(s.Verified) / float64(s.Total)
	}
	return s
}

// Cycles returns a snapshot copy of all logged cycles.
func (t *Trail) Cycles() []Cycle {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Cycle, len(t.cycles))
	copy(out, t.cycles)
	return out
}

// Clear empties the trail.
func (t *Trail) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cycles = nil
}

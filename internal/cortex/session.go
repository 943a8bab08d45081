package cortex

import (
	"context"
	"fmt"
	"io"

	"github.com/M2Dr3g0n/kremis/internal/honesty"
)

// Transport is the full client surface a session needs: queries plus
// lifecycle. *core.Client satisfies it directly.
type Transport interface {
	Querier
	Start(ctx context.Context) error
	Stop()
	BaseURL() string
}

// Session ties a transport, verifier, and dispatcher into one
// interactive lifecycle: connect, answer queries, summarize on close.
type Session struct {
	client     Transport
	trail      *honesty.Trail
	dispatcher *Dispatcher
	out        io.Writer
}

// NewSession builds a session around a started-or-not client. The
// trail is injected so the process owns exactly one.
func NewSession(client Transport, trail *honesty.Trail, out io.Writer) *Session {
	verifier := honesty.NewVerifier(trail)
	return &Session{
		client:     client,
		trail:      trail,
		dispatcher: NewDispatcher(client, verifier),
		out:        out,
	}
}

// Trail exposes the session's audit trail.
func (s *Session) Trail() *honesty.Trail { return s.trail }

// Dispatcher exposes the command dispatcher.
func (s *Session) Dispatcher() *Dispatcher { return s.dispatcher }

// Start probes the Core and prints the connection banner.
func (s *Session) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("connect to Core at %s: %w", s.client.BaseURL(), err)
	}

	if status, err := s.client.Status(ctx); err == nil {
		fmt.Fprintf(s.out, "Connected! Graph has %d nodes, %d edges\n",
			status.NodeCount, status.EdgeCount)
	}
	if stage, err := s.client.Stage(ctx); err == nil {
		fmt.Fprintf(s.out, "Developmental stage: %d - %s\n", stage.Stage, stage.Name)
	}
	return nil
}

// Query processes one command line.
func (s *Session) Query(ctx context.Context, line string) *honesty.Response {
	return s.dispatcher.Dispatch(ctx, line)
}

// Stop releases the transport and prints the session audit summary.
func (s *Session) Stop() {
	s.client.Stop()
	WriteSummary(s.out, s.trail.Summary())
}

// WriteSummary renders an audit summary in the session footer format.
func WriteSummary(w io.Writer, sum honesty.Summary) {
	fmt.Fprintf(w, "Total queries: %d\n", sum.Total)
	fmt.Fprintf(w, "Verified: %d\n", sum.Verified)
	fmt.Fprintf(w, "Unverified: %d\n", sum.Unverified)
	fmt.Fprintf(w, "Partial: %d\n", sum.Partial)
	if sum.Total > 0 {
		fmt.Fprintf(w, "Verification rate: %.1f%%\n", sum.VerificationRate*100)
	}
}

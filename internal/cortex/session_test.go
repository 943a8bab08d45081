package cortex

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/M2Dr3g0n/kremis/internal/core"
	"github.com/M2Dr3g0n/kremis/internal/honesty"
)

// fakeTransport adds lifecycle to fakeQuerier.
type fakeTransport struct {
	fakeQuerier
	startErr error
	started  bool
	stopped  bool
}

func (f *fakeTransport) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	return nil
}

func (f *fakeTransport) Stop()           { f.stopped = true }
func (f *fakeTransport) BaseURL() string { return "http://fake:8080" }

func TestSessionStartBanner(t *testing.T) {
	ft := &fakeTransport{
		fakeQuerier: fakeQuerier{
			status: &core.GraphStatus{NodeCount: 10, EdgeCount: 20, StableEdges: 5},
			stage:  &core.StageInfo{Stage: 2, Name: "Toddler", ProgressPercent: 40},
		},
	}
	var out bytes.Buffer
	s := NewSession(ft, honesty.NewTrail(), &out)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !ft.started {
		t.Error("session must start the transport")
	}

	banner := out.String()
	if !strings.Contains(banner, "Connected! Graph has 10 nodes, 20 edges") {
		t.Errorf("banner missing connection line: %q", banner)
	}
	if !strings.Contains(banner, "Developmental stage: 2 - Toddler") {
		t.Errorf("banner missing stage line: %q", banner)
	}
}

func TestSessionStartFailure(t *testing.T) {
	ft := &fakeTransport{startErr: &core.TransportError{Kind: core.FailureConnection}}
	var out bytes.Buffer
	s := NewSession(ft, honesty.NewTrail(), &out)

	err := s.Start(context.Background())
	if err == nil {
		t.Fatal("expected error from failed probe")
	}
	if !strings.Contains(err.Error(), "http://fake:8080") {
		t.Errorf("error should name the Core URL: %v", err)
	}
}

func TestSessionStartBannerSurvivesStatusFailure(t *testing.T) {
	// probe succeeds but status/stage fail: connect anyway, no banner
	ft := &fakeTransport{
		fakeQuerier: fakeQuerier{
			statusErr: &core.TransportError{Kind: core.FailureTimeout},
			stageErr:  &core.TransportError{Kind: core.FailureTimeout},
		},
	}
	var out bytes.Buffer
	s := NewSession(ft, honesty.NewTrail(), &out)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("no banner expected, got %q", out.String())
	}
}

func TestSessionQueryFeedsTrail(t *testing.T) {
	ft := &fakeTransport{fakeQuerier: fakeQuerier{lookupRes: verifiedResult(1, 2)}}
	trail := honesty.NewTrail()
	var out bytes.Buffer
	s := NewSession(ft, trail, &out)

	resp := s.Query(context.Background(), "lookup 1")
	if len(resp.Facts) != 1 {
		t.Fatalf("expected 1 fact, got %d", len(resp.Facts))
	}
	if trail.Summary().Verified != 1 {
		t.Errorf("trail: %+v", trail.Summary())
	}
}

func TestSessionStopSummary(t *testing.T) {
	ft := &fakeTransport{fakeQuerier: fakeQuerier{lookupRes: verifiedResult(1)}}
	trail := honesty.NewTrail()
	var out bytes.Buffer
	s := NewSession(ft, trail, &out)

	s.Query(context.Background(), "lookup 1")
	s.Query(context.Background(), "lookup 2")
	s.Stop()

	if !ft.stopped {
		t.Error("session must stop the transport")
	}
	footer := out.String()
	for _, want := range []string{
		"Total queries: 2",
		"Verified: 2",
		"Unverified: 0",
		"Partial: 0",
		"Verification rate: 100.0%",
	} {
		if !strings.Contains(footer, want) {
			t.Errorf("footer missing %q:\n%s", want, footer)
		}
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	var out bytes.Buffer
	WriteSummary(&out, honesty.Summary{})

	if strings.Contains(out.String(), "rate") {
		t.Errorf("empty summary must omit the rate line: %q", out.String())
	}
	if !strings.Contains(out.String(), "Total queries: 0") {
		t.Errorf("footer: %q", out.String())
	}
}

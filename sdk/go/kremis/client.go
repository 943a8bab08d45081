package kremis

import (
	"context"
	"errors"
	"fmt"

	"github.com/M2Dr3g0n/kremis/internal/core"
	"github.com/M2Dr3g0n/kremis/internal/ground"
	"github.com/M2Dr3g0n/kremis/internal/honesty"
)

// Client is the programmatic surface of the verification layer. Query
// methods return the grounding result or an absence/failure error;
// Verify methods additionally run the honesty classification and log
// an audit cycle. Safe for concurrent use.
type Client struct {
	c        *core.Client
	trail    *honesty.Trail
	verifier *honesty.Verifier
	limit    int
}

// New creates a Client with the given options. The zero configuration
// targets http://localhost:8080 with a 30s per-call timeout.
func New(opts ...Option) *Client {
	cfg := clientConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	trail := honesty.NewTrail()
	return &Client{
		c:        core.NewClient(cfg.baseURL, cfg.timeout),
		trail:    trail,
		verifier: honesty.NewVerifier(trail),
		limit:    cfg.maxConcurrent,
	}
}

// Start probes the Core. Query methods fail with a not-started error
// until it succeeds.
func (c *Client) Start(ctx context.Context) error {
	return c.c.Start(ctx)
}

// Stop releases the connection. Idempotent.
func (c *Client) Stop() {
	c.c.Stop()
}

// --- raw query surface ---

// Lookup checks whether an entity exists.
func (c *Client) Lookup(ctx context.Context, entityID int) (*GroundedResult, error) {
	r, err := c.c.Lookup(ctx, entityID)
	return toGroundedResult(r), err
}

// Traverse walks the graph from a node up to depth hops.
func (c *Client) Traverse(ctx context.Context, startNode, depth int) (*GroundedResult, error) {
	r, err := c.c.Traverse(ctx, startNode, depth)
	return toGroundedResult(r), err
}

// StrongestPath finds the strongest path between two nodes.
func (c *Client) StrongestPath(ctx context.Context, start, end int) (*GroundedResult, error) {
	r, err := c.c.StrongestPath(ctx, start, end)
	return toGroundedResult(r), err
}

// Intersect finds nodes connected to all input nodes.
func (c *Client) Intersect(ctx context.Context, nodes []int) (*GroundedResult, error) {
	r, err := c.c.Intersect(ctx, nodes)
	return toGroundedResult(r), err
}

// Related extracts the subgraph related to a node.
func (c *Client) Related(ctx context.Context, nodeID, depth int) (*GroundedResult, error) {
	r, err := c.c.Related(ctx, nodeID, depth)
	return toGroundedResult(r), err
}

// IngestSignal writes a signal and returns the created node id.
func (c *Client) IngestSignal(ctx context.Context, entityID int, attribute, value string) (int, error) {
	return c.c.IngestSignal(ctx, entityID, attribute, value)
}

// Status fetches graph counters.
func (c *Client) Status(ctx context.Context) (*GraphStatus, error) {
	gs, err := c.c.Status(ctx)
	return toGraphStatus(gs), err
}

// Stage fetches the developmental stage.
func (c *Client) Stage(ctx context.Context) (*StageInfo, error) {
	si, err := c.c.Stage(ctx)
	return toStageInfo(si), err
}

// --- verification surface ---

// verify funnels a query outcome through the classifier. Transport
// failures classify as absence; the audit cycle keeps the kind.
func (c *Client) verify(hypothesis, queryType string, res *ground.Result, err error) (Status, Response) {
	if err != nil {
		var te *core.TransportError
		if errors.As(err, &te) {
			outcome := honesty.FailureOutcome{Kind: core.KindOf(err), Detail: err.Error()}
			status, resp := c.verifier.Verify(hypothesis, queryType, nil, outcome)
			return Status(status), toResponse(resp)
		}
		// Validation failure: refuse without a cycle, nothing was asked.
		resp := honesty.NewResponse()
		resp.AddUnknown(hypothesis, err.Error())
		return Unverified, toResponse(resp)
	}
	status, resp := c.verifier.Verify(hypothesis, queryType, res, nil)
	return Status(status), toResponse(resp)
}

// VerifyEntity verifies that an entity exists in the graph.
func (c *Client) VerifyEntity(ctx context.Context, entityID int) (Status, Response) {
	res, err := c.c.Lookup(ctx, entityID)
	hypothesis := fmt.Sprintf("Entity %d exists in the graph", entityID)
	return c.verify(hypothesis, "lookup", res, err)
}

// VerifyConnectivity verifies that a node has connections within depth.
func (c *Client) VerifyConnectivity(ctx context.Context, nodeID, depth int) (Status, Response) {
	res, err := c.c.Traverse(ctx, nodeID, depth)
	hypothesis := fmt.Sprintf("Node %d has connections within depth %d", nodeID, depth)
	return c.verify(hypothesis, "traverse", res, err)
}

// VerifyPath verifies that a path exists between two nodes.
func (c *Client) VerifyPath(ctx context.Context, start, end int) (Status, Response) {
	res, err := c.c.StrongestPath(ctx, start, end)
	hypothesis := fmt.Sprintf("A path exists from %d to %d", start, end)
	return c.verify(hypothesis, "strongest_path", res, err)
}

// VerifyHypothesis classifies a caller-supplied hypothesis against an
// already obtained result. nil means the Core produced nothing.
func (c *Client) VerifyHypothesis(hypothesis string, res *GroundedResult) (Status, Response) {
	var gr *ground.Result
	if res != nil {
		gr = &ground.Result{
			Confidence:   res.Confidence,
			Verified:     res.Verified,
			EvidencePath: res.EvidencePath,
		}
	}
	status, resp := c.verifier.Verify(hypothesis, "verify", gr, nil)
	return Status(status), toResponse(resp)
}

// AuditSummary reports the running verification statistics.
func (c *Client) AuditSummary() AuditSummary {
	s := c.trail.Summary()
	return AuditSummary{
		Total:            s.Total,
		Verified:         s.Verified,
		Unverified:       s.Unverified,
		Partial:          s.Partial,
		VerificationRate: s.VerificationRate,
	}
}

// ClearAudit resets the audit trail, e.g. between sessions.
func (c *Client) ClearAudit() {
	c.trail.Clear()
}

// --- concurrent mode ---

// Concurrent returns a view of the client that issues calls without
// blocking the caller. Validation, parsing, and classification are
// shared with the blocking surface; only the suspension differs.
func (c *Client) Concurrent() *Concurrent {
	return &Concurrent{a: core.NewAsync(c.c, c.limit)}
}

// Concurrent issues Core queries from independent goroutines.
type Concurrent struct {
	a *core.Async
}

// Future delivers one concurrent query outcome.
type Future struct {
	inner *core.ResultFuture
}

// Wait blocks until the call completes.
func (f *Future) Wait() (*GroundedResult, error) {
	r, err := f.inner.Wait()
	return toGroundedResult(r), err
}

// Lookup issues a concurrent entity lookup.
func (cc *Concurrent) Lookup(ctx context.Context, entityID int) *Future {
	return &Future{inner: cc.a.Lookup(ctx, entityID)}
}

// Traverse issues a concurrent traversal.
func (cc *Concurrent) Traverse(ctx context.Context, startNode, depth int) *Future {
	return &Future{inner: cc.a.Traverse(ctx, startNode, depth)}
}

// StrongestPath issues a concurrent path query.
func (cc *Concurrent) StrongestPath(ctx context.Context, start, end int) *Future {
	return &Future{inner: cc.a.StrongestPath(ctx, start, end)}
}

// Intersect issues a concurrent intersection query.
func (cc *Concurrent) Intersect(ctx context.Context, nodes []int) *Future {
	return &Future{inner: cc.a.Intersect(ctx, nodes)}
}

// Related issues a concurrent related-subgraph query.
func (cc *Concurrent) Related(ctx context.Context, nodeID, depth int) *Future {
	return &Future{inner: cc.a.Related(ctx, nodeID, depth)}
}

// Wait blocks until every issued call has completed.
func (cc *Concurrent) Wait() {
	cc.a.Wait()
}

package core

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/M2Dr3g0n/kremis/internal/ground"
)

// Async issues Core queries concurrently. It wraps a Client and shares
// every piece of its validation, parsing, and failure mapping; only
// the suspension mechanism differs, so the two modes cannot drift.
// Each call runs in its own goroutine and delivers through a future;
// Wait blocks until all in-flight calls finish.
type Async struct {
	c *Client
	g *errgroup.Group
}

// NewAsync wraps a client for concurrent use. limit caps in-flight
// calls; zero or negative means unlimited.
func NewAsync(c *Client, limit int) *Async {
	g := &errgroup.Group{}
	if limit > 0 {
		g.SetLimit(limit)
	}
	return &Async{c: c, g: g}
}

// ResultFuture delivers one grounding query outcome.
type ResultFuture struct {
	done chan struct{}
	res  *ground.Result
	err  error
}

// Wait blocks until the call completes and returns its outcome.
func (f *ResultFuture) Wait() (*ground.Result, error) {
	<-f.done
	return f.res, f.err
}

// SignalFuture delivers one signal-ingest outcome.
type SignalFuture struct {
	done   chan struct{}
	nodeID int
	err    error
}

// Wait blocks until the call completes and returns its outcome.
func (f *SignalFuture) Wait() (int, error) {
	<-f.done
	return f.nodeID, f.err
}

func (a *Async) run(call func() (*ground.Result, error)) *ResultFuture {
	f := &ResultFuture{done: make(chan struct{})}
	a.g.Go(func() error {
		f.res, f.err = call()
		close(f.done)
		return nil
	})
	return f
}

// Lookup issues a concurrent entity lookup.
func (a *Async) Lookup(ctx context.Context, entityID int) *ResultFuture {
	return a.run(func() (*ground.Result, error) { return a.c.Lookup(ctx, entityID) })
}

// Traverse issues a concurrent traversal.
func (a *Async) Traverse(ctx context.Context, startNode, depth int) *ResultFuture {
	return a.run(func() (*ground.Result, error) { return a.c.Traverse(ctx, startNode, depth) })
}

// StrongestPath issues a concurrent path query.
func (a *Async) StrongestPath(ctx context.Context, start, end int) *ResultFuture {
	return a.run(func() (*ground.Result, error) { return a.c.StrongestPath(ctx, start, end) })
}

// Intersect issues a concurrent intersection query.
func (a *Async) Intersect(ctx context.Context, nodes []int) *ResultFuture {
	return a.run(func() (*ground.Result, error) { return a.c.Intersect(ctx, nodes) })
}

// Related issues a concurrent related-subgraph query.
func (a *Async) Related(ctx context.Context, nodeID, depth int) *ResultFuture {
	return a.run(func() (*ground.Result, error) { return a.c.Related(ctx, nodeID, depth) })
}

// IngestSignal issues a concurrent signal write.
func (a *Async) IngestSignal(ctx context.Context, entityID int, attribute, value string) *SignalFuture {
	f := &SignalFuture{done: make(chan struct{})}
	a.g.Go(func() error {
		f.nodeID, f.err = a.c.IngestSignal(ctx, entityID, attribute, value)
		close(f.done)
		return nil
	})
	return f
}

// Wait blocks until every issued call has completed.
func (a *Async) Wait() {
	_ = a.g.Wait()
}

package cli

import (
	"context"
	"sync"

	"github.com/M2Dr3g0n/kremis/internal/core"
	"github.com/M2Dr3g0n/kremis/internal/ground"
)

// switchableQuerier lets a long-lived REPL swap its transport on
// config reload without rebuilding the dispatcher. Reads take the
// read lock per call; Swap replaces the client and stops the old one.
type switchableQuerier struct {
	mu sync.RWMutex
	c  *core.Client
}

func newSwitchableQuerier(c *core.Client) *switchableQuerier {
	return &switchableQuerier{c: c}
}

func (s *switchableQuerier) current() *core.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c
}

// Swap installs a new client and releases the previous one.
func (s *switchableQuerier) Swap(c *core.Client) {
	s.mu.Lock()
	old := s.c
	s.c = c
	s.mu.Unlock()
	if old != nil {
		old.Stop()
	}
}

func (s *switchableQuerier) Start(ctx context.Context) error {
	return s.current().Start(ctx)
}

func (s *switchableQuerier) Stop() {
	s.current().Stop()
}

func (s *switchableQuerier) BaseURL() string {
	return s.current().BaseURL()
}

func (s *switchableQuerier) Lookup(ctx context.Context, entityID int) (*ground.Result, error) {
	return s.current().Lookup(ctx, entityID)
}

func (s *switchableQuerier) Traverse(ctx context.Context, startNode, depth int) (*ground.Result, error) {
	return s.current().Traverse(ctx, startNode, depth)
}

func (s *switchableQuerier) StrongestPath(ctx context.Context, start, end int) (*ground.Result, error) {
	return s.current().StrongestPath(ctx, start, end)
}

func (s *switchableQuerier) IngestSignal(ctx context.Context, entityID int, attribute, value string) (int, error) {
	return s.current().IngestSignal(ctx, entityID, attribute, value)
}

func (s *switchableQuerier) Status(ctx context.Context) (*core.GraphStatus, error) {
	return s.current().Status(ctx)
}

func (s *switchableQuerier) Stage(ctx context.Context) (*core.StageInfo, error) {
	return s.current().Stage(ctx)
}

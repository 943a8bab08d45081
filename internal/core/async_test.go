package core

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAsyncMatchesBlocking(t *testing.T) {
	srv := httptest.NewServer(newFakeCore().mux)
	defer srv.Close()
	c := startedClient(t, srv.URL)
	defer c.Stop()

	ctx := context.Background()
	blocking, err := c.Lookup(ctx, 1)
	if err != nil {
		t.Fatalf("blocking lookup: %v", err)
	}

	a := NewAsync(c, 4)
	concurrent, err := a.Lookup(ctx, 1).Wait()
	if err != nil {
		t.Fatalf("async lookup: %v", err)
	}

	if diff := cmp.Diff(blocking, concurrent); diff != "" {
		t.Errorf("modes must not drift (-blocking +async):\n%s", diff)
	}
}

func TestAsyncManyInFlight(t *testing.T) {
	srv := httptest.NewServer(newFakeCore().mux)
	defer srv.Close()
	c := startedClient(t, srv.URL)
	defer c.Stop()

	ctx := context.Background()
	a := NewAsync(c, 8)

	futures := make([]*ResultFuture, 0, 100)
	for i := 0; i < 100; i++ {
		id := 99 // not found
		if i%2 == 0 {
			id = 1 // found
		}
		futures = append(futures, a.Lookup(ctx, id))
	}

	found := 0
	for _, f := range futures {
		res, err := f.Wait()
		if err != nil {
			t.Fatalf("wait: %v", err)
		}
		if res.Verified {
			found++
		}
	}
	a.Wait()

	if found != 50 {
		t.Errorf("verified results: got %d, want 50", found)
	}
}

func TestAsyncValidationFailure(t *testing.T) {
	srv := httptest.NewServer(newFakeCore().mux)
	defer srv.Close()
	c := startedClient(t, srv.URL)
	defer c.Stop()

	f := NewAsync(c, 0).Traverse(context.Background(), 1, 999)
	if _, err := f.Wait(); err == nil {
		t.Error("expected validation error through the future")
	}
}

func TestAsyncIngest(t *testing.T) {
	srv := httptest.NewServer(newFakeCore().mux)
	defer srv.Close()
	c := startedClient(t, srv.URL)
	defer c.Stop()

	f := NewAsync(c, 0).IngestSignal(context.Background(), 1, "name", "Alice")
	nodeID, err := f.Wait()
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if nodeID != 42 {
		t.Errorf("node id: got %d, want 42", nodeID)
	}
}

func TestAsyncWaitReturnsPromptly(t *testing.T) {
	srv := httptest.NewServer(newFakeCore().mux)
	defer srv.Close()
	c := startedClient(t, srv.URL)
	defer c.Stop()

	a := NewAsync(c, 2)
	for i := 0; i < 10; i++ {
		a.Lookup(context.Background(), 1)
	}

	done := make(chan struct{})
	go func() {
		a.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return")
	}
}

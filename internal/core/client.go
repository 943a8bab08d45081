// Package core implements the query transport to the Kremis Core: a
// thin HTTP/JSON client with input validation, typed failures, and no
// business logic. Classification lives elsewhere; this package only
// returns parsed results or transport failures.
package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/M2Dr3g0n/kremis/internal/ground"
)

// DefaultBaseURL is the Core server address used when none is configured.
const DefaultBaseURL = "http://localhost:8080"

// DefaultTimeout bounds each individual call.
const DefaultTimeout = 30 * time.Second

// Client is the blocking transport to the Core. All query methods take
// a context and suspend the caller for the duration of the call; safe
// for concurrent use. Methods return ErrNotStarted until a Start probe
// has succeeded.
type Client struct {
	baseURL string
	timeout time.Duration
	hc      *http.Client

	mu    sync.Mutex
	ready bool
}

// NewClient creates a client for the given base URL. A zero timeout
// selects DefaultTimeout. The client is not usable until Start succeeds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if !strings.HasPrefix(baseURL, "https://") &&
		!strings.Contains(baseURL, "localhost") &&
		!strings.Contains(baseURL, "127.0.0.1") {
		fmt.Fprintf(os.Stderr, "warning: unencrypted HTTP connection to %s\n", baseURL)
	}

	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		hc:      &http.Client{},
	}
}

// BaseURL returns the configured Core address.
func (c *Client) BaseURL() string { return c.baseURL }

// Start probes the Core's /health endpoint. Any 2xx flips the client
// into the ready state; anything else leaves it unusable.
func (c *Client) Start(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &TransportError{Kind: FailureConnection, Err: err}
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return transportFailure(err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Kind: FailureHTTP, Status: resp.StatusCode}
	}

	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
	return nil
}

// Stop releases the underlying connections. Idempotent; always safe to
// call, including before Start.
func (c *Client) Stop() {
	c.mu.Lock()
	c.ready = false
	c.mu.Unlock()
	c.hc.CloseIdleConnections()
}

func (c *Client) started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Lookup checks whether an entity exists in the graph.
func (c *Client) Lookup(ctx context.Context, entityID int) (*ground.Result, error) {
	if err := validateNodeID(entityID); err != nil {
		return nil, err
	}
	return c.postQuery(ctx, map[string]any{
		"type":      "lookup",
		"entity_id": entityID,
	})
}

// Traverse walks the graph from a starting node up to depth hops.
func (c *Client) Traverse(ctx context.Context, startNode, depth int) (*ground.Result, error) {
	if err := validateNodeID(startNode); err != nil {
		return nil, err
	}
	if err := validateDepth(depth); err != nil {
		return nil, err
	}
	return c.postQuery(ctx, map[string]any{
		"type":    "traverse",
		"node_id": startNode,
		"depth":   depth,
	})
}

// StrongestPath finds the strongest path between two nodes.
func (c *Client) StrongestPath(ctx context.Context, start, end int) (*ground.Result, error) {
	if err := validateNodeID(start); err != nil {
		return nil, err
	}
	if err := validateNodeID(end); err != nil {
		return nil, err
	}
	return c.postQuery(ctx, map[string]any{
		"type":  "strongest_path",
		"start": start,
		"end":   end,
	})
}

// Intersect finds nodes connected to all input nodes. Programmatic
// surface only; the command grammar does not expose it.
func (c *Client) Intersect(ctx context.Context, nodes []int) (*ground.Result, error) {
	for _, n := range nodes {
		if err := validateNodeID(n); err != nil {
			return nil, err
		}
	}
	return c.postQuery(ctx, map[string]any{
		"type":  "intersect",
		"nodes": nodes,
	})
}

// Related extracts the subgraph related to a node. Programmatic
// surface only, like Intersect.
func (c *Client) Related(ctx context.Context, nodeID, depth int) (*ground.Result, error) {
	if err := validateNodeID(nodeID); err != nil {
		return nil, err
	}
	if err := validateDepth(depth); err != nil {
		return nil, err
	}
	return c.postQuery(ctx, map[string]any{
		"type":    "related",
		"node_id": nodeID,
		"depth":   depth,
	})
}

// IngestSignal writes an (entity, attribute, value) signal into the
// graph and returns the node id the Core created or found.
func (c *Client) IngestSignal(ctx context.Context, entityID int, attribute, value string) (int, error) {
	if err := validateSignal(entityID, attribute, value); err != nil {
		return 0, err
	}
	body, err := c.post(ctx, "/signal", map[string]any{
		"entity_id": entityID,
		"attribute": attribute,
		"value":     value,
	})
	if err != nil {
		return 0, err
	}

	var sr signalResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return 0, &TransportError{Kind: FailureMalformed, Err: err}
	}
	if !sr.Success {
		return 0, &TransportError{Kind: FailureCore, Err: errors.New(sr.Error)}
	}
	return sr.NodeID, nil
}

// Status fetches graph counters.
func (c *Client) Status(ctx context.Context) (*GraphStatus, error) {
	var gs GraphStatus
	if err := c.getJSON(ctx, "/status", &gs); err != nil {
		return nil, err
	}
	return &gs, nil
}

// Stage fetches the Core's developmental stage.
func (c *Client) Stage(ctx context.Context) (*StageInfo, error) {
	var si StageInfo
	if err := c.getJSON(ctx, "/stage", &si); err != nil {
		return nil, err
	}
	return &si, nil
}

// postQuery sends a /query request and parses the reply into a
// grounded result. A success=false reply is a Core-reported failure,
// distinct from "found nothing" (success=true, found=false).
func (c *Client) postQuery(ctx context.Context, payload map[string]any) (*ground.Result, error) {
	body, err := c.post(ctx, "/query", payload)
	if err != nil {
		return nil, err
	}

	var qr ground.QueryResponse
	if err := json.Unmarshal(body, &qr); err != nil {
		return nil, &TransportError{Kind: FailureMalformed, Err: err}
	}
	if !qr.Success {
		return nil, &TransportError{Kind: FailureCore, Err: errors.New(qr.Error)}
	}
	return ground.ParseQueryResponse(qr), nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload map[string]any) ([]byte, error) {
	if !c.started() {
		return nil, ErrNotStarted
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, &TransportError{Kind: FailureConnection, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.roundTrip(req)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	if !c.started() {
		return ErrNotStarted
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &TransportError{Kind: FailureConnection, Err: err}
	}

	body, err := c.roundTrip(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{Kind: FailureMalformed, Err: err}
	}
	return nil
}

func (c *Client) roundTrip(req *http.Request) ([]byte, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, transportFailure(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Kind: FailureConnection, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Kind: FailureHTTP, Status: resp.StatusCode}
	}
	return body, nil
}

// transportFailure maps a round-trip error to a typed failure,
// separating timeouts from connection problems.
func transportFailure(err error) *TransportError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Kind: FailureTimeout, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TransportError{Kind: FailureTimeout, Err: err}
	}
	return &TransportError{Kind: FailureConnection, Err: err}
}

// Package mcp exposes the verification layer as MCP tools, so agent
// callers get the same honesty guarantees as the command surface.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/M2Dr3g0n/kremis/internal/config"
	"github.com/M2Dr3g0n/kremis/internal/core"
	"github.com/M2Dr3g0n/kremis/internal/cortex"
	"github.com/M2Dr3g0n/kremis/internal/honesty"
)

// Server wraps the MCP SDK server around a verification session.
type Server struct {
	mcpServer  *mcpsdk.Server
	client     *core.Client
	trail      *honesty.Trail
	verifier   *honesty.Verifier
	dispatcher *cortex.Dispatcher
}

// New creates an MCP server connected to the Core described by cfg.
// The connectivity probe runs at startup; a dead Core is an error here
// rather than a stream of failed tool calls later.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	client := core.NewClient(cfg.CoreURL, cfg.Timeout)
	if err := client.Start(ctx); err != nil {
		return nil, fmt.Errorf("mcp: connect to Core at %s: %w", cfg.CoreURL, err)
	}

	trail := honesty.NewTrail()
	verifier := honesty.NewVerifier(trail)

	s := &Server{
		client:     client,
		trail:      trail,
		verifier:   verifier,
		dispatcher: cortex.NewDispatcher(client, verifier),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "kremis",
			Version: "0.1.0",
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run serves on stdio transport. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases the Core connection.
func (s *Server) Close() {
	s.client.Stop()
}

// registerTools adds all kremis tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "kremis_lookup",
		Description: "Verify that an entity exists in the graph. Returns facts only when the Core confirms an evidence path.",
	}, s.handleLookup)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "kremis_traverse",
		Description: "Verify that a node has connections within a traversal depth.",
	}, s.handleTraverse)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "kremis_path",
		Description: "Verify that a path exists between two nodes and return the strongest one.",
	}, s.handlePath)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "kremis_related",
		Description: "Verify that a node has a related subgraph within a depth. Not exposed on the command surface.",
	}, s.handleRelated)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "kremis_ingest",
		Description: "Ingest an (entity, attribute, value) signal into the graph.",
	}, s.handleIngest)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "kremis_status",
		Description: "Report graph node/edge counters.",
	}, s.handleStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "kremis_audit",
		Description: "Report the verification audit summary for this session.",
	}, s.handleAudit)
}

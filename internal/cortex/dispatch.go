// Package cortex drives the verification loop: it parses the fixed
// command grammar, queries the Core through the transport, and routes
// grounding results through the honesty classifier. It never fails
// hard: every input, however malformed, yields a response.
package cortex

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/M2Dr3g0n/kremis/internal/core"
	"github.com/M2Dr3g0n/kremis/internal/ground"
	"github.com/M2Dr3g0n/kremis/internal/honesty"
)

// DefaultDepth is used when a traverse command omits the depth argument.
const DefaultDepth = 3

// Querier is the transport surface the dispatcher needs. *core.Client
// satisfies it; tests substitute fakes.
type Querier interface {
	Lookup(ctx context.Context, entityID int) (*ground.Result, error)
	Traverse(ctx context.Context, startNode, depth int) (*ground.Result, error)
	StrongestPath(ctx context.Context, start, end int) (*ground.Result, error)
	IngestSignal(ctx context.Context, entityID int, attribute, value string) (int, error)
	Status(ctx context.Context) (*core.GraphStatus, error)
	Stage(ctx context.Context) (*core.StageInfo, error)
}

// Dispatcher routes parsed commands to the transport and classifier.
type Dispatcher struct {
	q        Querier
	verifier *honesty.Verifier
}

// NewDispatcher wires a transport and a verifier together.
func NewDispatcher(q Querier, verifier *honesty.Verifier) *Dispatcher {
	return &Dispatcher{q: q, verifier: verifier}
}

// Dispatch processes one command line and returns the honest response.
// Grammar (first token case-insensitive):
//
//	lookup <id>
//	traverse <id> [depth]
//	path <start> <end>
//	ingest <id> <attr> <value...>
//	status
//	stage
//
// Anything else yields a single-Unknown response.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) *honesty.Response {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		resp := honesty.NewResponse()
		resp.AddUnknown("Empty query", "No query provided")
		return resp
	}

	command := strings.ToLower(parts[0])
	switch {
	case command == "lookup" && len(parts) >= 2:
		return d.handleLookup(ctx, parts[1])
	case command == "traverse" && len(parts) >= 2:
		depth := DefaultDepth
		if len(parts) >= 3 {
			var err error
			depth, err = strconv.Atoi(parts[2])
			if err != nil {
				resp := honesty.NewResponse()
				resp.AddUnknown(line, "Invalid depth value")
				return resp
			}
		}
		return d.handleTraverse(ctx, parts[1], depth)
	case command == "path" && len(parts) >= 3:
		return d.handlePath(ctx, parts[1], parts[2])
	case command == "ingest" && len(parts) >= 4:
		return d.handleIngest(ctx, parts[1], parts[2], strings.Join(parts[3:], " "))
	case command == "status":
		return d.handleStatus(ctx)
	case command == "stage":
		return d.handleStage(ctx)
	default:
		resp := honesty.NewResponse()
		resp.AddUnknown(line, "Unknown command or invalid syntax")
		return resp
	}
}

// classify funnels a transport outcome through the verifier. Transport
// failures classify like absence; the audit cycle keeps the failure
// kind. Validation failures never reached the wire and yield an
// Unknown without an audit cycle.
func (d *Dispatcher) classify(hypothesis, queryType string, res *ground.Result, err error) *honesty.Response {
	if err != nil {
		var te *core.TransportError
		if !errors.As(err, &te) {
			resp := honesty.NewResponse()
			resp.AddUnknown(hypothesis, err.Error())
			return resp
		}
		outcome := honesty.FailureOutcome{Kind: core.KindOf(err), Detail: err.Error()}
		_, resp := d.verifier.Verify(hypothesis, queryType, nil, outcome)
		return resp
	}
	_, resp := d.verifier.Verify(hypothesis, queryType, res, nil)
	return resp
}

func (d *Dispatcher) handleLookup(ctx context.Context, idStr string) *honesty.Response {
	entityID, err := strconv.Atoi(idStr)
	if err != nil {
		resp := honesty.NewResponse()
		resp.AddUnknown("lookup "+idStr, "Invalid entity ID")
		return resp
	}

	res, qerr := d.q.Lookup(ctx, entityID)
	hypothesis := fmt.Sprintf("Entity %d exists in the graph", entityID)
	return d.classify(hypothesis, "lookup", res, qerr)
}

func (d *Dispatcher) handleTraverse(ctx context.Context, startStr string, depth int) *honesty.Response {
	startNode, err := strconv.Atoi(startStr)
	if err != nil {
		resp := honesty.NewResponse()
		resp.AddUnknown("traverse "+startStr, "Invalid node ID")
		return resp
	}

	res, qerr := d.q.Traverse(ctx, startNode, depth)
	hypothesis := fmt.Sprintf("Node %d has connections within depth %d", startNode, depth)
	return d.classify(hypothesis, "traverse", res, qerr)
}

func (d *Dispatcher) handlePath(ctx context.Context, startStr, endStr string) *honesty.Response {
	start, err1 := strconv.Atoi(startStr)
	end, err2 := strconv.Atoi(endStr)
	if err1 != nil || err2 != nil {
		resp := honesty.NewResponse()
		resp.AddUnknown(fmt.Sprintf("path %s %s", startStr, endStr), "Invalid node IDs")
		return resp
	}

	res, qerr := d.q.StrongestPath(ctx, start, end)
	hypothesis := fmt.Sprintf("A path exists from %d to %d", start, end)
	return d.classify(hypothesis, "strongest_path", res, qerr)
}

// handleIngest performs a direct state mutation: no hypothesis to
// verify, so it builds a Fact or Unknown without the classifier.
func (d *Dispatcher) handleIngest(ctx context.Context, idStr, attribute, value string) *honesty.Response {
	resp := honesty.NewResponse()

	entityID, err := strconv.Atoi(idStr)
	if err != nil {
		resp.AddUnknown("ingest "+idStr, "Invalid entity ID")
		return resp
	}

	value = stripQuotes(value)

	nodeID, err := d.q.IngestSignal(ctx, entityID, attribute, value)
	if err != nil {
		resp.AddUnknown(fmt.Sprintf("ingest %d %s", entityID, attribute), "Failed to ingest signal")
		return resp
	}

	resp.AddFact(
		fmt.Sprintf("Signal ingested: entity=%d, attr=%s, value=%s", entityID, attribute, value),
		[]int{nodeID},
	)
	return resp
}

func (d *Dispatcher) handleStatus(ctx context.Context) *honesty.Response {
	resp := honesty.NewResponse()

	status, err := d.q.Status(ctx)
	if err != nil || status == nil {
		resp.AddUnknown("status", "Could not retrieve status")
		return resp
	}

	resp.AddFact(
		fmt.Sprintf("Graph: %d nodes, %d edges, %d stable",
			status.NodeCount, status.EdgeCount, status.StableEdges),
		nil,
	)
	return resp
}

func (d *Dispatcher) handleStage(ctx context.Context) *honesty.Response {
	resp := honesty.NewResponse()

	stage, err := d.q.Stage(ctx)
	if err != nil || stage == nil {
		resp.AddUnknown("stage", "Could not retrieve stage")
		return resp
	}

	resp.AddFact(
		fmt.Sprintf("Stage %d: %s (%d%% to next)",
			stage.Stage, stage.Name, stage.ProgressPercent),
		nil,
	)
	return resp
}

// stripQuotes removes one layer of surrounding quote characters.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

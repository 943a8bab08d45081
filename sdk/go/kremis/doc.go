// Package kremis is the embeddable client for the Kremis honesty
// verification layer.
//
// It connects to a Kremis Core over HTTP and verifies hypotheses
// against the graph, reporting each as a fact (Core-confirmed), an
// inference (partial evidence), or an unknown (no evidence). Expected
// "not found" outcomes are values, never errors.
//
// Basic usage:
//
//	c := kremis.New(kremis.WithBaseURL("http://localhost:8080"))
//	if err := c.Start(ctx); err != nil {
//		// Core unreachable
//	}
//	defer c.Stop()
//
//	status, resp := c.VerifyEntity(ctx, 42)
//	fmt.Println(status, resp.Rendered)
//
// Every verification appends one cycle to the client's audit trail;
// AuditSummary reports the running counts.
package kremis

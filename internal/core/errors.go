package core

import (
	"errors"
	"fmt"
)

// FailureKind names a transport-level failure class.
type FailureKind string

const (
	FailureConnection FailureKind = "connection_failed"
	FailureTimeout    FailureKind = "timeout"
	FailureHTTP       FailureKind = "http_error"
	FailureMalformed  FailureKind = "malformed_response"
	FailureNotStarted FailureKind = "not_started"
	FailureCore       FailureKind = "core_error"
)

// TransportError is a typed transport failure. It is the only error
// shape query methods return for network-boundary problems; callers
// treat it as absence for classification and keep the kind for audit.
type TransportError struct {
	Kind   FailureKind
	Status int // HTTP status, set for FailureHTTP
	Err    error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case FailureHTTP:
		return fmt.Sprintf("core: HTTP %d", e.Status)
	case FailureNotStarted:
		return "core: client not started"
	default:
		if e.Err != nil {
			return fmt.Sprintf("core: %s: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("core: %s", e.Kind)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrNotStarted is returned by every query method before a successful
// Start probe.
var ErrNotStarted = &TransportError{Kind: FailureNotStarted}

// KindOf extracts the failure kind from an error, or "error" for
// non-transport errors (validation failures and the like).
func KindOf(err error) string {
	var te *TransportError
	if errors.As(err, &te) {
		return string(te.Kind)
	}
	return "error"
}

package bootstrap

import (
	"fmt"
	"time"
)

// TimeoutError reports that a node's readiness marker did not appear within
// the configured ceiling. Fatal for that node.
type TimeoutError struct {
	Node   string
	Marker string
	Waited time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("bootstrap timeout on %s: %s did not appear within %s", e.Node, e.Marker, e.Waited)
}

// TokenUnavailableError reports that the join token could not be read or
// was empty. Fatal for the whole run: without it no worker can join.
type TokenUnavailableError struct {
	Node  string
	Cause error
}

func (e *TokenUnavailableError) Error() string {
	return fmt.Sprintf("join token unavailable on %s: %v", e.Node, e.Cause)
}

func (e *TokenUnavailableError) Unwrap() error {
	return e.Cause
}

// WorkerJoinError reports a single worker's failed install sequence.
// Recorded and surfaced, but never aborts the other workers.
type WorkerJoinError struct {
	Node  string
	Cause error
}

func (e *WorkerJoinError) Error() string {
	return fmt.Sprintf("worker %s failed to join: %v", e.Node, e.Cause)
}

func (e *WorkerJoinError) Unwrap() error {
	return e.Cause
}

// CredentialError reports that the admin kubeconfig could not be produced.
// Fatal for the run's goal even when the cluster itself came up.
type CredentialError struct {
	Cause error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential extraction failed: %v", e.Cause)
}

func (e *CredentialError) Unwrap() error {
	return e.Cause
}

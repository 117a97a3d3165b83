package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hkn/rke2up/internal/retry"
)

// Token is the cluster join secret. It lives only in process memory and in
// the stdin stream of the worker configuration write; every textual
// rendering is redacted so it cannot leak through logs or %v formatting.
type Token struct {
	value string
}

// NewToken wraps a join secret.
func NewToken(value string) Token {
	return Token{value: value}
}

// Value returns the secret for use in remote configuration.
func (t Token) Value() string {
	return t.value
}

// Empty reports whether no secret is held.
func (t Token) Empty() bool {
	return t.value == ""
}

func (t Token) String() string {
	return "[redacted]"
}

func (t Token) GoString() string {
	return `bootstrap.Token{"[redacted]"}`
}

// MarshalText keeps the token out of any serialized report.
func (t Token) MarshalText() ([]byte, error) {
	return []byte("[redacted]"), nil
}

// retrieveToken reads the join secret from the primary master. It runs only
// after that master's readiness marker appeared, so failures here are
// transient channel problems and get a small bounded retry. An empty read
// fails closed: an empty token would let workers "join" a misconfigured
// cluster unauthenticated.
func (o *Orchestrator) retrieveToken(ctx context.Context) (Token, error) {
	primary := o.inventory.PrimaryMaster()

	exec, err := o.factory(primary)
	if err != nil {
		return Token{}, &TokenUnavailableError{Node: primary.Name, Cause: err}
	}

	var token string
	err = retry.Do(ctx, func() error {
		out, execErr := exec.Execute(ctx, readTokenCommand)
		if execErr != nil {
			return execErr
		}
		out = strings.TrimSpace(out)
		if out == "" {
			return fmt.Errorf("token file %s is empty", tokenPath)
		}
		token = out
		return nil
	},
		retry.WithMaxRetries(o.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(o.timeouts.RetryInitialDelay),
		retry.WithNotify(func(attempt int, err error, delay time.Duration) {
			o.log.Warn("join token read failed, backing off",
				zap.String("node", primary.Name),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", delay),
				zap.Error(err))
		}),
	)
	if err != nil {
		return Token{}, &TokenUnavailableError{Node: primary.Name, Cause: err}
	}

	o.log.Info("join token retrieved", zap.String("node", primary.Name))
	return NewToken(token), nil
}

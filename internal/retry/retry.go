// Package retry provides exponential backoff retry logic for transient
// failures, used for SSH dials and remote reads that may fail while a node
// is still coming up.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Notify is called before each backoff sleep with the attempt number that
// just failed (1-based), its error, and the delay about to be waited.
// Callers use it to surface retry progress in their own logs.
type Notify func(attempt int, err error, delay time.Duration)

type options struct {
	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration
	multiplier   float64
	notify       Notify
}

// Option customizes a Do call.
type Option func(*options)

// Do runs operation until it succeeds, retrying transient failures with
// exponentially increasing delays. MaxRetries counts retries after the
// first attempt, so the operation runs at most MaxRetries+1 times. Errors
// marked with Fatal stop immediately; context cancellation is honored
// between attempts and during backoff sleeps.
func Do(ctx context.Context, operation func() error, opts ...Option) error {
	o := options{
		maxRetries:   5,
		initialDelay: 1 * time.Second,
		maxDelay:     30 * time.Second,
		multiplier:   2.0,
	}
	for _, opt := range opts {
		opt(&o)
	}

	attempts := o.maxRetries + 1
	delay := o.initialDelay
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled after %d attempts: %w", attempt-1, err)
		}

		lastErr = operation()
		if lastErr == nil {
			return nil
		}
		if IsFatal(lastErr) {
			return fmt.Errorf("fatal error (not retrying): %w", lastErr)
		}
		if attempt == attempts {
			break
		}

		if o.notify != nil {
			o.notify(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("context cancelled after %d attempts: %w", attempt, ctx.Err())
		case <-timer.C:
		}

		delay = min(time.Duration(float64(delay)*o.multiplier), o.maxDelay)
	}

	return fmt.Errorf("operation failed after %d attempts: %w", attempts, lastErr)
}

// WithMaxRetries sets how many retries follow the first attempt.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		o.maxRetries = n
	}
}

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) Option {
	return func(o *options) {
		o.initialDelay = d
	}
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(o *options) {
		o.maxDelay = d
	}
}

// WithMultiplier sets the backoff growth factor.
func WithMultiplier(m float64) Option {
	return func(o *options) {
		o.multiplier = m
	}
}

// WithNotify registers a callback invoked before each backoff sleep.
func WithNotify(fn Notify) Option {
	return func(o *options) {
		o.notify = fn
	}
}

// FatalError wraps an error to mark it as non-retryable.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as fatal (non-retryable).
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err was marked with Fatal.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

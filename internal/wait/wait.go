// Package wait provides a bounded poll-until-true primitive for remote
// conditions, such as a bootstrap marker file appearing on a host.
package wait

import (
	"context"
	"fmt"
	"time"
)

// ErrCeilingReached is wrapped into the error returned by For when the
// condition did not become true within the configured ceiling.
var ErrCeilingReached = fmt.Errorf("wait ceiling reached")

// Condition is polled periodically. Returning true stops the poll with
// success. Returning an error stops the poll immediately; transient probe
// failures should be swallowed by the condition itself.
type Condition func(ctx context.Context) (bool, error)

// For polls cond every interval until it returns true, the ceiling elapses,
// or the context is cancelled. The condition is checked once immediately
// before the first tick.
func For(ctx context.Context, interval, ceiling time.Duration, cond Condition) error {
	ctx, cancel := context.WithTimeout(ctx, ceiling)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ok, err := cond(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return fmt.Errorf("%w after %s", ErrCeilingReached, ceiling)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

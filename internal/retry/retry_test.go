package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	t.Parallel()

	t.Run("succeeds on first attempt", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		err := Do(context.Background(), func() error {
			attempts++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		err := Do(context.Background(), func() error {
			attempts++
			if attempts < 3 {
				return errors.New("temporary error")
			}
			return nil
		}, WithInitialDelay(time.Millisecond))
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		err := Do(context.Background(), func() error {
			attempts++
			return errors.New("persistent error")
		}, WithMaxRetries(3), WithInitialDelay(time.Millisecond))
		require.Error(t, err)
		// MaxRetries counts retries after the first attempt.
		assert.Equal(t, 4, attempts)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Do(ctx, func() error {
			return errors.New("error")
		}, WithInitialDelay(time.Millisecond))
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("notifies before each backoff sleep", func(t *testing.T) {
		t.Parallel()
		var notified []int
		var delays []time.Duration
		err := Do(context.Background(), func() error {
			return errors.New("still failing")
		},
			WithMaxRetries(2),
			WithInitialDelay(time.Millisecond),
			WithMultiplier(2.0),
			WithNotify(func(attempt int, err error, delay time.Duration) {
				assert.EqualError(t, err, "still failing")
				notified = append(notified, attempt)
				delays = append(delays, delay)
			}),
		)
		require.Error(t, err)
		// No notification after the final attempt: there is no sleep left.
		assert.Equal(t, []int{1, 2}, notified)
		assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond}, delays)
	})

	t.Run("caps the backoff delay", func(t *testing.T) {
		t.Parallel()
		var delays []time.Duration
		_ = Do(context.Background(), func() error {
			return errors.New("down")
		},
			WithMaxRetries(3),
			WithInitialDelay(2*time.Millisecond),
			WithMaxDelay(3*time.Millisecond),
			WithNotify(func(_ int, _ error, delay time.Duration) {
				delays = append(delays, delay)
			}),
		)
		assert.Equal(t, []time.Duration{2 * time.Millisecond, 3 * time.Millisecond, 3 * time.Millisecond}, delays)
	})

	t.Run("does not retry fatal errors", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		cause := errors.New("bad credentials")
		err := Do(context.Background(), func() error {
			attempts++
			return Fatal(cause)
		}, WithInitialDelay(time.Millisecond))
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 1, attempts)
	})
}

func TestFatal(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Fatal(nil))
	assert.True(t, IsFatal(Fatal(errors.New("x"))))
	assert.False(t, IsFatal(errors.New("x")))
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadTimeouts(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		ts := LoadTimeouts()
		assert.Equal(t, 10*time.Minute, ts.Bootstrap)
		assert.Equal(t, 5*time.Second, ts.PollInterval)
		assert.Equal(t, 10*time.Second, ts.SSHDial)
		assert.Equal(t, 3, ts.RetryMaxAttempts)
		assert.Equal(t, 2*time.Second, ts.RetryInitialDelay)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("RKE2UP_TIMEOUT_BOOTSTRAP", "90s")
		t.Setenv("RKE2UP_RETRY_MAX_ATTEMPTS", "7")
		ts := LoadTimeouts()
		assert.Equal(t, 90*time.Second, ts.Bootstrap)
		assert.Equal(t, 7, ts.RetryMaxAttempts)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		t.Setenv("RKE2UP_POLL_INTERVAL", "soon")
		t.Setenv("RKE2UP_RETRY_MAX_ATTEMPTS", "many")
		ts := LoadTimeouts()
		assert.Equal(t, 5*time.Second, ts.PollInterval)
		assert.Equal(t, 3, ts.RetryMaxAttempts)
	})
}

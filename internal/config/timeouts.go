package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timing values.
// These values can be customized via environment variables.
type Timeouts struct {
	Bootstrap         time.Duration // Ceiling for the per-master readiness wait
	PollInterval      time.Duration // Interval between readiness marker checks
	SSHDial           time.Duration // Timeout for establishing an SSH connection
	RetryMaxAttempts  int           // Maximum number of transient retry attempts
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timing configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - RKE2UP_TIMEOUT_BOOTSTRAP (default: 10m)
//   - RKE2UP_POLL_INTERVAL (default: 5s)
//   - RKE2UP_TIMEOUT_SSH_DIAL (default: 10s)
//   - RKE2UP_RETRY_MAX_ATTEMPTS (default: 3)
//   - RKE2UP_RETRY_INITIAL_DELAY (default: 2s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Bootstrap:         parseDuration("RKE2UP_TIMEOUT_BOOTSTRAP", 10*time.Minute),
		PollInterval:      parseDuration("RKE2UP_POLL_INTERVAL", 5*time.Second),
		SSHDial:           parseDuration("RKE2UP_TIMEOUT_SSH_DIAL", 10*time.Second),
		RetryMaxAttempts:  parseInt("RKE2UP_RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay: parseDuration("RKE2UP_RETRY_INITIAL_DELAY", 2*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return n
}

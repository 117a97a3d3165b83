// Package ssh executes commands on remote hosts over SSH with key-based
// authentication. It handles connection establishment with retry logic and
// exposes command failures as typed errors carrying host, command, exit
// status, and captured output.
//
// Security: host key verification is disabled by default, matching the
// lab-style topologies this tool targets. Provide a HostKeyCallback for
// environments with persistent, known hosts.
package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/hkn/rke2up/internal/retry"
)

const (
	defaultPort        = 22
	defaultDialTimeout = 10 * time.Second
	defaultMaxRetries  = 5
	defaultRetryDelay  = 2 * time.Second
	defaultMaxDelay    = 10 * time.Second
)

// Config holds SSH client configuration.
type Config struct {
	Host       string
	Port       int
	User       string
	PrivateKey []byte

	// DialTimeout is the timeout for establishing the TCP connection.
	// If zero, defaultDialTimeout is used.
	DialTimeout time.Duration

	// MaxRetries is the maximum number of connection retry attempts.
	// If zero, defaultMaxRetries is used.
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts.
	// If zero, defaultRetryDelay is used.
	RetryDelay time.Duration

	// HostKeyCallback handles host key verification.
	// If nil, ssh.InsecureIgnoreHostKey() is used.
	HostKeyCallback ssh.HostKeyCallback
}

// CommandError describes a remote command that could not be run or exited
// non-zero. Callers must not embed secrets in the command text; secret
// material travels over stdin.
type CommandError struct {
	Host     string
	Command  string
	ExitCode int
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed on %s (exit %d): %s\nCommand: %s\nOutput: %s",
		e.Host, e.ExitCode, e.Err, e.Command, e.Output)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Client executes commands on a remote server via SSH. It parses the
// private key once during construction and dials on demand per call.
type Client struct {
	config *Config
	signer ssh.Signer
}

// NewClient creates a new SSH client and validates the private key.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("config host cannot be empty")
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("config user cannot be empty")
	}
	if len(cfg.PrivateKey) == 0 {
		return nil, fmt.Errorf("config private key cannot be empty")
	}

	// Copy config to avoid mutating caller's struct
	configCopy := *cfg

	if configCopy.Port == 0 {
		configCopy.Port = defaultPort
	}
	if configCopy.DialTimeout == 0 {
		configCopy.DialTimeout = defaultDialTimeout
	}
	if configCopy.MaxRetries == 0 {
		configCopy.MaxRetries = defaultMaxRetries
	}
	if configCopy.RetryDelay == 0 {
		configCopy.RetryDelay = defaultRetryDelay
	}
	if configCopy.HostKeyCallback == nil {
		configCopy.HostKeyCallback = ssh.InsecureIgnoreHostKey() //nolint:gosec // Default for lab topologies
	}

	signer, err := ssh.ParsePrivateKey(configCopy.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &Client{
		config: &configCopy,
		signer: signer,
	}, nil
}

// Host returns the remote address this client dials.
func (c *Client) Host() string {
	return c.config.Host
}

// Execute runs a command on the remote host and returns its combined output.
func (c *Client) Execute(ctx context.Context, command string) (string, error) {
	return c.execute(ctx, command, nil)
}

// ExecuteWithInput runs a command with stdin attached. Used to deliver
// secret material without placing it in the command text.
func (c *Client) ExecuteWithInput(ctx context.Context, command string, stdin io.Reader) (string, error) {
	return c.execute(ctx, command, stdin)
}

func (c *Client) execute(ctx context.Context, command string, stdin io.Reader) (string, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = client.Close() }()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to create SSH session on %s: %w", c.config.Host, err)
	}
	defer func() { _ = session.Close() }()

	if stdin != nil {
		session.Stdin = stdin
	}

	output, err := session.CombinedOutput(command)
	if err != nil {
		return string(output), &CommandError{
			Host:     c.config.Host,
			Command:  command,
			ExitCode: exitCode(err),
			Output:   string(output),
			Err:      err,
		}
	}

	return string(output), nil
}

// connect establishes the SSH connection with retry logic. Nodes that were
// just rebooted by the installer can briefly refuse connections.
func (c *Client) connect(ctx context.Context) (*ssh.Client, error) {
	config := &ssh.ClientConfig{
		User: c.config.User,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(c.signer),
		},
		HostKeyCallback: c.config.HostKeyCallback,
		Timeout:         c.config.DialTimeout,
	}

	addr := fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)
	var client *ssh.Client

	err := retry.Do(ctx, func() error {
		var dialErr error
		client, dialErr = ssh.Dial("tcp", addr, config)
		return dialErr
	},
		retry.WithMaxRetries(c.config.MaxRetries),
		retry.WithInitialDelay(c.config.RetryDelay),
		retry.WithMaxDelay(defaultMaxDelay),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to establish SSH connection to %s: %w", addr, err)
	}

	return client, nil
}

// exitCode extracts the remote exit status, or -1 when the command never
// ran to completion (channel failure, signal).
func exitCode(err error) int {
	var exitErr *ssh.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitStatus()
	}
	return -1
}

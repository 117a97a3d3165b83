package bootstrap

import (
	"context"
	"io"

	"github.com/hkn/rke2up/internal/config"
	"github.com/hkn/rke2up/internal/ssh"
)

// Executor runs shell commands on a single remote host. It is the only
// capability the orchestrator needs from the transport layer, which keeps
// the stage logic testable with fakes.
type Executor interface {
	Execute(ctx context.Context, command string) (string, error)
	// ExecuteWithInput attaches stdin to the remote command. Secret material
	// is delivered this way so it never appears in command text.
	ExecuteWithInput(ctx context.Context, command string, stdin io.Reader) (string, error)
}

// ExecutorFactory opens a command channel to one node.
type ExecutorFactory func(node config.Node) (Executor, error)

// SSHExecutorFactory returns a factory producing SSH-backed executors that
// share one read-only private key.
func SSHExecutorFactory(privateKey []byte, timeouts *config.Timeouts) ExecutorFactory {
	return func(node config.Node) (Executor, error) {
		return ssh.NewClient(&ssh.Config{
			Host:        node.Address,
			User:        node.User,
			PrivateKey:  privateKey,
			DialTimeout: timeouts.SSHDial,
			MaxRetries:  timeouts.RetryMaxAttempts,
			RetryDelay:  timeouts.RetryInitialDelay,
		})
	}
}

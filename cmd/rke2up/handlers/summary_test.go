package handlers

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hkn/rke2up/internal/bootstrap"
	"github.com/hkn/rke2up/internal/config"
	"github.com/hkn/rke2up/internal/ssh"
)

func TestErrorKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "timeout",
			err:  &bootstrap.TimeoutError{Node: "master-1", Marker: "/var/lib/rancher/rke2/server/node-token", Waited: time.Minute},
			want: "bootstrap timeout",
		},
		{
			name: "token unavailable",
			err:  &bootstrap.TokenUnavailableError{Node: "master-1", Cause: errors.New("empty")},
			want: "token unavailable",
		},
		{
			name: "worker join",
			err:  &bootstrap.WorkerJoinError{Node: "worker-1", Cause: errors.New("ssh refused")},
			want: "worker join failure",
		},
		{
			name: "credential extraction",
			err:  &bootstrap.CredentialError{Cause: errors.New("empty kubeconfig")},
			want: "credential extraction failure",
		},
		{
			name: "remote execution",
			err:  &ssh.CommandError{Host: "10.0.0.1", Command: "echo ok", ExitCode: 1, Err: errors.New("exit 1")},
			want: "remote execution failure",
		},
		{
			name: "wrapped still classified",
			err:  fmt.Errorf("run failed: %w", &bootstrap.WorkerJoinError{Node: "worker-2", Cause: errors.New("nope")}),
			want: "worker join failure",
		},
		{
			name: "unknown",
			err:  errors.New("something else"),
			want: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errorKind(tt.err))
		})
	}
}

func TestNodeResultLine(t *testing.T) {
	t.Parallel()

	node := config.Node{Name: "worker-1", Address: "10.0.0.2", Role: config.RoleWorker}

	t.Run("success carries name and address", func(t *testing.T) {
		t.Parallel()
		line := nodeResultLine("worker", bootstrap.StageResult{Node: node, Duration: 1500 * time.Millisecond})
		assert.Contains(t, line, "worker-1")
		assert.Contains(t, line, "10.0.0.2")
		assert.Contains(t, line, "ready in 1.5s")
	})

	t.Run("failure carries name, address, and error kind", func(t *testing.T) {
		t.Parallel()
		res := bootstrap.StageResult{
			Node: node,
			Err:  &bootstrap.WorkerJoinError{Node: "worker-1", Cause: errors.New("ssh refused")},
		}
		line := nodeResultLine("worker", res)
		assert.Contains(t, line, "worker-1")
		assert.Contains(t, line, "10.0.0.2")
		assert.Contains(t, line, "worker join failure")
	})
}

func TestPrintSummary_NilReportIsNoop(t *testing.T) {
	t.Parallel()

	// Must not panic when the run failed before a report existed.
	printSummary(nil, errors.New("boom"))
}

package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hkn/rke2up/internal/config"
)

// installWorkers drives the agent bootstrap on every worker, injecting the
// primary master's supervisory endpoint and the join token. A failing
// worker never blocks the others; its error is wrapped as WorkerJoinError
// in the stage results. Whether the agent finishes registering with the
// control plane is not verified here; registration is asynchronous.
func (o *Orchestrator) installWorkers(ctx context.Context, token Token) []StageResult {
	primary := o.inventory.PrimaryMaster()
	server := fmt.Sprintf("https://%s:%d", primary.Address, supervisorPort)

	return o.forEachNode(ctx, o.inventory.Workers(), func(ctx context.Context, node config.Node) error {
		if err := o.installWorker(ctx, node, server, token); err != nil {
			return &WorkerJoinError{Node: node.Name, Cause: err}
		}
		return nil
	})
}

func (o *Orchestrator) installWorker(ctx context.Context, node config.Node, server string, token Token) error {
	log := o.log.With(zap.String("node", node.Name), zap.String("address", node.Address))

	exec, err := o.factory(node)
	if err != nil {
		return err
	}

	log.Info("installing rke2-agent", zap.String("server", server))
	if _, err := exec.Execute(ctx, installAgentCommand); err != nil {
		return fmt.Errorf("agent install: %w", err)
	}

	// The token travels over stdin; it must never appear in the command
	// text, the process list on the remote host, or our logs.
	agentConfig := fmt.Sprintf("server: %s\ntoken: %s\n", server, token.Value())
	if _, err := exec.ExecuteWithInput(ctx, writeAgentConfigCommand, strings.NewReader(agentConfig)); err != nil {
		return fmt.Errorf("agent config write: %w", err)
	}

	for _, command := range []string{enableAgentCommand, startAgentCommand} {
		if _, err := exec.Execute(ctx, command); err != nil {
			return fmt.Errorf("agent start sequence: %w", err)
		}
	}

	log.Info("agent started, registration proceeds asynchronously")
	return nil
}

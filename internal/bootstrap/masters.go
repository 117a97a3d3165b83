package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hkn/rke2up/internal/config"
	"github.com/hkn/rke2up/internal/wait"
)

// installMasters drives the control plane bootstrap on every master.
// Masters are independent of each other; each failure is recorded in its
// StageResult and judged by the orchestrator afterwards.
func (o *Orchestrator) installMasters(ctx context.Context) []StageResult {
	return o.forEachNode(ctx, o.inventory.Masters(), o.installMaster)
}

func (o *Orchestrator) installMaster(ctx context.Context, node config.Node) error {
	log := o.log.With(zap.String("node", node.Name), zap.String("address", node.Address))

	exec, err := o.factory(node)
	if err != nil {
		return err
	}

	log.Info("installing rke2-server")
	for _, command := range []string{installServerCommand, enableServerCommand, startServerCommand} {
		if _, err := exec.Execute(ctx, command); err != nil {
			return fmt.Errorf("server install sequence: %w", err)
		}
	}

	log.Info("waiting for control plane readiness marker", zap.String("marker", tokenPath))
	err = wait.For(ctx, o.timeouts.PollInterval, o.timeouts.Bootstrap, func(ctx context.Context) (bool, error) {
		if _, err := exec.Execute(ctx, checkMarkerCommand); err != nil {
			// Marker not there yet (or a transient channel hiccup); keep
			// polling until the ceiling decides.
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		if errors.Is(err, wait.ErrCeilingReached) {
			return &TimeoutError{Node: node.Name, Marker: tokenPath, Waited: o.timeouts.Bootstrap}
		}
		return err
	}

	log.Info("control plane ready")
	return nil
}

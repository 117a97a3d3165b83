package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hkn/rke2up/internal/bootstrap"
	"github.com/hkn/rke2up/internal/config"
	"github.com/hkn/rke2up/internal/ui"
)

// pingNodes is replaced in tests.
var pingNodes = func(ctx context.Context, inv *config.Inventory, timeouts *config.Timeouts, factory bootstrap.ExecutorFactory) []bootstrap.StageResult {
	return bootstrap.New(inv, timeouts, factory, zap.NewNop()).Ping(ctx)
}

// Doctor runs the preflight checks: inventory parses and validates, the
// SSH key is readable, and every node answers a trivial command over SSH.
// It never installs anything.
func Doctor(ctx context.Context, configPath string) error {
	inv, err := loadInventory(configPath)
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	ui.Success("inventory: %d masters, %d workers", len(inv.Masters()), len(inv.Workers()))

	key, err := readPrivateKey(inv)
	if err != nil {
		ui.Fail("ssh key: %v", err)
		return err
	}
	ui.Success("ssh key: %s", inv.SSHKeyPath)

	timeouts := config.LoadTimeouts()
	results := pingNodes(ctx, inv, timeouts, newExecutorFactory(key, timeouts))

	var unreachable int
	for _, res := range results {
		if res.Err != nil {
			unreachable++
			ui.Fail("node %s: %v", res.Node.Name, res.Err)
			continue
		}
		ui.Success("node %s: reachable", res.Node.Name)
	}

	if unreachable > 0 {
		return fmt.Errorf("%d of %d nodes unreachable", unreachable, len(results))
	}
	fmt.Println()
	ui.Dim("All checks passed. Run 'rke2up up' to bootstrap.")
	return nil
}

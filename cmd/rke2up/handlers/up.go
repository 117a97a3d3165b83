package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hkn/rke2up/internal/bootstrap"
	"github.com/hkn/rke2up/internal/config"
	"github.com/hkn/rke2up/internal/ui"
)

// Factory function variables - replaced in tests for dependency injection.
var (
	readPrivateKey = func(inv *config.Inventory) ([]byte, error) {
		return inv.ReadPrivateKey()
	}

	newExecutorFactory = bootstrap.SSHExecutorFactory

	runBootstrap = func(ctx context.Context, inv *config.Inventory, timeouts *config.Timeouts, factory bootstrap.ExecutorFactory, log *zap.Logger) (*bootstrap.Report, error) {
		return bootstrap.New(inv, timeouts, factory, log).Run(ctx)
	}
)

// UpOptions carries the flag values of the up command.
type UpOptions struct {
	ConfigPath     string
	KubeconfigPath string
	Verbose        bool
}

// Up bootstraps the cluster described by the inventory.
//
// The workflow:
//  1. Loads and validates the inventory
//  2. Reads the SSH private key
//  3. Runs the bootstrap: masters first, then token retrieval, then
//     workers, then kubeconfig extraction
//  4. Prints a summary with the produced kubeconfig path and per-node
//     failures, if any
//
// A worker-only failure still produces a kubeconfig; Up reports it through
// the summary and returns an error so the process exits non-zero.
func Up(ctx context.Context, opts UpOptions) error {
	inv, err := loadInventory(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	if opts.KubeconfigPath != "" {
		inv.KubeconfigPath = opts.KubeconfigPath
	}

	key, err := readPrivateKey(inv)
	if err != nil {
		return fmt.Errorf("failed to read SSH key: %w", err)
	}

	timeouts := config.LoadTimeouts()
	log := newLogger(opts.Verbose)
	defer func() { _ = log.Sync() }()

	ui.Header("Bootstrapping cluster %q (%d masters, %d workers)",
		inv.ClusterName, len(inv.Masters()), len(inv.Workers()))

	report, runErr := runBootstrap(ctx, inv, timeouts, newExecutorFactory(key, timeouts), log)
	printSummary(report, runErr)

	if runErr != nil {
		if report == nil {
			return runErr
		}
		return fmt.Errorf("bootstrap failed during %s: %w", report.Stage, runErr)
	}
	if report.HasFailures() {
		return fmt.Errorf("bootstrap finished with node failures")
	}
	return nil
}

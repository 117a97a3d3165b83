// Package bootstrap turns a declared node inventory into a running RKE2
// cluster and a usable local kubeconfig.
//
// The critical path is strictly sequential: masters install, then the join
// token is read from the primary master, then workers install with it, then
// the admin kubeconfig is extracted. Per-node work inside the master and
// worker stages fans out concurrently. There is no rollback: a failed run
// halts and reports, and nodes already installed stay installed.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hkn/rke2up/internal/config"
)

// Orchestrator sequences the bootstrap stages over a node inventory.
type Orchestrator struct {
	inventory *config.Inventory
	timeouts  *config.Timeouts
	factory   ExecutorFactory
	log       *zap.Logger
}

// New creates an orchestrator. A nil logger disables logging.
func New(inventory *config.Inventory, timeouts *config.Timeouts, factory ExecutorFactory, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		inventory: inventory,
		timeouts:  timeouts,
		factory:   factory,
		log:       log,
	}
}

// Run executes the full bootstrap. The returned report is always non-nil;
// on error its Stage field names the stage the run failed in, together with
// every per-node result accumulated up to that point. Stage-scoped failures
// (token, credential) abort immediately; node-scoped failures are collected
// and only the primary master's failure is fatal by itself.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	primary := o.inventory.PrimaryMaster()
	report := &Report{
		Stage:          StageInit,
		APIEndpoint:    fmt.Sprintf("https://%s:%d", primary.Address, kubeAPIPort),
		KubeconfigPath: o.inventory.KubeconfigPath,
	}

	report.Stage = StageMastersInstalling
	report.MasterResults = o.installMasters(ctx)
	if err := resultFor(report.MasterResults, primary.Name); err != nil {
		return report, fmt.Errorf("primary master %s failed to bootstrap: %w", primary.Name, err)
	}

	report.Stage = StageTokenPending
	token, err := o.retrieveToken(ctx)
	if err != nil {
		return report, err
	}
	report.Token = token

	// Workers gate on "primary master ready and token retrieved", not on
	// every master having succeeded.
	report.Stage = StageWorkersInstalling
	report.WorkerResults = o.installWorkers(ctx, token)

	// Extraction proceeds even when some workers failed: the cluster is
	// usable with a master and a subset of workers.
	report.Stage = StageCredentialExtracting
	if err := o.extractKubeconfig(ctx); err != nil {
		return report, err
	}

	report.Stage = StageDone
	return report, nil
}

// Ping probes SSH connectivity to every node in the inventory. Used by the
// preflight check; it issues a trivial command and collects per-node results.
func (o *Orchestrator) Ping(ctx context.Context) []StageResult {
	return o.forEachNode(ctx, o.inventory.Nodes, func(ctx context.Context, node config.Node) error {
		exec, err := o.factory(node)
		if err != nil {
			return err
		}
		if _, err := exec.Execute(ctx, pingCommand); err != nil {
			return err
		}
		return nil
	})
}

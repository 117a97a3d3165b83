// Package wizard implements the interactive inventory generator behind
// `rke2up init`. It asks for cluster identity, SSH access, and node
// addresses, and renders the answers into an inventory file.
package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	ClusterName string
	SSHUser     string
	SSHKeyPath  string

	MasterAddresses []string
	WorkerAddresses []string
}

// Run runs the interactive wizard. The context is used for cancellation
// support (e.g. Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runClusterGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("cluster identity: %w", err)
	}
	if err := runAccessGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("ssh access: %w", err)
	}
	if err := runNodesGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}

	return result, nil
}

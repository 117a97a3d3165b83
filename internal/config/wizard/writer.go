package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hkn/rke2up/internal/config"
)

// Inventory converts wizard answers into an inventory. Masters keep their
// declaration order, so the first master address entered is the primary.
func (r *Result) Inventory() *config.Inventory {
	inv := &config.Inventory{
		ClusterName: r.ClusterName,
		SSHUser:     r.SSHUser,
		SSHKeyPath:  r.SSHKeyPath,
	}

	for i, addr := range r.MasterAddresses {
		inv.Nodes = append(inv.Nodes, config.Node{
			Name:    fmt.Sprintf("master-%d", i+1),
			Address: addr,
			Role:    config.RoleMaster,
		})
	}
	for i, addr := range r.WorkerAddresses {
		inv.Nodes = append(inv.Nodes, config.Node{
			Name:    fmt.Sprintf("worker-%d", i+1),
			Address: addr,
			Role:    config.RoleWorker,
		})
	}

	return inv
}

// WriteFile renders the inventory to YAML at path. Refuses to overwrite an
// existing file unless force is set.
func (r *Result) WriteFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(r.Inventory())
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

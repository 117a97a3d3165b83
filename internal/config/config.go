// Package config defines the node inventory and its loading and validation.
package config

import "fmt"

// Role classifies a node as part of the control plane or as a workload node.
type Role string

const (
	// RoleMaster marks a node that runs the rke2-server control plane.
	RoleMaster Role = "master"
	// RoleWorker marks a node that runs the rke2-agent.
	RoleWorker Role = "worker"
)

// Node is one declared cluster member. Immutable after load.
type Node struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Address string `mapstructure:"address" yaml:"address"`
	User    string `mapstructure:"user" yaml:"user,omitempty"` // defaults to Inventory.SSHUser
	Role    Role   `mapstructure:"role" yaml:"role"`
}

// Inventory is the declared set of nodes plus the access parameters shared
// by all of them.
type Inventory struct {
	ClusterName    string `mapstructure:"cluster_name" yaml:"cluster_name"`
	SSHUser        string `mapstructure:"ssh_user" yaml:"ssh_user"`
	SSHKeyPath     string `mapstructure:"ssh_key_path" yaml:"ssh_key_path"`
	KubeconfigPath string `mapstructure:"kubeconfig_path" yaml:"kubeconfig_path"`
	Nodes          []Node `mapstructure:"nodes" yaml:"nodes"`
}

// Masters returns the control plane nodes in declaration order.
func (inv *Inventory) Masters() []Node {
	return inv.byRole(RoleMaster)
}

// Workers returns the worker nodes in declaration order.
func (inv *Inventory) Workers() []Node {
	return inv.byRole(RoleWorker)
}

// PrimaryMaster returns the first declared master. It is the source of
// truth for the join token and the admin kubeconfig.
func (inv *Inventory) PrimaryMaster() Node {
	return inv.byRole(RoleMaster)[0]
}

func (inv *Inventory) byRole(role Role) []Node {
	var nodes []Node
	for _, n := range inv.Nodes {
		if n.Role == role {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Validate checks the inventory invariants: at least one master, unique
// node names, resolvable login users, and known roles.
func (inv *Inventory) Validate() error {
	if inv.ClusterName == "" {
		return fmt.Errorf("cluster_name is required")
	}
	if len(inv.Nodes) == 0 {
		return fmt.Errorf("at least one node is required")
	}

	seen := make(map[string]struct{}, len(inv.Nodes))
	masters := 0
	for i, n := range inv.Nodes {
		if n.Name == "" {
			return fmt.Errorf("node %d: name is required", i)
		}
		if _, dup := seen[n.Name]; dup {
			return fmt.Errorf("node %q: duplicate name", n.Name)
		}
		seen[n.Name] = struct{}{}

		if n.Address == "" {
			return fmt.Errorf("node %q: address is required", n.Name)
		}
		if n.User == "" && inv.SSHUser == "" {
			return fmt.Errorf("node %q: no login user (set ssh_user or a per-node user)", n.Name)
		}

		switch n.Role {
		case RoleMaster:
			masters++
		case RoleWorker:
		default:
			return fmt.Errorf("node %q: invalid role %q (must be master or worker)", n.Name, n.Role)
		}
	}

	if masters == 0 {
		return fmt.Errorf("at least one master node is required")
	}

	return nil
}

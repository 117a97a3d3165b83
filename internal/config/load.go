package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultInventoryPath is tried when no --config flag is given.
const DefaultInventoryPath = "inventory.yaml"

// DefaultKubeconfigPath is where the rewritten admin kubeconfig lands.
const DefaultKubeconfigPath = "kubeconfig.yaml"

// LoadFile reads and parses the inventory from a YAML file.
func LoadFile(path string) (*Inventory, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var inv Inventory
	if err := mapstructure.Decode(rawConfig, &inv); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}

	// Set defaults
	if inv.SSHKeyPath == "" {
		inv.SSHKeyPath = "~/.ssh/id_rsa"
	}
	if inv.KubeconfigPath == "" {
		inv.KubeconfigPath = DefaultKubeconfigPath
	}
	for i := range inv.Nodes {
		if inv.Nodes[i].User == "" {
			inv.Nodes[i].User = inv.SSHUser
		}
	}

	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("inventory validation failed: %w", err)
	}

	keyPath, err := ExpandPath(inv.SSHKeyPath)
	if err != nil {
		return nil, err
	}
	inv.SSHKeyPath = keyPath

	return &inv, nil
}

// ReadPrivateKey loads the SSH private key named by the inventory. The key
// bytes are read once and shared read-only by all command executions.
func (inv *Inventory) ReadPrivateKey() ([]byte, error) {
	// #nosec G304
	key, err := os.ReadFile(inv.SSHKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SSH key %s: %w", inv.SSHKeyPath, err)
	}
	return key, nil
}

// ExpandPath resolves a leading ~ to the current user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

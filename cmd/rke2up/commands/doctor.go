package commands

import (
	"github.com/spf13/cobra"

	"github.com/hkn/rke2up/cmd/rke2up/handlers"
)

// Doctor returns the preflight check command.
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check inventory and SSH connectivity before bootstrapping",
		Long: `Validate the inventory file, confirm the SSH key is readable, and probe
SSH connectivity to every declared node.

Run this before 'rke2up up' to catch unreachable nodes or broken
credentials without touching any node state.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to inventory file (default: inventory.yaml)")

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/hkn/rke2up/cmd/rke2up/handlers"
)

// Init returns the command that interactively generates an inventory file.
func Init() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create an inventory file",
		Long: `Create an inventory file through an interactive wizard.

The wizard asks for the cluster name, the SSH login shared by the nodes,
and the master and worker addresses, then writes an inventory YAML that
'rke2up up' consumes.

Examples:
  # Write inventory.yaml in the current directory
  rke2up init

  # Write somewhere else, replacing an existing file
  rke2up init -o clusters/lab.yaml --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, force)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "inventory.yaml", "Where to write the inventory")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing inventory file")

	return cmd
}

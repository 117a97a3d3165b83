package commands

import (
	"github.com/spf13/cobra"

	"github.com/hkn/rke2up/cmd/rke2up/handlers"
)

// Up returns the command that runs the full cluster bootstrap.
//
// The bootstrap process:
//  1. Installs and starts rke2-server on every master node
//  2. Waits for each master's readiness marker and reads the join token
//     from the primary (first declared) master
//  3. Installs rke2-agent on every worker, joined via the primary master
//  4. Extracts the admin kubeconfig, rewrites its loopback API address to
//     the primary master's address, and writes it locally with mode 0600
//
// The install sequences are idempotent: re-running against already
// installed nodes succeeds and refreshes the local kubeconfig.
//
// Optional flags:
//
//	--config, -c: Path to the inventory YAML file (default: inventory.yaml)
//	--kubeconfig: Where to write the admin kubeconfig (overrides inventory)
//	--verbose, -v: Debug-level logging
func Up() *cobra.Command {
	var (
		configPath     string
		kubeconfigPath string
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Bootstrap the cluster described by the inventory",
		Long: `Bootstrap an RKE2 cluster over SSH.

Masters are installed first; workers join only after the primary master is
ready and the join token has been retrieved. A single worker failing does
not abort the run: the remaining workers still join and the kubeconfig is
still produced, with the failure reported in the summary.

Prerequisites (not handled by rke2up): SSH key access with passwordless
sudo on every node, and reachable cluster ports (6443, 9345, 10250,
2379-2380 between masters, 30000-32767 on workers).

Examples:
  # Bootstrap using inventory.yaml in the current directory
  rke2up up

  # Bootstrap using a specific inventory and kubeconfig location
  rke2up up -c production.yaml --kubeconfig ~/.kube/prod.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := handlers.UpOptions{
				ConfigPath:     configPath,
				KubeconfigPath: kubeconfigPath,
				Verbose:        verbose,
			}
			return handlers.Up(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to inventory file (default: inventory.yaml)")
	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path for the produced kubeconfig (default: from inventory)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

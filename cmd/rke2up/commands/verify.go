package commands

import (
	"github.com/spf13/cobra"

	"github.com/hkn/rke2up/cmd/rke2up/handlers"
)

// Verify returns the command that inspects a bootstrapped cluster through
// the kubeconfig produced by 'rke2up up'.
func Verify() *cobra.Command {
	var kubeconfigPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "List cluster nodes via the produced kubeconfig",
		Long: `Connect to the cluster API with the kubeconfig produced by 'rke2up up'
and report every node with its Ready condition.

Worker registration is asynchronous; nodes may take a minute or two to
appear after 'up' finishes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Verify(cmd.Context(), kubeconfigPath)
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "kubeconfig.yaml", "Path to the kubeconfig")

	return cmd
}

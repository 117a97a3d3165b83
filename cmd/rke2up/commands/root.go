// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the rke2up CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rke2up",
		Short: "Bootstrap an RKE2 cluster over SSH",
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Up())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Verify())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

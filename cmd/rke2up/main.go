// Package main is the entry point for the rke2up CLI.
//
// rke2up bootstraps a multi-node RKE2 cluster over SSH: it installs the
// control plane on the declared master nodes, retrieves the join token,
// joins the worker nodes, and writes a locally usable admin kubeconfig.
//
// Commands: init, up, doctor, verify.
//
// For detailed usage information, run:
//
//	rke2up --help
package main

import (
	"fmt"
	"os"

	"github.com/hkn/rke2up/cmd/rke2up/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

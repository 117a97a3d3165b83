package wizard

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// clusterNameRegex validates the cluster name: 1-32 lowercase alphanumeric
// characters or hyphens, not starting or ending with a hyphen.
var clusterNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// runClusterGroup prompts for the cluster name.
func runClusterGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cluster Name").
				Description("1-32 lowercase alphanumeric characters or hyphens").
				Placeholder("my-cluster").
				Value(&result.ClusterName).
				Validate(validateClusterName),
		).Title("Cluster Identity"),
	).RunWithContext(ctx)
}

// runAccessGroup prompts for the shared SSH login.
func runAccessGroup(ctx context.Context, result *Result) error {
	result.SSHKeyPath = "~/.ssh/id_rsa"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("SSH User").
				Description("Login user with passwordless sudo on every node").
				Placeholder("hkn").
				Value(&result.SSHUser).
				Validate(validateNotEmpty("ssh user")),
			huh.NewInput().
				Title("SSH Private Key Path").
				Description("Key authorized on every node").
				Value(&result.SSHKeyPath).
				Validate(validateNotEmpty("key path")),
		).Title("SSH Access"),
	).RunWithContext(ctx)
}

// runNodesGroup prompts for master and worker addresses.
func runNodesGroup(ctx context.Context, result *Result) error {
	var masters, workers string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Master Addresses").
				Description("Comma-separated IPs or hostnames; the first becomes the primary master").
				Placeholder("10.0.0.1").
				Value(&masters).
				Validate(validateAddressList(true)),
			huh.NewInput().
				Title("Worker Addresses (Optional)").
				Description("Comma-separated IPs or hostnames").
				Placeholder("10.0.0.2, 10.0.0.3").
				Value(&workers).
				Validate(validateAddressList(false)),
		).Title("Nodes"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.MasterAddresses = splitAddresses(masters)
	result.WorkerAddresses = splitAddresses(workers)
	return nil
}

func validateClusterName(name string) error {
	if !clusterNameRegex.MatchString(name) {
		return fmt.Errorf("must be 1-32 lowercase alphanumeric characters or hyphens")
	}
	return nil
}

func validateNotEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", what)
		}
		return nil
	}
}

func validateAddressList(required bool) func(string) error {
	return func(s string) error {
		addresses := splitAddresses(s)
		if len(addresses) == 0 {
			if required {
				return fmt.Errorf("at least one address is required")
			}
			return nil
		}
		for _, addr := range addresses {
			if net.ParseIP(addr) == nil && !hostnameRegex.MatchString(addr) {
				return fmt.Errorf("%q is not a valid IP or hostname", addr)
			}
		}
		return nil
	}
}

var hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9.-]{0,252}[a-zA-Z0-9])?$`)

func splitAddresses(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package bootstrap

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"go.uber.org/zap"
	"k8s.io/client-go/tools/clientcmd"
)

// extractKubeconfig pulls the admin kubeconfig from the primary master,
// rewrites its loopback API address to the master's routable address, and
// writes it locally with owner-only permissions. This stage runs on every
// run and always overwrites the previous file; callers who care about the
// old copy must snapshot it themselves.
func (o *Orchestrator) extractKubeconfig(ctx context.Context) error {
	primary := o.inventory.PrimaryMaster()

	exec, err := o.factory(primary)
	if err != nil {
		return &CredentialError{Cause: err}
	}

	raw, err := exec.Execute(ctx, readKubeconfigCommand)
	if err != nil {
		return &CredentialError{Cause: err}
	}
	if strings.TrimSpace(raw) == "" {
		return &CredentialError{Cause: fmt.Errorf("remote %s is empty", kubeconfigPath)}
	}

	rewritten, err := RewriteServerAddress([]byte(raw), primary.Address)
	if err != nil {
		return &CredentialError{Cause: err}
	}

	if err := os.WriteFile(o.inventory.KubeconfigPath, rewritten, 0600); err != nil {
		return &CredentialError{Cause: fmt.Errorf("failed to write kubeconfig: %w", err)}
	}

	o.log.Info("kubeconfig written",
		zap.String("path", o.inventory.KubeconfigPath),
		zap.String("server", fmt.Sprintf("https://%s:%d", primary.Address, kubeAPIPort)))
	return nil
}

// RewriteServerAddress replaces the loopback host in every cluster server
// URL of a kubeconfig document with the given externally routable address.
// Ports and scheme are preserved; non-loopback servers are left alone.
func RewriteServerAddress(kubeconfig []byte, address string) ([]byte, error) {
	cfg, err := clientcmd.Load(kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kubeconfig: %w", err)
	}

	for name, cluster := range cfg.Clusters {
		u, err := url.Parse(cluster.Server)
		if err != nil {
			return nil, fmt.Errorf("cluster %q has invalid server URL %q: %w", name, cluster.Server, err)
		}
		if !isLoopbackHost(u.Hostname()) {
			continue
		}

		host := address
		if port := u.Port(); port != "" {
			host = net.JoinHostPort(address, port)
		}
		u.Host = host
		cluster.Server = u.String()
	}

	out, err := clientcmd.Write(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize kubeconfig: %w", err)
	}
	return out, nil
}

func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/hkn/rke2up/internal/k8s"
	"github.com/hkn/rke2up/internal/ui"
)

// newClusterClient is replaced in tests.
var newClusterClient = func(kubeconfigPath string) (*k8s.Client, error) {
	return k8s.NewClient(kubeconfigPath)
}

// Verify lists the cluster nodes through the produced kubeconfig and
// reports each node's Ready condition. It returns an error when any node
// is not Ready, so scripts can poll it.
func Verify(ctx context.Context, kubeconfigPath string) error {
	client, err := newClusterClient(kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to build cluster client: %w", err)
	}

	nodes, err := client.NodeStatuses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}
	if len(nodes) == 0 {
		return fmt.Errorf("no nodes registered yet; workers join asynchronously, retry shortly")
	}

	var notReady int
	for _, node := range nodes {
		roles := strings.Join(node.Roles, ",")
		if roles == "" {
			roles = "<none>"
		}
		line := fmt.Sprintf("%s  roles=%s  version=%s", node.Name, roles, node.Version)
		if node.Ready {
			ui.Success("%s", line)
			continue
		}
		notReady++
		ui.Warn("%s  (NotReady)", line)
	}

	if notReady > 0 {
		return fmt.Errorf("%d of %d nodes not ready", notReady, len(nodes))
	}
	return nil
}

// Package k8s provides a thin Kubernetes client wrapper for verifying a
// freshly bootstrapped cluster through its admin kubeconfig.
package k8s

import (
	"context"
	"fmt"
	"sort"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

// Client wraps Kubernetes API operations for cluster verification.
type Client struct {
	clientset kubernetes.Interface
}

// NewClient creates a new Kubernetes client from a kubeconfig file.
func NewClient(kubeconfigPath string) (*Client, error) {
	config, err := clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	return &Client{clientset: clientset}, nil
}

// NewClientFromClientset wires an existing clientset; used by tests.
func NewClientFromClientset(clientset kubernetes.Interface) *Client {
	return &Client{clientset: clientset}
}

// NodeStatus is a condensed view of one cluster node.
type NodeStatus struct {
	Name    string
	Ready   bool
	Roles   []string
	Version string
}

// NodeStatuses lists the cluster's nodes with their Ready condition,
// sorted by name.
func (c *Client) NodeStatuses(ctx context.Context) ([]NodeStatus, error) {
	nodes, err := c.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	statuses := make([]NodeStatus, 0, len(nodes.Items))
	for _, node := range nodes.Items {
		statuses = append(statuses, NodeStatus{
			Name:    node.Name,
			Ready:   isNodeReady(&node),
			Roles:   nodeRoles(&node),
			Version: node.Status.NodeInfo.KubeletVersion,
		})
	}

	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses, nil
}

// isNodeReady checks the node's Ready condition.
func isNodeReady(node *corev1.Node) bool {
	for _, condition := range node.Status.Conditions {
		if condition.Type == corev1.NodeReady &&
			condition.Status == corev1.ConditionTrue {
			return true
		}
	}
	return false
}

// nodeRoles extracts role names from the node-role.kubernetes.io labels.
func nodeRoles(node *corev1.Node) []string {
	var roles []string
	for label := range node.Labels {
		if role, ok := strings.CutPrefix(label, "node-role.kubernetes.io/"); ok && role != "" {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)
	return roles
}

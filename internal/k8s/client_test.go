package k8s

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func node(name string, ready bool, labels map[string]string) *corev1.Node {
	status := corev1.ConditionFalse
	if ready {
		status = corev1.ConditionTrue
	}
	return &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{Name: name, Labels: labels},
		Status: corev1.NodeStatus{
			Conditions: []corev1.NodeCondition{
				{Type: corev1.NodeReady, Status: status},
			},
			NodeInfo: corev1.NodeSystemInfo{KubeletVersion: "v1.31.4+rke2r1"},
		},
	}
}

func TestNodeStatuses(t *testing.T) {
	t.Parallel()

	clientset := fake.NewSimpleClientset(
		node("w1", false, nil),
		node("m1", true, map[string]string{
			"node-role.kubernetes.io/control-plane": "true",
			"node-role.kubernetes.io/etcd":          "true",
		}),
	)

	statuses, err := NewClientFromClientset(clientset).NodeStatuses(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, "m1", statuses[0].Name, "sorted by name")
	assert.True(t, statuses[0].Ready)
	assert.Equal(t, []string{"control-plane", "etcd"}, statuses[0].Roles)
	assert.Equal(t, "v1.31.4+rke2r1", statuses[0].Version)

	assert.Equal(t, "w1", statuses[1].Name)
	assert.False(t, statuses[1].Ready)
	assert.Empty(t, statuses[1].Roles)
}

func TestNewClientRejectsMissingKubeconfig(t *testing.T) {
	t.Parallel()

	_, err := NewClient("/does/not/exist/kubeconfig.yaml")
	assert.Error(t, err)
}

package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkn/rke2up/internal/config"
)

func sampleResult() *Result {
	return &Result{
		ClusterName:     "demo",
		SSHUser:         "hkn",
		SSHKeyPath:      "~/.ssh/id_rsa",
		MasterAddresses: []string{"10.0.0.1"},
		WorkerAddresses: []string{"10.0.0.2", "10.0.0.3"},
	}
}

func TestResultInventory(t *testing.T) {
	t.Parallel()

	inv := sampleResult().Inventory()
	require.NoError(t, inv.Validate())

	assert.Equal(t, "master-1", inv.PrimaryMaster().Name)
	assert.Equal(t, "10.0.0.1", inv.PrimaryMaster().Address)
	assert.Len(t, inv.Workers(), 2)
	assert.Equal(t, config.RoleWorker, inv.Nodes[2].Role)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("round-trips through LoadFile", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "inventory.yaml")
		require.NoError(t, sampleResult().WriteFile(path, false))

		inv, err := config.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "demo", inv.ClusterName)
		assert.Len(t, inv.Nodes, 3)
		assert.Equal(t, "hkn", inv.Nodes[0].User)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "inventory.yaml")
		require.NoError(t, os.WriteFile(path, []byte("keep me"), 0600))

		err := sampleResult().WriteFile(path, false)
		assert.ErrorContains(t, err, "already exists")

		assert.NoError(t, sampleResult().WriteFile(path, true))
	})
}

func TestSplitAddresses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, splitAddresses("10.0.0.1, 10.0.0.2,"))
	assert.Nil(t, splitAddresses("  "))
}

func TestValidators(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateClusterName("demo-1"))
	assert.Error(t, validateClusterName("Demo"))
	assert.Error(t, validateClusterName("-demo"))

	assert.NoError(t, validateAddressList(true)("10.0.0.1, node-2.lab"))
	assert.Error(t, validateAddressList(true)(""))
	assert.NoError(t, validateAddressList(false)(""))
	assert.Error(t, validateAddressList(false)("not an address!"))
}

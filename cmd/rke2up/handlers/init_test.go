package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkn/rke2up/internal/config"
	"github.com/hkn/rke2up/internal/config/wizard"
)

func stubWizard(t *testing.T) {
	t.Helper()
	runWizard = func(_ context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			ClusterName:     "lab",
			SSHUser:         "ops",
			SSHKeyPath:      "~/.ssh/id_rsa",
			MasterAddresses: []string{"10.1.0.1"},
			WorkerAddresses: []string{"10.1.0.2"},
		}, nil
	}
}

func TestInit_WritesLoadableInventory(t *testing.T) {
	saveAndRestoreFactories(t)
	stubWizard(t)

	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, Init(context.Background(), path, false))

	inv, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "lab", inv.ClusterName)
	assert.Len(t, inv.Masters(), 1)
	assert.Len(t, inv.Workers(), 1)
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	saveAndRestoreFactories(t)
	stubWizard(t)

	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o600))

	err := Init(context.Background(), path, false)
	require.Error(t, err)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "existing", string(data))
}

func TestInit_ForceOverwrites(t *testing.T) {
	saveAndRestoreFactories(t)
	stubWizard(t)

	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o600))

	require.NoError(t, Init(context.Background(), path, true))

	_, err := config.LoadFile(path)
	require.NoError(t, err)
}

func TestInit_UserAbortIsNotAnError(t *testing.T) {
	saveAndRestoreFactories(t)

	runWizard = func(_ context.Context) (*wizard.Result, error) {
		return nil, huh.ErrUserAborted
	}

	require.NoError(t, Init(context.Background(), filepath.Join(t.TempDir(), "inventory.yaml"), false))
}

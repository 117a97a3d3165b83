package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/tools/clientcmd"
)

func TestRewriteServerAddress(t *testing.T) {
	t.Parallel()

	t.Run("replaces the loopback host and keeps the port", func(t *testing.T) {
		t.Parallel()
		out, err := RewriteServerAddress([]byte(fakeRemoteKubeconfig), "10.0.0.1")
		require.NoError(t, err)

		cfg, err := clientcmd.Load(out)
		require.NoError(t, err)
		assert.Equal(t, "https://10.0.0.1:6443", cfg.Clusters["default"].Server)
	})

	t.Run("replaces localhost", func(t *testing.T) {
		t.Parallel()
		doc := []byte(`apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://localhost:6443
  name: default
`)
		out, err := RewriteServerAddress(doc, "192.168.1.10")
		require.NoError(t, err)

		cfg, err := clientcmd.Load(out)
		require.NoError(t, err)
		assert.Equal(t, "https://192.168.1.10:6443", cfg.Clusters["default"].Server)
	})

	t.Run("leaves non-loopback servers alone", func(t *testing.T) {
		t.Parallel()
		doc := []byte(`apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://203.0.113.7:6443
  name: default
`)
		out, err := RewriteServerAddress(doc, "10.0.0.1")
		require.NoError(t, err)

		cfg, err := clientcmd.Load(out)
		require.NoError(t, err)
		assert.Equal(t, "https://203.0.113.7:6443", cfg.Clusters["default"].Server)
	})

	t.Run("rejects an unparsable document", func(t *testing.T) {
		t.Parallel()
		_, err := RewriteServerAddress([]byte("{not yaml"), "10.0.0.1")
		assert.Error(t, err)
	})
}

func TestTokenRedaction(t *testing.T) {
	t.Parallel()

	token := NewToken("K10secret::server:secret")
	assert.Equal(t, "[redacted]", token.String())
	assert.NotContains(t, token.GoString(), "secret")

	text, err := token.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "[redacted]", string(text))

	assert.Equal(t, "K10secret::server:secret", token.Value())
	assert.False(t, token.Empty())
	assert.True(t, NewToken("").Empty())
}

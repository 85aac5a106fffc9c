package ancestry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, []string{"mojang", "spigot", "searge", "intermediary"}, config.AllowedNamespaces)
	assert.Equal(t, "", config.IndexNamespace)
}

func TestLoadConfig(t *testing.T) {
	location := filepath.Join(t.TempDir(), "ancestry.yaml")
	data := `allowedNamespaces:
  - mojang
  - intermediary
indexNamespace: searge
`
	require.NoError(t, os.WriteFile(location, []byte(data), 0o644))

	config, err := LoadConfig(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, []string{"mojang", "intermediary"}, config.AllowedNamespaces)
	assert.Equal(t, "searge", config.IndexNamespace)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	location := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(location, []byte("allowedNamespaces: {"), 0o644))
	_, err = LoadConfig(context.Background(), location)
	assert.Error(t, err)
}

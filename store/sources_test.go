package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSourceRegistry(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		registry, err := LoadSourceRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		require.Len(t, registry.Sources, 2)

		src, ok := registry.Lookup("nvd")
		require.True(t, ok)
		assert.Equal(t, "nvd", src.Kind)
	})

	t.Run("file contents override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sources.yaml")
		content := `sources:
  - name: mirror
    kind: osv
    base_url: https://osv.internal.example/v1/vulns/
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		registry, err := LoadSourceRegistry(path)
		require.NoError(t, err)
		require.Len(t, registry.Sources, 1)

		src, ok := registry.Lookup("MIRROR")
		require.True(t, ok)
		assert.Equal(t, "osv", src.Kind)
		assert.Equal(t, "https://osv.internal.example/v1/vulns/", src.BaseURL)
	})

	t.Run("empty file falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sources.yaml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

		registry, err := LoadSourceRegistry(path)
		require.NoError(t, err)
		assert.Len(t, registry.Sources, 2)
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sources.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sources: [unclosed"), 0o600))

		_, err := LoadSourceRegistry(path)
		assert.Error(t, err)
	})
}

func TestLookupMiss(t *testing.T) {
	registry := DefaultSourceRegistry()
	_, ok := registry.Lookup("ghsa")
	assert.False(t, ok)
}

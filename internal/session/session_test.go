package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalnav/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDocumentCache_SnapshotAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	writeFile(t, path, "int main(void)\n{\n}\n")

	cache, err := NewDocumentCache()
	require.NoError(t, err)
	defer cache.Close()

	snap, err := cache.Snapshot(path)
	require.NoError(t, err)
	assert.Equal(t, path, snap.Path)
	assert.Equal(t, "int main(void)", snap.Lines[0])

	writeFile(t, path, "void changed(void)\n{\n}\n")
	cache.Invalidate(path)
	fresh, err := cache.Snapshot(path)
	require.NoError(t, err)
	assert.Equal(t, "void changed(void)", fresh.Lines[0])
}

func TestDocumentCache_MissingFile(t *testing.T) {
	cache, err := NewDocumentCache()
	require.NoError(t, err)
	defer cache.Close()

	_, err = cache.Snapshot(filepath.Join(t.TempDir(), "nope.c"))
	assert.Error(t, err)
}

func TestConfigCache_CurrentAndInvalidate(t *testing.T) {
	root := t.TempDir()

	cache, err := NewConfigCache(root)
	require.NoError(t, err)
	defer cache.Close()

	cfg := cache.Current()
	assert.Equal(t, config.DefaultHistoryCapacity, cfg.History.Capacity)

	writeFile(t, config.Path(root), "history:\n  capacity: 7\n")
	cache.Invalidate()

	cfg = cache.Current()
	assert.Equal(t, 7, cfg.History.Capacity)
}

func TestConfigCache_FailedReloadKeepsLastGood(t *testing.T) {
	root := t.TempDir()
	writeFile(t, config.Path(root), "history:\n  capacity: 9\n")

	cache, err := NewConfigCache(root)
	require.NoError(t, err)
	defer cache.Close()

	assert.Equal(t, 9, cache.Current().History.Capacity)

	// Break the config file; the cache should keep serving the last good load.
	writeFile(t, config.Path(root), "results:\n  action: garbage\n")
	cache.Invalidate()

	assert.Equal(t, 9, cache.Current().History.Capacity)
}

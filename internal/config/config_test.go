package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoConfigFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "global", cfg.Global.Path)
	assert.Equal(t, DefaultHistoryCapacity, cfg.History.Capacity)
	assert.Equal(t, ActionPresentChoices, cfg.Results.Action)
	assert.False(t, cfg.Results.ShowElapsed)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".globalnav")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	content := `
history:
  capacity: 10
results:
  action: take-first
  show_elapsed: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.History.Capacity)
	assert.Equal(t, ActionTakeFirst, cfg.Results.Action)
	assert.True(t, cfg.Results.ShowElapsed)
	assert.Equal(t, "global", cfg.Global.Path, "unset keys keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("GLOBALNAV_RESULTS_ACTION", ActionTakeFirst)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ActionTakeFirst, cfg.Results.Action)
}

func TestLoad_InvalidAction(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".globalnav")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("results:\n  action: pick-randomly\n"), 0o644))

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "results.action")
}

func TestLoad_InvalidCapacity(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".globalnav")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("history:\n  capacity: -3\n"), 0o644))

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.capacity")
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/repo", ".globalnav", "config.yaml"), Path("/repo"))
}

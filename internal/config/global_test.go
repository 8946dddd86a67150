package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigDir_Default(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "icudash"), GlobalConfigDir())
}

func TestGlobalConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/icudash", GlobalConfigDir())
	assert.Equal(t, "/custom/config/icudash/config.yaml", GlobalConfigPath())
}

func TestLoadGlobal_Missing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Endpoint)
}

func TestLoadGlobal_Valid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "icudash"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icudash", "config.yaml"),
		[]byte("endpoint: http://ward.local:8080\n"), 0o600))

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "http://ward.local:8080", cfg.Endpoint)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file present

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.AgentURL)
	assert.Equal(t, 30, cfg.RequestTimeoutSeconds)
	assert.Equal(t, 200, cfg.HistoryLimit)
	assert.False(t, cfg.InsecureSkipVerify)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vita"), 0o755))
	content := `
agent_url = "http://localhost:8000"
request_timeout_seconds = 10
insecure_skip_verify = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vita", "config.toml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.AgentURL)
	assert.Equal(t, 10, cfg.RequestTimeoutSeconds)
	assert.True(t, cfg.InsecureSkipVerify)
	// Unset keys keep their defaults.
	assert.Equal(t, 200, cfg.HistoryLimit)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vita"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vita", "config.toml"), []byte("agent_url = "), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "vita"), ConfigDir())
}

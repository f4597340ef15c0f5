package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultDrawCount, cfg.DefaultDraw)
	assert.True(t, cfg.ShowTimestamps)

	// The default config file is written on first load
	_, err = os.Stat(GetConfigFilePath())
	assert.NoError(t, err)
}

func TestLoadConfigReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "conjuror")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "default_draw = 7\nshow_timestamps = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.DefaultDraw)
	assert.False(t, cfg.ShowTimestamps)
}

func TestLoadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "conjuror")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("default_draw = 5\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DefaultDraw)
	assert.True(t, cfg.ShowTimestamps)
}

func TestLoadConfigRejectsNonsenseDrawCount(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "conjuror")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("default_draw = -2\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultDrawCount, cfg.DefaultDraw)
}

func TestLoadConfigReportsBadToml(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "conjuror")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("default_draw = =\n"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

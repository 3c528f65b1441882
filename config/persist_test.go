package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return &cfg
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := defaultConfig(t)
	cfg.Detection.MinPatternCount = 8
	require.NoError(t, Save(cfg))

	dir, err := ConfigDir()
	require.NoError(t, err)

	loaded, err := LoadFromFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, 8, loaded.Detection.MinPatternCount)
	assert.Equal(t, cfg.Detection.Separator, loaded.Detection.Separator)
}

func TestSaveRotatesBackup(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := defaultConfig(t)
	cfg.Detection.Seed = 1
	require.NoError(t, Save(cfg))

	cfg.Detection.Seed = 2
	require.NoError(t, Save(cfg))

	dir, err := ConfigDir()
	require.NoError(t, err)

	backup, err := LoadFromFile(filepath.Join(dir, "config.toml.back"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), backup.Detection.Seed)

	current, err := LoadFromFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), current.Detection.Seed)
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := defaultConfig(t)
	cfg.Detection.MinPatternCount = 0
	require.Error(t, Save(cfg))

	dir, err := ConfigDir()
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "config.toml"))
	assert.True(t, os.IsNotExist(statErr))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	App    App    `mapstructure:"app"`
	Logger Logger `mapstructure:"logger"`
	Redis  Redis  `mapstructure:"redis"`
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  name: sentiment-dashboard
logger:
  level: debug
  encoding: console
redis:
  host: cache
  port: 6380
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	var cfg testConfig
	require.NoError(t, Load(path, &cfg, map[string]interface{}{"redis.pool_size": 7}))

	assert.Equal(t, "sentiment-dashboard", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, 7, cfg.Redis.PoolSize)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	var cfg testConfig
	err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &cfg, map[string]interface{}{
		"logger.level": "info",
	})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logger.Level)
}

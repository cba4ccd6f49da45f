package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, "kultura", cfg.Storage.RedisPrefix)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Output.Colors)
	assert.NotEmpty(t, cfg.Storage.SessionFile)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kulturactl.yaml")
	content := `api:
  base_url: https://api.kultura.example
  timeout: 5s
storage:
  backend: redis
  redis_addr: redis.internal:6379
output:
  colors: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.kultura.example", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Storage.RedisAddr)
	assert.False(t, cfg.Output.Colors)
}

func TestLoadConfigFromEnv(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("KULTURACTL_API_BASE_URL", "https://env.kultura.example")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://env.kultura.example", cfg.API.BaseURL)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kulturactl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: etcd\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage backend")
}

func TestLoadConfigRejectsUnknownLogLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kulturactl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: chatty\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

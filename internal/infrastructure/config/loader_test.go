package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile_Defaults(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 9090\n")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "read_committed", cfg.Database.IsolationLevel)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 5, cfg.Lock.AcquireMaxAttempts)
	assert.Equal(t, 20*time.Millisecond, cfg.Lock.AcquireRetryInterval())
	assert.Equal(t, 500*time.Millisecond, cfg.Lock.AcquireMaxRetryInterval())
	assert.Equal(t, 5*time.Second, cfg.Lock.AcquireTimeout())
	assert.Equal(t, 5*time.Second, cfg.Lock.ReleaseTimeout())
	assert.True(t, cfg.Telemetry.MetricsEnabled)
	assert.False(t, cfg.Telemetry.TracingEnabled)
}

func TestLoadConfigFile_FileValues(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: db.internal
  isolationLevel: serializable
lock:
  acquireMaxAttempts: 8
  acquireTimeoutMs: 750
  releaseTimeoutMs: 1500
store:
  driver: memory
`)

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "serializable", cfg.Database.IsolationLevel)
	assert.Equal(t, 8, cfg.Lock.AcquireMaxAttempts)
	assert.Equal(t, 750*time.Millisecond, cfg.Lock.AcquireTimeout())
	assert.Equal(t, 1500*time.Millisecond, cfg.Lock.ReleaseTimeout())
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
}

func TestLoadConfigFile_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, "database:\n  host: from-file\n")

	t.Setenv("DL_ENV", "Test")
	t.Setenv("DL_DB_HOST", "from-env")
	t.Setenv("DL_DB_PASSWORD", "secret")
	t.Setenv("DL_STORE_DRIVER", "memory")
	t.Setenv("DL_LOCK_ACQUIRE_MAX_ATTEMPTS", "3")
	t.Setenv("DL_LOCK_ACQUIRE_TIMEOUT_MS", "2500")
	t.Setenv("DL_TELEMETRY_TRACING_ENABLED", "true")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "from-env", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 3, cfg.Lock.AcquireMaxAttempts)
	assert.Equal(t, 2500*time.Millisecond, cfg.Lock.AcquireTimeout())
	assert.True(t, cfg.Telemetry.TracingEnabled)
}

func TestLoadConfigFile_Malformed(t *testing.T) {
	path := writeConfigFile(t, "server: [unterminated\n")

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("DL_TEST_INT", "42")
	t.Setenv("DL_TEST_BAD", "forty-two")

	assert.Equal(t, 42, getEnvInt("DL_TEST_INT", 1))
	assert.Equal(t, 1, getEnvInt("DL_TEST_BAD", 1))
	assert.Equal(t, 7, getEnvInt("DL_TEST_MISSING", 7))
}

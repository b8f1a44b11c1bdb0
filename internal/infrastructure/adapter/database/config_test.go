package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Host = "localhost"
	cfg.Username = "postgres"
	cfg.Password = "postgres"
	cfg.Database = "document_lock"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Valid", func(*Config) {}, ""},
		{"MissingHost", func(c *Config) { c.Host = "" }, "database host is required"},
		{"BadPort", func(c *Config) { c.Port = 70000 }, "invalid port number"},
		{"MissingPassword", func(c *Config) { c.Password = "" }, "database password is required"},
		{"UnsupportedDriver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver"},
		{"BadSSLMode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"BadIsolation", func(c *Config) { c.IsolationLevel = "chaos" }, "invalid isolation level"},
		{"ZeroTimeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout must be positive"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseIsolationLevel(t *testing.T) {
	level, err := ParseIsolationLevel("")
	require.NoError(t, err)
	assert.Equal(t, sql.LevelReadCommitted, level)

	level, err = ParseIsolationLevel("Repeatable Read")
	require.NoError(t, err)
	assert.Equal(t, sql.LevelRepeatableRead, level)

	level, err = ParseIsolationLevel("serializable")
	require.NoError(t, err)
	assert.Equal(t, sql.LevelSerializable, level)

	_, err = ParseIsolationLevel("read_uncommitted")
	assert.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=document_lock sslmode=disable",
		cfg.DSN())
}

func TestCreateConfigFromViperConfig(t *testing.T) {
	conf := &config.Config{
		Database: config.DatabaseConfig{
			Host:           "db",
			Port:           "6543",
			Username:       "locks",
			Password:       "pw",
			Database:       "locks",
			IsolationLevel: "serializable",
			QueryTimeout:   3 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "debug"},
	}

	dbConf := CreateConfigFromViperConfig(conf)
	assert.Equal(t, "db", dbConf.Host)
	assert.Equal(t, 6543, dbConf.Port)
	assert.Equal(t, "serializable", dbConf.IsolationLevel)
	assert.Equal(t, 3*time.Second, dbConf.QueryTimeout)
	assert.Equal(t, 25, dbConf.MaxOpenConns)
	assert.Equal(t, "debug", dbConf.LogLevel)
	assert.NoError(t, dbConf.Validate())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("0"))
	assert.Equal(t, 0, ParsePort("65536"))
}

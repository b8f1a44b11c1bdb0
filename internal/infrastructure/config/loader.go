package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment variable read by the service
const EnvPrefix = "DL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	return load(v, env)
}

// LoadConfigFile loads configuration from an explicit file path
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, getEnvironment())
}

func load(v *viper.Viper, env string) (*Config, error) {
	setDefaults(v)

	// defaults and environment are enough to run without a file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.isolationLevel", "read_committed")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 5) // minutes
	v.SetDefault("database.connMaxIdleTime", 5) // minutes
	v.SetDefault("database.queryTimeout", 10)   // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("lock.acquireMaxAttempts", 5)
	v.SetDefault("lock.acquireRetryIntervalMs", 20)
	v.SetDefault("lock.acquireMaxRetryIntervalMs", 500)
	v.SetDefault("lock.acquireTimeoutMs", 5000)
	v.SetDefault("lock.releaseTimeoutMs", 5000)

	v.SetDefault("store.driver", StoreDriverPostgres)

	v.SetDefault("telemetry.serviceName", "document-lock")
	v.SetDefault("telemetry.metricsEnabled", true)
	v.SetDefault("telemetry.tracingEnabled", false)
}

// getEnvironment determines the environment to use based on DL_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values.
// AutomaticEnv only covers keys viper already knows, so the flat names used
// by deployments are mapped here.
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"DB_HOST":            "database.host",
		"DB_PORT":            "database.port",
		"DB_USERNAME":        "database.username",
		"DB_PASSWORD":        "database.password",
		"DB_NAME":            "database.database",
		"DB_SSL_MODE":        "database.sslMode",
		"DB_ISOLATION_LEVEL": "database.isolationLevel",
		"SERVER_HOST":        "server.host",
		"SERVER_PORT":        "server.port",
		"LOGGER_LEVEL":       "logger.level",
		"STORE_DRIVER":       "store.driver",
	}
	for env, key := range overrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt(EnvPrefix+"_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt(EnvPrefix+"_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt(EnvPrefix+"_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if attempts := getEnvInt(EnvPrefix+"_LOCK_ACQUIRE_MAX_ATTEMPTS", 0); attempts > 0 {
		v.Set("lock.acquireMaxAttempts", attempts)
	}
	if acquireTimeout := getEnvInt(EnvPrefix+"_LOCK_ACQUIRE_TIMEOUT_MS", 0); acquireTimeout > 0 {
		v.Set("lock.acquireTimeoutMs", acquireTimeout)
	}
	if releaseTimeout := getEnvInt(EnvPrefix+"_LOCK_RELEASE_TIMEOUT_MS", 0); releaseTimeout > 0 {
		v.Set("lock.releaseTimeoutMs", releaseTimeout)
	}
	if tracing := os.Getenv(EnvPrefix + "_TELEMETRY_TRACING_ENABLED"); tracing != "" {
		if enabled, err := strconv.ParseBool(tracing); err == nil {
			v.Set("telemetry.tracingEnabled", enabled)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
}

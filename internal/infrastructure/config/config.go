package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Lock        LockConfig      `mapstructure:"lock"`
	Store       StoreConfig     `mapstructure:"store"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	IsolationLevel  string        `mapstructure:"isolationLevel"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LockConfig contains lock coordinator settings
type LockConfig struct {
	AcquireMaxAttempts        int   `mapstructure:"acquireMaxAttempts"`
	AcquireRetryIntervalMs    int64 `mapstructure:"acquireRetryIntervalMs"`
	AcquireMaxRetryIntervalMs int64 `mapstructure:"acquireMaxRetryIntervalMs"`
	AcquireTimeoutMs          int64 `mapstructure:"acquireTimeoutMs"`
	ReleaseTimeoutMs          int64 `mapstructure:"releaseTimeoutMs"`
}

// StoreConfig selects the lock store backend
type StoreConfig struct {
	Driver string `mapstructure:"driver"` // postgres | memory
}

// TelemetryConfig toggles metrics and tracing
type TelemetryConfig struct {
	ServiceName    string `mapstructure:"serviceName"`
	MetricsEnabled bool   `mapstructure:"metricsEnabled"`
	TracingEnabled bool   `mapstructure:"tracingEnabled"`
}

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// AcquireRetryInterval returns the base acquire retry interval
func (c LockConfig) AcquireRetryInterval() time.Duration {
	return time.Duration(c.AcquireRetryIntervalMs) * time.Millisecond
}

// AcquireMaxRetryInterval returns the cap on the acquire retry interval
func (c LockConfig) AcquireMaxRetryInterval() time.Duration {
	return time.Duration(c.AcquireMaxRetryIntervalMs) * time.Millisecond
}

// AcquireTimeout returns the bound on a single acquire, retries included
func (c LockConfig) AcquireTimeout() time.Duration {
	return time.Duration(c.AcquireTimeoutMs) * time.Millisecond
}

// ReleaseTimeout returns the bound on a single release
func (c LockConfig) ReleaseTimeout() time.Duration {
	return time.Duration(c.ReleaseTimeoutMs) * time.Millisecond
}

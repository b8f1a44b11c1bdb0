package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/config"
)

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate store configuration
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
	case config.StoreDriverPostgres, "":
		missingConfigs = append(missingConfigs, missingDatabaseConfig(cfg)...)
	default:
		return fmt.Errorf("invalid store.driver value: %s, must be one of: %s or %s",
			cfg.Store.Driver, config.StoreDriverPostgres, config.StoreDriverMemory)
	}

	// Validate lock configuration
	if cfg.Lock.AcquireMaxAttempts <= 0 {
		missingConfigs = append(missingConfigs, "lock.acquireMaxAttempts")
	}
	if cfg.Lock.AcquireTimeoutMs <= 0 {
		missingConfigs = append(missingConfigs, "lock.acquireTimeoutMs")
	}
	if cfg.Lock.ReleaseTimeoutMs <= 0 {
		missingConfigs = append(missingConfigs, "lock.releaseTimeoutMs")
	}
	if cfg.Lock.AcquireMaxRetryIntervalMs < cfg.Lock.AcquireRetryIntervalMs {
		return fmt.Errorf("lock.acquireMaxRetryIntervalMs (%d) must not be lower than lock.acquireRetryIntervalMs (%d)",
			cfg.Lock.AcquireMaxRetryIntervalMs, cfg.Lock.AcquireRetryIntervalMs)
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		if warnings := productionWarnings(cfg); len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}

func missingDatabaseConfig(cfg *config.Config) []string {
	required := []struct {
		key    string
		envVar string
		value  string
	}{
		{"database.host", "DB_HOST", cfg.Database.Host},
		{"database.port", "DB_PORT", cfg.Database.Port},
		{"database.username", "DB_USERNAME", cfg.Database.Username},
		{"database.password", "DB_PASSWORD", cfg.Database.Password},
		{"database.database", "DB_NAME", cfg.Database.Database},
	}

	var missing []string
	for _, r := range required {
		if r.value != "" {
			continue
		}
		envName := config.EnvPrefix + "_" + r.envVar
		if cfg.Environment == config.Production {
			if os.Getenv(envName) == "" {
				missing = append(missing, fmt.Sprintf("%s (or %s environment variable)", r.key, envName))
			}
			continue
		}
		missing = append(missing, r.key)
	}

	if cfg.Database.QueryTimeout == 0 {
		missing = append(missing, "database.queryTimeout")
	}
	return missing
}

func productionWarnings(cfg *config.Config) []string {
	var warnings []string

	if cfg.Store.Driver == config.StoreDriverMemory {
		warnings = append(warnings, "store.driver memory keeps locks in a single process and loses them on restart")
	} else {
		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
	}

	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	return warnings
}

package lock

import (
	"context"
	"math/rand"
	"time"

	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
)

// Config tunes the coordinator
type Config struct {
	// AcquireMaxAttempts bounds how often the read-then-write sequence runs
	// when the store rejects a write because of a concurrent acquisition
	AcquireMaxAttempts int
	// AcquireRetryInterval is the base backoff, doubled per attempt
	AcquireRetryInterval time.Duration
	// AcquireMaxRetryInterval caps the backoff
	AcquireMaxRetryInterval time.Duration
	// AcquireTimeout bounds one acquire including its retries, so an exhausted
	// store connection pool fails the call instead of blocking it
	AcquireTimeout time.Duration
	// ReleaseTimeout bounds one release, which runs detached from the caller's cancellation
	ReleaseTimeout time.Duration
}

// DefaultConfig returns the default coordinator configuration
func DefaultConfig() Config {
	return Config{
		AcquireMaxAttempts:      5,
		AcquireRetryInterval:    20 * time.Millisecond,
		AcquireMaxRetryInterval: 500 * time.Millisecond,
		AcquireTimeout:          5 * time.Second,
		ReleaseTimeout:          5 * time.Second,
	}
}

const jitterFactor = 0.2

// withDefaults fills zero fields from DefaultConfig
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.AcquireMaxAttempts <= 0 {
		c.AcquireMaxAttempts = d.AcquireMaxAttempts
	}
	if c.AcquireRetryInterval <= 0 {
		c.AcquireRetryInterval = d.AcquireRetryInterval
	}
	if c.AcquireMaxRetryInterval < c.AcquireRetryInterval {
		c.AcquireMaxRetryInterval = max(d.AcquireMaxRetryInterval, c.AcquireRetryInterval)
	}
	if c.AcquireTimeout <= 0 {
		c.AcquireTimeout = d.AcquireTimeout
	}
	if c.ReleaseTimeout <= 0 {
		c.ReleaseTimeout = d.ReleaseTimeout
	}
	return c
}

// retryOnStoreRace re-runs op while it fails with a retryable store error
func retryOnStoreRace(
	ctx context.Context,
	cfg Config,
	clock coreport.TimeProvider,
	logger coreport.Logger,
	op func() error,
) error {
	var err error
	for attempt := 0; attempt < cfg.AcquireMaxAttempts; attempt++ {
		err = op()
		if err == nil || !errs.IsRetryableStoreError(err) {
			return err
		}
		if attempt == cfg.AcquireMaxAttempts-1 {
			break
		}

		backoff := backoffWithJitter(attempt, cfg)
		logger.Debug("Concurrent acquisition detected, retrying", map[string]any{
			"attempt":      attempt + 1,
			"max_attempts": cfg.AcquireMaxAttempts,
			"error":        err.Error(),
			"retry_after":  backoff.String(),
		})

		if sleepErr := clock.SleepContext(ctx, coreport.Duration(backoff)); sleepErr != nil {
			return sleepErr
		}
	}

	logger.Warn("All acquire attempts lost a store race", map[string]any{
		"attempts": cfg.AcquireMaxAttempts,
		"error":    err.Error(),
	})
	return err
}

// backoffWithJitter computes base * 2^attempt, capped, plus up to 20% jitter
func backoffWithJitter(attempt int, cfg Config) time.Duration {
	backoff := cfg.AcquireMaxRetryInterval
	if attempt < 32 {
		backoff = cfg.AcquireRetryInterval << uint(attempt)
	}
	if backoff <= 0 || backoff > cfg.AcquireMaxRetryInterval {
		backoff = cfg.AcquireMaxRetryInterval
	}
	return backoff + time.Duration(float64(backoff)*jitterFactor*rand.Float64())
}

package lock

import (
	"context"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
)

func TestBackoffWithJitter(t *testing.T) {
	cfg := Config{AcquireRetryInterval: 10 * time.Millisecond, AcquireMaxRetryInterval: 50 * time.Millisecond}

	for attempt, base := range []time.Duration{10, 20, 40, 50, 50} {
		base *= time.Millisecond
		d := backoffWithJitter(attempt, cfg)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+time.Duration(float64(base)*jitterFactor))
	}

	// very large attempts must not overflow into a negative backoff
	assert.Greater(t, backoffWithJitter(80, cfg), time.Duration(0))
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultConfig(), cfg)

	cfg = Config{AcquireRetryInterval: time.Second}.withDefaults()
	assert.Equal(t, time.Second, cfg.AcquireMaxRetryInterval)
}

func TestRetryOnStoreRace(t *testing.T) {
	cfg := testConfig()
	clock := timeadapter.NewRealTimeProvider()
	log := logger.NewNoopLogger()

	t.Run("Does not retry other errors", func(t *testing.T) {
		calls := 0
		err := retryOnStoreRace(context.Background(), cfg, clock, log, func() error {
			calls++
			return errs.ErrDatabaseConnection
		})
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Equal(t, 1, calls)
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := retryOnStoreRace(ctx, cfg, clock, log, func() error {
			calls++
			cancel()
			return errs.ErrSerializationFailure
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider_SleepContext(t *testing.T) {
	p := NewRealTimeProvider()

	assert.NoError(t, p.SleepContext(context.Background(), core.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.SleepContext(ctx, core.Hour), context.Canceled)
	assert.ErrorIs(t, p.SleepContext(ctx, 0), context.Canceled)
}

func TestRealTimeProvider_Now(t *testing.T) {
	p := NewRealTimeProvider()
	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, p.Since(now), core.Duration(0))
}

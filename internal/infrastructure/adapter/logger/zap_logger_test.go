package logger

import (
	"testing"

	"github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestZapLogger_Level(t *testing.T) {
	l := NewZapLogger(Options{Level: core.LogLevelWarn, ServiceName: "document-lock"})
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())

	assert.NotPanics(t, func() {
		l.Debug("debug", map[string]any{"lock_id": "1"})
		l.Warn("warn", nil)
	})
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	assert.Equal(t, core.LogLevelInfo, l.GetLevel())
	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	assert.NoError(t, l.Flush())
}

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	mockcore "github.com/amirhossein-jamali/document-lock/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(` select * from "document_locks"`))
	assert.Equal(t, "INSERT", extractQueryType(`INSERT INTO "document_locks" ("id") VALUES ($1)`))
	assert.Equal(t, "DELETE", extractQueryType(`DELETE FROM "document_lock_entries" WHERE lock_id = $1`))
	assert.Equal(t, "", extractQueryType(`BEGIN`))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "document_locks", extractTableName(`SELECT * FROM "document_locks" WHERE id = $1`))
	assert.Equal(t, "document_lock_entries", extractTableName(`INSERT INTO "document_lock_entries" ("lock_id") VALUES ($1)`))
	assert.Equal(t, "schema_migrations", extractTableName(`UPDATE schema_migrations SET name = $1`))
	assert.Equal(t, "", extractTableName(`COMMIT`))
}

func TestExtractTraceIDFromContext(t *testing.T) {
	assert.Equal(t, "", extractTraceIDFromContext(context.Background()))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", extractTraceIDFromContext(ctx))
}

func TestDatabaseLogger_Trace(t *testing.T) {
	ctx := context.Background()
	query := func() (string, int64) { return `SELECT * FROM "document_locks"`, 2 }

	t.Run("Error is logged at error level", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["error"] == "boom" && f["table"] == "document_locks"
		})).Once()

		l := NewDatabaseLogger(mockLogger, nil, "info")
		l.Trace(ctx, time.Now(), query, errors.New("boom"))
	})

	t.Run("Record not found is not an error", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Debug("SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(mockLogger, nil, "info")
		l.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	})

	t.Run("Slow query is a warning", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(mockLogger, nil, "warn").WithSlowThreshold(time.Millisecond)
		l.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)

		l := NewDatabaseLogger(mockLogger, nil, "info").LogMode(logger.Silent)
		l.Trace(ctx, time.Now(), query, errors.New("boom"))
	})
}

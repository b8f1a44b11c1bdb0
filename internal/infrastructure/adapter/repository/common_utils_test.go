package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"Nil", nil, ""},
		{"NotFound", gorm.ErrRecordNotFound, NotFoundError},
		{"UniqueSQLState", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"WrappedUnique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), DuplicateKeyError},
		{"GormDuplicated", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"UniqueMessage", errors.New(`ERROR: duplicate key value violates unique constraint "ux_document_lock_entries_claim"`), DuplicateKeyError},
		{"Serialization", &pgconn.PgError{Code: "40001"}, SerializationError},
		{"Deadlock", &pgconn.PgError{Code: "40P01"}, SerializationError},
		{"ForeignKey", &pgconn.PgError{Code: "23503"}, ConstraintError},
		{"ContextTimeout", context.DeadlineExceeded, TransientError},
		{"ConnectionRefused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), TransientError},
		{"Network", errors.New("network is unreachable"), ConnectionError},
		{"Unknown", errors.New("something odd"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.err))
		})
	}
}

func TestErrorClassifier_ToDomainError(t *testing.T) {
	c := NewErrorClassifier()

	assert.NoError(t, c.ToDomainError(nil))
	assert.ErrorIs(t, c.ToDomainError(gorm.ErrRecordNotFound), errs.ErrLockNotFound)

	dup := &pgconn.PgError{Code: "23505"}
	mapped := c.ToDomainError(dup)
	assert.ErrorIs(t, mapped, errs.ErrDuplicateLockEntry)
	assert.True(t, errs.IsRetryableStoreError(mapped))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(mapped, &pgErr), "driver error stays reachable")

	assert.ErrorIs(t, c.ToDomainError(&pgconn.PgError{Code: "40001"}), errs.ErrSerializationFailure)
	assert.ErrorIs(t, c.ToDomainError(&pgconn.PgError{Code: "23514"}), errs.ErrConstraintViolation)
	assert.ErrorIs(t, c.ToDomainError(errors.New("connection reset by peer")), errs.ErrDatabaseConnection)
	assert.ErrorIs(t, c.ToDomainError(errors.New("odd")), errs.ErrInternalServer)
}

package lock

import (
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestConflictError(t *testing.T) {
	held := &entity.Lock{
		ID:        "lock-1",
		Kind:      entity.LockKindManual,
		Holder:    entity.Holder{Name: "konrad"},
		StartedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Entries:   []entity.LockEntry{desc1},
	}
	err := &ConflictError{Scope: entity.ManualScope("michael"), Requested: []entity.LockEntry{desc1}, Conflicts: []*entity.Lock{held}}

	assert.ErrorIs(t, err, errs.ErrLockConflict)
	assert.Equal(t, errs.CodeLockConflict, errs.ErrorCode(err))
	assert.Contains(t, err.Error(), "konrad (lock lock-1 since 2024-05-01T09:30:00Z)")
	assert.Contains(t, err.Error(), "requested by michael")

	fields := err.LogFields()
	assert.Equal(t, []string{"lock-1"}, fields["conflicting_ids"])
	assert.Equal(t, "michael", fields["owner"])
}

func TestInfrastructureError(t *testing.T) {
	err := infraError("save", errs.ErrDatabaseConnection)

	var infra *InfrastructureError
	assert.True(t, errors.As(err, &infra))
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.False(t, errs.IsLockConflictError(err))
	assert.Equal(t, "lock save failed: database connection error", err.Error())
	assert.Equal(t, errs.CodeDatabaseConnection, infra.LogFields()["error_code"])
}

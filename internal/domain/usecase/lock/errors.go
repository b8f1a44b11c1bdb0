package lock

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
)

// ConflictError reports that requested entries are held by another holder or
// transaction. It is an expected outcome, not a failure of the coordinator.
type ConflictError struct {
	Scope     entity.LockScope
	Requested []entity.LockEntry
	Conflicts []*entity.Lock
}

// Error implements the error interface for ConflictError
func (e *ConflictError) Error() string {
	holders := make([]string, 0, len(e.Conflicts))
	for _, l := range e.Conflicts {
		holders = append(holders, fmt.Sprintf("%s (lock %s since %s)", l.Holder.Name, l.ID, l.StartedAt.Format("2006-01-02T15:04:05Z07:00")))
	}
	return fmt.Sprintf("%s: requested by %s, held by %s", errs.ErrLockConflict, e.Scope.Owner(), strings.Join(holders, ", "))
}

// Is makes errors.Is(err, ErrLockConflict) match
func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrLockConflict
}

// LogFields returns a map of fields for structured logging
func (e *ConflictError) LogFields() map[string]any {
	ids := make([]string, 0, len(e.Conflicts))
	for _, l := range e.Conflicts {
		ids = append(ids, l.ID)
	}
	return map[string]any{
		"error_type":      "lock_conflict",
		"kind":            string(e.Scope.Kind),
		"owner":           e.Scope.Owner(),
		"requested":       len(e.Requested),
		"conflicting_ids": ids,
		"error_code":      errs.CodeLockConflict,
	}
}

// InfrastructureError wraps a store or transaction coordinator failure during acquisition.
// The lock was not granted.
type InfrastructureError struct {
	Op  string
	Err error
}

// Error implements the error interface for InfrastructureError
func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("lock %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *InfrastructureError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "lock_infrastructure",
		"operation":  e.Op,
		"error":      e.Err.Error(),
		"error_code": errs.ErrorCode(e.Err),
	}
}

func infraError(op string, err error) error {
	return &InfrastructureError{Op: op, Err: err}
}

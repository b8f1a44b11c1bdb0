package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInvalidHolder        = 4001
	CodeEmptyEntries         = 4002
	CodeInvalidLockEntry     = 4003
	CodeInvalidLockKind      = 4004
	CodeNoActiveTransaction  = 4005
	CodeConstraintViolation  = 4006
	CodeLockNotFound         = 4040
	CodeLockConflict         = 4090
	CodeTransactionCompleted = 4091

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidHolder is returned when a lock holder is missing or has an empty name
	ErrInvalidHolder = errors.New("lock holder must have a non-empty name")

	// ErrEmptyEntries is returned when a lock request names no entries
	ErrEmptyEntries = errors.New("lock requires at least one entry")

	// ErrInvalidLockEntry is returned when an entry lacks a document id or type
	ErrInvalidLockEntry = errors.New("invalid lock entry")

	// ErrInvalidLockKind is returned when the lock kind is not one of the allowed values
	ErrInvalidLockKind = errors.New("invalid lock kind")

	// ErrNoActiveTransaction is returned when a transaction-scoped lock is requested outside a transaction
	ErrNoActiveTransaction = errors.New("no active transaction")

	// ErrTransactionCompleted is returned when a callback is registered on a finished transaction
	ErrTransactionCompleted = errors.New("transaction already completed")

	// ErrLockConflict is returned when requested entries are held by another holder or transaction
	ErrLockConflict = errors.New("document is locked by another holder")

	// ErrLockNotFound is returned when the lock does not exist (anymore)
	ErrLockNotFound = errors.New("lock not found")

	// ErrDuplicateLockEntry is returned by a store when an entry is already claimed in the same kind
	ErrDuplicateLockEntry = errors.New("lock entry already claimed")

	// ErrSerializationFailure is returned when the store aborted a transaction due to concurrent access
	ErrSerializationFailure = errors.New("concurrent update, transaction aborted")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrLockConflict):
		return CodeLockConflict
	case errors.Is(err, ErrInvalidHolder):
		return CodeInvalidHolder
	case errors.Is(err, ErrEmptyEntries):
		return CodeEmptyEntries
	case errors.Is(err, ErrInvalidLockEntry):
		return CodeInvalidLockEntry
	case errors.Is(err, ErrInvalidLockKind):
		return CodeInvalidLockKind
	case errors.Is(err, ErrNoActiveTransaction):
		return CodeNoActiveTransaction
	case errors.Is(err, ErrTransactionCompleted):
		return CodeTransactionCompleted
	case errors.Is(err, ErrLockNotFound), errors.Is(err, ErrNotFound):
		return CodeLockNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// StoreError describes a failed lock store operation
type StoreError struct {
	Operation string
	LockID    string
	Err       error
}

// Error implements the error interface for StoreError
func (e *StoreError) Error() string {
	if e.LockID != "" {
		return fmt.Sprintf("lock store %s failed for lock %s: %v", e.Operation, e.LockID, e.Err)
	}
	return fmt.Sprintf("lock store %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_error",
		"operation":  e.Operation,
		"lock_id":    e.LockID,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewStoreError wraps a store failure with the operation that produced it
func NewStoreError(operation, lockID string, err error) error {
	return &StoreError{Operation: operation, LockID: lockID, Err: err}
}

// IsLockConflictError checks if the error reports a lock conflict
func IsLockConflictError(err error) bool {
	return errors.Is(err, ErrLockConflict)
}

// IsLockNotFoundError checks if the error is a lock not found error
func IsLockNotFoundError(err error) bool {
	return errors.Is(err, ErrLockNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrLockNotFound)
}

// IsValidationError checks if the error stems from a malformed lock request
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidHolder) ||
		errors.Is(err, ErrEmptyEntries) ||
		errors.Is(err, ErrInvalidLockEntry) ||
		errors.Is(err, ErrInvalidLockKind) ||
		errors.Is(err, ErrNoActiveTransaction) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsRetryableStoreError checks if a failed read-then-write may succeed when re-run
func IsRetryableStoreError(err error) bool {
	return errors.Is(err, ErrDuplicateLockEntry) || errors.Is(err, ErrSerializationFailure)
}

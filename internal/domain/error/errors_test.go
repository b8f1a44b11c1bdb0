package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrLockConflict.Error() != "document is locked by another holder" {
		t.Errorf("ErrLockConflict has unexpected message: %s", ErrLockConflict.Error())
	}
	if ErrNoActiveTransaction.Error() != "no active transaction" {
		t.Errorf("ErrNoActiveTransaction has unexpected message: %s", ErrNoActiveTransaction.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"LockConflict", ErrLockConflict, 4090},
		{"InvalidHolder", ErrInvalidHolder, 4001},
		{"EmptyEntries", ErrEmptyEntries, 4002},
		{"InvalidLockEntry", ErrInvalidLockEntry, 4003},
		{"InvalidLockKind", ErrInvalidLockKind, 4004},
		{"NoActiveTransaction", ErrNoActiveTransaction, 4005},
		{"ConstraintViolation", ErrConstraintViolation, 4006},
		{"LockNotFound", ErrLockNotFound, 4040},
		{"NotFound", ErrNotFound, 4040},
		{"TransactionCompleted", ErrTransactionCompleted, 4091},
		{"DatabaseConnection", ErrDatabaseConnection, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidHolder), 4001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	storeErr := NewStoreError("delete", "lock-1", ErrLockNotFound)

	expectedErrMsg := "lock store delete failed for lock lock-1: lock not found"
	if storeErr.Error() != expectedErrMsg {
		t.Errorf("StoreError.Error() = %s, want %s", storeErr.Error(), expectedErrMsg)
	}

	if !errors.Is(storeErr, ErrLockNotFound) {
		t.Errorf("errors.Is(storeErr, ErrLockNotFound) = false, want true")
	}

	var se *StoreError
	if !errors.As(storeErr, &se) {
		t.Fatalf("errors.As failed: not a *StoreError")
	}
	fields := se.LogFields()
	if fields["operation"] != "delete" || fields["error_code"] != CodeLockNotFound {
		t.Errorf("unexpected log fields: %v", fields)
	}

	noID := NewStoreError("find all", "", ErrDatabaseConnection)
	if noID.Error() != "lock store find all failed: database connection error" {
		t.Errorf("StoreError.Error() = %s", noID.Error())
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsLockConflictError(ErrInvalidHolder) {
		t.Errorf("IsLockConflictError(ErrInvalidHolder) = true, want false")
	}
	if !IsLockConflictError(fmt.Errorf("wrapped: %w", ErrLockConflict)) {
		t.Errorf("IsLockConflictError(wrapped) = false, want true")
	}

	if !IsNotFoundError(ErrLockNotFound) || !IsNotFoundError(ErrNotFound) {
		t.Errorf("IsNotFoundError should match both not found sentinels")
	}
	if !IsLockNotFoundError(NewStoreError("delete", "x", ErrLockNotFound)) {
		t.Errorf("IsLockNotFoundError(store error) = false, want true")
	}

	for _, err := range []error{ErrInvalidHolder, ErrEmptyEntries, ErrInvalidLockEntry, ErrInvalidLockKind, ErrNoActiveTransaction} {
		if !IsValidationError(err) {
			t.Errorf("IsValidationError(%v) = false, want true", err)
		}
	}
	if IsValidationError(ErrDatabaseConnection) {
		t.Errorf("IsValidationError(ErrDatabaseConnection) = true, want false")
	}

	if !IsRetryableStoreError(fmt.Errorf("save: %w", ErrDuplicateLockEntry)) {
		t.Errorf("duplicate entry should be retryable")
	}
	if !IsRetryableStoreError(ErrSerializationFailure) {
		t.Errorf("serialization failure should be retryable")
	}
	if IsRetryableStoreError(ErrLockConflict) {
		t.Errorf("lock conflict must not be retryable")
	}
}

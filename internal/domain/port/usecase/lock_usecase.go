package usecase

import (
	"context"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
)

// AcquireStatus tags the variant held by an AcquireResult
type AcquireStatus int

const (
	// AcquireStatusAcquired means the caller now holds every requested entry
	AcquireStatusAcquired AcquireStatus = iota
	// AcquireStatusConflicted means another holder or transaction owns some requested entry
	AcquireStatusConflicted
	// AcquireStatusFailed means the store or transaction coordinator failed
	AcquireStatusFailed
)

// String returns the status name
func (s AcquireStatus) String() string {
	switch s {
	case AcquireStatusAcquired:
		return "acquired"
	case AcquireStatusConflicted:
		return "conflicted"
	default:
		return "failed"
	}
}

// AcquireResult is the outcome of TryAcquire. Exactly one of Lock, Conflicts
// or Err is meaningful, as selected by Status.
type AcquireResult struct {
	Status    AcquireStatus
	Lock      *entity.Lock
	Conflicts []*entity.Lock
	Err       error
}

// Acquired builds a successful result
func Acquired(lock *entity.Lock) AcquireResult {
	return AcquireResult{Status: AcquireStatusAcquired, Lock: lock}
}

// Conflicted builds a conflict result
func Conflicted(conflicts []*entity.Lock) AcquireResult {
	return AcquireResult{Status: AcquireStatusConflicted, Conflicts: conflicts}
}

// Failed builds a failure result
func Failed(err error) AcquireResult {
	return AcquireResult{Status: AcquireStatusFailed, Err: err}
}

// LockUseCase defines the lock coordination operations offered to application code
type LockUseCase interface {
	// Acquire grants holder every entry, creating, augmenting or reusing a lock.
	// Transaction-scoped locks bind to the ambient transaction carried by ctx.
	//
	// Possible errors:
	// - ErrLockConflict (as *lock.ConflictError): If another holder or transaction owns an entry
	// - ErrInvalidHolder, ErrEmptyEntries, ErrInvalidLockEntry, ErrInvalidLockKind: On malformed input
	// - ErrNoActiveTransaction: If a transaction-scoped lock is requested outside a transaction
	// - *lock.InfrastructureError: If the store or the transaction coordinator failed
	Acquire(ctx context.Context, holder entity.Holder, kind entity.LockKind, reason string, entries []entity.LockEntry) (*entity.Lock, error)

	// TryAcquire is Acquire reporting its outcome as a tagged result
	TryAcquire(ctx context.Context, holder entity.Holder, kind entity.LockKind, reason string, entries []entity.LockEntry) AcquireResult

	// Release deletes the lock in an independent unit of work.
	// It returns false on any failure, including an already released lock.
	Release(ctx context.Context, lock *entity.Lock) bool

	// ReleaseByID releases the lock with the given id, see Release
	ReleaseByID(ctx context.Context, id string) bool

	// FindConflicts returns the locks that would block scope from acquiring entries
	FindConflicts(ctx context.Context, scope entity.LockScope, entries []entity.LockEntry) ([]*entity.Lock, error)

	// FindAll returns every active lock
	FindAll(ctx context.Context) ([]*entity.Lock, error)

	// FindByHolder returns the locks held by the named holder
	FindByHolder(ctx context.Context, holderName string) ([]*entity.Lock, error)

	// FindByID returns one lock or ErrLockNotFound
	FindByID(ctx context.Context, id string) (*entity.Lock, error)
}

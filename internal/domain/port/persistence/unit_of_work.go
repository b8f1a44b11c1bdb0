package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// against the lock store to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context.
	// A transaction already carried by ctx is not joined: the returned context
	// is bound to a fresh, independent transaction.
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetLockStore returns a lock store bound to the current transaction
	GetLockStore(ctx context.Context) LockStore
}

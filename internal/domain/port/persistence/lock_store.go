package persistence

import (
	"context"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
)

// LockStore defines the persistence queries over locks.
// Every method reads or writes the store directly; implementations must not
// cache lock state between calls.
type LockStore interface {
	// ByHolder returns all locks whose holder has the given name
	ByHolder(ctx context.Context, holderName string) ([]*entity.Lock, error)

	// ByTransaction returns all locks owned by the transaction
	ByTransaction(ctx context.Context, transactionID string) ([]*entity.Lock, error)

	// ByEntries returns every lock sharing at least one entry with entries
	ByEntries(ctx context.Context, entries []entity.LockEntry) ([]*entity.Lock, error)

	// ConflictsForTransaction returns transaction-scoped locks overlapping entries
	// that are owned by a transaction other than transactionID
	ConflictsForTransaction(ctx context.Context, transactionID string, entries []entity.LockEntry) ([]*entity.Lock, error)

	// ConflictsForHolder returns manual locks overlapping entries that are held
	// by a holder other than holderName
	ConflictsForHolder(ctx context.Context, holderName string, entries []entity.LockEntry) ([]*entity.Lock, error)

	// ByID returns the lock with the given id
	//
	// Possible errors:
	// - ErrLockNotFound: If no lock has this id
	ByID(ctx context.Context, id string) (*entity.Lock, error)

	// FindAll returns every active lock ordered by start time
	FindAll(ctx context.Context) ([]*entity.Lock, error)

	// Save persists a new lock with its entries
	//
	// Possible errors:
	// - ErrDuplicateLockEntry: If one of the entries is already claimed by a lock of the same kind
	// - ErrSerializationFailure: If the store aborted the write because of a concurrent update
	// - ErrDatabaseConnection: If database connection fails
	Save(ctx context.Context, lock *entity.Lock) error

	// DeleteByID removes the lock and its entries
	//
	// Possible errors:
	// - ErrLockNotFound: If no lock has this id
	DeleteByID(ctx context.Context, id string) error
}

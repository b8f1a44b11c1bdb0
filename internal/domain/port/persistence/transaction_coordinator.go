package persistence

import "context"

// TransactionStatus is the terminal outcome of an ambient transaction
type TransactionStatus int

const (
	// StatusCommitted reports a successful commit
	StatusCommitted TransactionStatus = iota
	// StatusRolledBack reports a rollback, including failed commits
	StatusRolledBack
)

// String returns the status name used in logs
func (s TransactionStatus) String() string {
	if s == StatusCommitted {
		return "committed"
	}
	return "rolled_back"
}

// Synchronization is invoked exactly once when the transaction it was
// registered with reaches a terminal state
type Synchronization interface {
	AfterCompletion(ctx context.Context, status TransactionStatus)
}

// SynchronizationFunc adapts a function to Synchronization
type SynchronizationFunc func(ctx context.Context, status TransactionStatus)

// AfterCompletion calls f
func (f SynchronizationFunc) AfterCompletion(ctx context.Context, status TransactionStatus) {
	f(ctx, status)
}

// TransactionCoordinator exposes the ambient transaction to the lock coordinator
type TransactionCoordinator interface {
	// CurrentTransactionID returns the id of the active transaction carried by ctx
	CurrentTransactionID(ctx context.Context) (string, bool)

	// RegisterSynchronization enlists s with the active transaction carried by ctx
	//
	// Possible errors:
	// - ErrNoActiveTransaction: If ctx carries no transaction
	// - ErrTransactionCompleted: If the transaction already reached a terminal state
	RegisterSynchronization(ctx context.Context, s Synchronization) error
}

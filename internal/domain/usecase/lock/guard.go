package lock

import (
	"context"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/usecase"
)

// TransactionRunner brackets a function in an ambient transaction. prepare
// runs under the transaction's id before its unit of work is begun.
type TransactionRunner interface {
	WithPreparedTransaction(ctx context.Context, prepare, fn func(ctx context.Context) error) error
}

// Guard runs business operations under transaction-scoped locks
type Guard struct {
	locks        usecase.LockUseCase
	transactions TransactionRunner
}

// NewGuard creates a Guard
func NewGuard(locks usecase.LockUseCase, transactions TransactionRunner) *Guard {
	return &Guard{locks: locks, transactions: transactions}
}

// WithLocks opens a transaction, locks entries for it and runs fn. The locks
// are released when the transaction ends, whatever fn returns.
// A conflict is returned as *ConflictError before fn runs.
//
// The locks are taken before the transaction holds a store connection, so
// guarded operations cannot starve acquisition of connections. When ctx
// already carries a transaction the locks join it.
func (g *Guard) WithLocks(
	ctx context.Context,
	holder entity.Holder,
	reason string,
	entries []entity.LockEntry,
	fn func(ctx context.Context, lock *entity.Lock) error,
) error {
	var lock *entity.Lock
	return g.transactions.WithPreparedTransaction(ctx,
		func(txCtx context.Context) error {
			var err error
			lock, err = g.locks.Acquire(txCtx, holder, entity.LockKindTransactionScoped, reason, entries)
			return err
		},
		func(txCtx context.Context) error {
			return fn(txCtx, lock)
		},
	)
}

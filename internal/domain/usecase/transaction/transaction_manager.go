package transaction

import (
	"context"
	"fmt"
	"sync"

	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/persistence"
)

type contextKey string

const stateKey contextKey = "ambient_transaction"

// state is the bookkeeping of one ambient transaction
type state struct {
	id string

	mu        sync.Mutex
	syncs     []persistence.Synchronization
	completed bool
}

// TransactionManager brackets business operations in a unit of work and
// notifies registered synchronizations exactly once when it ends
type TransactionManager struct {
	uow    persistence.UnitOfWork
	ids    coreport.IDGenerator
	logger coreport.Logger
}

var _ persistence.TransactionCoordinator = (*TransactionManager)(nil)

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(
	uow persistence.UnitOfWork,
	ids coreport.IDGenerator,
	logger coreport.Logger,
) *TransactionManager {
	if uow == nil {
		panic("Transaction manager requires a unit of work")
	}

	return &TransactionManager{
		uow:    uow,
		ids:    ids,
		logger: logger,
	}
}

// WithTransaction runs fn inside an ambient transaction. A call made with a
// context that already carries an active transaction joins it.
//
// fn returning an error or panicking rolls the transaction back; otherwise it
// is committed. A failed commit counts as a rollback. In every case each
// registered synchronization is invoked once, after the outcome is final.
func (m *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.WithPreparedTransaction(ctx, nil, fn)
}

// WithPreparedTransaction is WithTransaction with a prepare step that runs
// under the transaction's id before the unit of work is begun, so prepare
// never competes with the transaction for a store connection. prepare may
// register synchronizations. If prepare fails, fn does not run and the
// transaction completes as rolled back without ever being begun.
func (m *TransactionManager) WithPreparedTransaction(
	ctx context.Context,
	prepare func(ctx context.Context) error,
	fn func(ctx context.Context) error,
) (err error) {
	if st, ok := ctx.Value(stateKey).(*state); ok && !st.isCompleted() {
		if prepare != nil {
			if err := prepare(ctx); err != nil {
				return err
			}
		}
		return fn(ctx)
	}

	st := &state{id: m.ids.NewID()}
	stCtx := context.WithValue(ctx, stateKey, st)
	// callbacks outlive the caller's deadline
	completionCtx := context.WithoutCancel(ctx)

	begun := false
	var txCtx context.Context

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Panic inside transaction, rolling back", map[string]any{
				"transaction_id": st.id,
				"panic":          fmt.Sprint(r),
			})
			if begun {
				m.rollback(txCtx, st)
			}
			m.complete(completionCtx, st, persistence.StatusRolledBack)
			panic(r)
		}
	}()

	if prepare != nil {
		if err = prepare(stCtx); err != nil {
			m.complete(completionCtx, st, persistence.StatusRolledBack)
			return err
		}
	}

	txCtx, err = m.uow.Begin(stCtx)
	if err != nil {
		m.complete(completionCtx, st, persistence.StatusRolledBack)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	begun = true
	txCtx = context.WithValue(txCtx, stateKey, st)

	m.logger.Debug("Transaction started", map[string]any{"transaction_id": st.id})

	if err = fn(txCtx); err != nil {
		m.rollback(txCtx, st)
		m.complete(completionCtx, st, persistence.StatusRolledBack)
		return err
	}

	if err = m.uow.Commit(txCtx); err != nil {
		m.logger.Error("Failed to commit transaction", map[string]any{
			"transaction_id": st.id,
			"error":          err.Error(),
		})
		m.rollback(txCtx, st)
		m.complete(completionCtx, st, persistence.StatusRolledBack)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.complete(completionCtx, st, persistence.StatusCommitted)
	return nil
}

// CurrentTransactionID returns the id of the active transaction in ctx
func (m *TransactionManager) CurrentTransactionID(ctx context.Context) (string, bool) {
	st, ok := ctx.Value(stateKey).(*state)
	if !ok || st.isCompleted() {
		return "", false
	}
	return st.id, true
}

// RegisterSynchronization enlists s with the active transaction in ctx
func (m *TransactionManager) RegisterSynchronization(ctx context.Context, s persistence.Synchronization) error {
	st, ok := ctx.Value(stateKey).(*state)
	if !ok {
		return errs.ErrNoActiveTransaction
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.completed {
		return fmt.Errorf("%w: %s", errs.ErrTransactionCompleted, st.id)
	}
	st.syncs = append(st.syncs, s)
	return nil
}

func (m *TransactionManager) rollback(ctx context.Context, st *state) {
	if err := m.uow.Rollback(ctx); err != nil {
		m.logger.Warn("Failed to roll back transaction", map[string]any{
			"transaction_id": st.id,
			"error":          err.Error(),
		})
	}
}

// complete marks st finished and invokes its synchronizations in registration order
func (m *TransactionManager) complete(ctx context.Context, st *state, status persistence.TransactionStatus) {
	st.mu.Lock()
	if st.completed {
		st.mu.Unlock()
		return
	}
	st.completed = true
	syncs := st.syncs
	st.syncs = nil
	st.mu.Unlock()

	m.logger.Debug("Transaction completed", map[string]any{
		"transaction_id":   st.id,
		"status":           status.String(),
		"synchronizations": len(syncs),
	})

	for _, s := range syncs {
		m.invoke(ctx, st, s, status)
	}
}

// invoke shields the remaining synchronizations from a panicking one
func (m *TransactionManager) invoke(ctx context.Context, st *state, s persistence.Synchronization, status persistence.TransactionStatus) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Transaction synchronization panicked", map[string]any{
				"transaction_id": st.id,
				"panic":          fmt.Sprint(r),
			})
		}
	}()
	s.AfterCompletion(ctx, status)
}

func (s *state) isCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

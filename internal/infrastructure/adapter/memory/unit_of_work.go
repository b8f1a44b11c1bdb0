package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/persistence"
)

type contextKey string

const txKey contextKey = "memory_tx"

var errNoTransaction = errors.New("no transaction found in context")

// tx records the undo steps of one unit of work
type tx struct {
	mu   sync.Mutex
	undo []func()
	done bool
}

func (t *tx) record(step func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.undo = append(t.undo, step)
}

// UnitOfWork applies writes to the Store immediately and reverts them on Rollback
type UnitOfWork struct {
	store  *Store
	logger coreport.Logger
}

// NewUnitOfWork creates a unit of work over store
func NewUnitOfWork(store *Store, logger coreport.Logger) *UnitOfWork {
	return &UnitOfWork{store: store, logger: logger}
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// Begin starts a new unit of work, independent of any carried by ctx
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, txKey, &tx{}), nil
}

// Commit discards the undo journal
func (u *UnitOfWork) Commit(ctx context.Context) error {
	t, ok := ctx.Value(txKey).(*tx)
	if !ok || t == nil {
		return errNoTransaction
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.undo = nil
	t.done = true
	return nil
}

// Rollback reverts every write of the unit of work in reverse order
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	t, ok := ctx.Value(txKey).(*tx)
	if !ok || t == nil {
		return errNoTransaction
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		u.logger.Warn("Transaction has already been committed or rolled back", nil)
		return nil
	}

	u.store.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	u.store.mu.Unlock()

	t.undo = nil
	t.done = true
	return nil
}

// GetLockStore returns a store view bound to the unit of work in ctx
func (u *UnitOfWork) GetLockStore(ctx context.Context) persistence.LockStore {
	t, ok := ctx.Value(txKey).(*tx)
	if !ok || t == nil {
		return u.store
	}
	return &txStore{Store: u.store, tx: t}
}

// txStore journals writes so they can be undone
type txStore struct {
	*Store
	tx *tx
}

// Save stores the lock and journals its removal
func (s *txStore) Save(ctx context.Context, lock *entity.Lock) error {
	if err := s.Store.Save(ctx, lock); err != nil {
		return err
	}
	id := lock.ID
	s.tx.record(func() { s.Store.remove(id) })
	return nil
}

// DeleteByID removes the lock and journals its restoration
func (s *txStore) DeleteByID(_ context.Context, id string) error {
	s.Store.mu.Lock()
	removed, ok := s.Store.remove(id)
	s.Store.mu.Unlock()
	if !ok {
		return errs.ErrLockNotFound
	}
	s.tx.record(func() { s.Store.restore(removed) })
	return nil
}

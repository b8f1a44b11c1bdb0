package memory

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	desc1 = entity.LockEntry{DocumentID: "DESC-1", DocumentType: entity.DocumentTypeDescription}
	desc2 = entity.LockEntry{DocumentID: "DESC-2", DocumentType: entity.DocumentTypeDescription}
)

func manualLock(id, holder string, startedAt time.Time, entries ...entity.LockEntry) *entity.Lock {
	return &entity.Lock{
		ID:        id,
		Kind:      entity.LockKindManual,
		Holder:    entity.Holder{Name: holder},
		StartedAt: startedAt,
		Entries:   entries,
	}
}

func txLock(id, txID string, entries ...entity.LockEntry) *entity.Lock {
	return &entity.Lock{
		ID:            id,
		Kind:          entity.LockKindTransactionScoped,
		Holder:        entity.Holder{Name: "importer"},
		TransactionID: txID,
		StartedAt:     time.Now(),
		Entries:       entries,
	}
}

func TestStore_Queries(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, manualLock("m1", "konrad", base, desc1)))
	require.NoError(t, store.Save(ctx, manualLock("m2", "konrad", base.Add(time.Minute), desc2)))
	require.NoError(t, store.Save(ctx, txLock("t1", "tx-1", desc1)))

	byHolder, err := store.ByHolder(ctx, "konrad")
	require.NoError(t, err)
	require.Len(t, byHolder, 2)
	assert.Equal(t, "m1", byHolder[0].ID)

	byTx, err := store.ByTransaction(ctx, "tx-1")
	require.NoError(t, err)
	require.Len(t, byTx, 1)
	assert.Equal(t, "t1", byTx[0].ID)

	byEntries, err := store.ByEntries(ctx, []entity.LockEntry{desc1})
	require.NoError(t, err)
	assert.Len(t, byEntries, 2)

	conflicts, err := store.ConflictsForHolder(ctx, "michael", []entity.LockEntry{desc1})
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "m1", conflicts[0].ID)

	conflicts, err = store.ConflictsForHolder(ctx, "konrad", []entity.LockEntry{desc1, desc2})
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	conflicts, err = store.ConflictsForTransaction(ctx, "tx-2", []entity.LockEntry{desc1})
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "t1", conflicts[0].ID)

	conflicts, err = store.ConflictsForTransaction(ctx, "tx-1", []entity.LockEntry{desc1})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestStore_SaveEnforcesUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Save(ctx, manualLock("m1", "konrad", time.Now(), desc1)))

	err := store.Save(ctx, manualLock("m2", "michael", time.Now(), desc1))
	assert.ErrorIs(t, err, errs.ErrDuplicateLockEntry)

	// a transaction-scoped claim lives in its own namespace
	assert.NoError(t, store.Save(ctx, txLock("t1", "tx-1", desc1)))

	err = store.Save(ctx, manualLock("m1", "konrad", time.Now(), desc2))
	assert.ErrorIs(t, err, errs.ErrConstraintViolation)

	err = store.Save(ctx, manualLock("m3", "", time.Now(), desc2))
	assert.ErrorIs(t, err, errs.ErrInvalidHolder)
}

func TestStore_DeleteByID(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Save(ctx, manualLock("m1", "konrad", time.Now(), desc1)))

	require.NoError(t, store.DeleteByID(ctx, "m1"))
	assert.ErrorIs(t, store.DeleteByID(ctx, "m1"), errs.ErrLockNotFound)

	_, err := store.ByID(ctx, "m1")
	assert.ErrorIs(t, err, errs.ErrLockNotFound)

	// the entry is free again
	assert.NoError(t, store.Save(ctx, manualLock("m2", "michael", time.Now(), desc1)))
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Save(ctx, manualLock("m1", "konrad", time.Now(), desc1)))

	l, err := store.ByID(ctx, "m1")
	require.NoError(t, err)
	l.Entries[0] = desc2

	again, err := store.ByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, desc1, again.Entries[0])
}

func TestUnitOfWork_Rollback(t *testing.T) {
	store := NewStore()
	uow := NewUnitOfWork(store, logger.NewNoopLogger())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, manualLock("keep", "konrad", time.Now(), desc2)))

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	txStore := uow.GetLockStore(txCtx)
	require.NoError(t, txStore.Save(txCtx, manualLock("m1", "konrad", time.Now(), desc1)))
	require.NoError(t, txStore.DeleteByID(txCtx, "keep"))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, uow.Rollback(txCtx))

	_, err = store.ByID(ctx, "m1")
	assert.ErrorIs(t, err, errs.ErrLockNotFound)
	_, err = store.ByID(ctx, "keep")
	assert.NoError(t, err)

	// a second rollback is a no-op
	assert.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWork_Commit(t *testing.T) {
	store := NewStore()
	uow := NewUnitOfWork(store, logger.NewNoopLogger())
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.GetLockStore(txCtx).Save(txCtx, manualLock("m1", "konrad", time.Now(), desc1)))
	require.NoError(t, uow.Commit(txCtx))
	require.NoError(t, uow.Rollback(txCtx))

	_, err = store.ByID(ctx, "m1")
	assert.NoError(t, err)

	assert.Error(t, uow.Commit(ctx))
	assert.Error(t, uow.Rollback(ctx))
}

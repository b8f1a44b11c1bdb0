package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LockRepository implements persistence.LockStore on PostgreSQL through gorm
type LockRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.LockStore = (*LockRepository)(nil)

// NewLockRepository creates a new lock repository bound to db, which may be a transaction
func NewLockRepository(db *gorm.DB, logger coreport.Logger) *LockRepository {
	return &LockRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// ByHolder returns all locks whose holder has the given name
func (r *LockRepository) ByHolder(ctx context.Context, holderName string) ([]*entity.Lock, error) {
	return r.find(ctx, "by_holder", func(q *gorm.DB) *gorm.DB {
		return q.Where("holder_name = ?", holderName)
	})
}

// ByTransaction returns all locks owned by the transaction
func (r *LockRepository) ByTransaction(ctx context.Context, transactionID string) ([]*entity.Lock, error) {
	return r.find(ctx, "by_transaction", func(q *gorm.DB) *gorm.DB {
		return q.Where("kind = ? AND transaction_id = ?", string(entity.LockKindTransactionScoped), transactionID)
	})
}

// ByEntries returns every lock sharing at least one entry with entries
func (r *LockRepository) ByEntries(ctx context.Context, entries []entity.LockEntry) ([]*entity.Lock, error) {
	if len(entries) == 0 {
		return []*entity.Lock{}, nil
	}
	return r.find(ctx, "by_entries", func(q *gorm.DB) *gorm.DB {
		return q.Where("id IN (?)", r.lockIDsCovering(ctx, entries, ""))
	})
}

// ConflictsForTransaction returns transaction-scoped locks of other transactions overlapping entries
func (r *LockRepository) ConflictsForTransaction(
	ctx context.Context,
	transactionID string,
	entries []entity.LockEntry,
) ([]*entity.Lock, error) {
	if len(entries) == 0 {
		return []*entity.Lock{}, nil
	}
	kind := entity.LockKindTransactionScoped
	return r.find(ctx, "conflicts_for_transaction", func(q *gorm.DB) *gorm.DB {
		return q.Where("kind = ? AND transaction_id <> ?", string(kind), transactionID).
			Where("id IN (?)", r.lockIDsCovering(ctx, entries, kind))
	})
}

// ConflictsForHolder returns manual locks of other holders overlapping entries
func (r *LockRepository) ConflictsForHolder(
	ctx context.Context,
	holderName string,
	entries []entity.LockEntry,
) ([]*entity.Lock, error) {
	if len(entries) == 0 {
		return []*entity.Lock{}, nil
	}
	kind := entity.LockKindManual
	return r.find(ctx, "conflicts_for_holder", func(q *gorm.DB) *gorm.DB {
		return q.Where("kind = ? AND holder_name <> ?", string(kind), holderName).
			Where("id IN (?)", r.lockIDsCovering(ctx, entries, kind))
	})
}

// ByID returns the lock with the given id
func (r *LockRepository) ByID(ctx context.Context, id string) (*entity.Lock, error) {
	var row model.DocumentLock
	err := r.db.WithContext(ctx).
		Preload("Entries", orderEntries).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrLockNotFound
		}
		return nil, r.handleDatabaseError("by_id", id, err)
	}
	return toEntity(&row), nil
}

// FindAll returns every active lock ordered by start time
func (r *LockRepository) FindAll(ctx context.Context) ([]*entity.Lock, error) {
	return r.find(ctx, "find_all", func(q *gorm.DB) *gorm.DB { return q })
}

// Save inserts the lock and its entries. Entry rows carry the lock kind so the
// unique claim index rejects a second lock of the same kind on an entry.
func (r *LockRepository) Save(ctx context.Context, lock *entity.Lock) error {
	if err := lock.Validate(); err != nil {
		return err
	}

	row := toModel(lock)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return r.handleDatabaseError("save", lock.ID, err)
	}

	r.logger.Debug("Lock persisted", map[string]any{
		"lock_id": lock.ID,
		"kind":    string(lock.Kind),
		"holder":  lock.Holder.Name,
		"entries": len(lock.Entries),
	})
	return nil
}

// DeleteByID removes the lock and its entries
func (r *LockRepository) DeleteByID(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("lock_id = ?", id).Delete(&model.DocumentLockEntry{}).Error; err != nil {
		return r.handleDatabaseError("delete_entries", id, err)
	}

	result := db.Where("id = ?", id).Delete(&model.DocumentLock{})
	if result.Error != nil {
		return r.handleDatabaseError("delete", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrLockNotFound
	}
	return nil
}

// find loads the locks selected by scope with their entries
func (r *LockRepository) find(ctx context.Context, op string, scope func(*gorm.DB) *gorm.DB) ([]*entity.Lock, error) {
	var rows []model.DocumentLock
	err := scope(r.db.WithContext(ctx).Model(&model.DocumentLock{})).
		Preload("Entries", orderEntries).
		Order("started_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError(op, "", err)
	}

	locks := make([]*entity.Lock, 0, len(rows))
	for i := range rows {
		locks = append(locks, toEntity(&rows[i]))
	}
	return locks, nil
}

// lockIDsCovering builds the subquery selecting ids of locks claiming any of entries.
// An empty kind matches entries of both kinds.
func (r *LockRepository) lockIDsCovering(ctx context.Context, entries []entity.LockEntry, kind entity.LockKind) *gorm.DB {
	pairs := make([][]any, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, []any{e.DocumentID, string(e.DocumentType)})
	}

	sub := r.db.Session(&gorm.Session{NewDB: true}).WithContext(ctx).
		Model(&model.DocumentLockEntry{}).
		Select("lock_id").
		Where("(document_id, document_type) IN ?", pairs)
	if kind != "" {
		sub = sub.Where("kind = ?", string(kind))
	}
	return sub
}

// handleDatabaseError classifies err, logs it and wraps it in a StoreError
func (r *LockRepository) handleDatabaseError(op, lockID string, err error) error {
	mapped := r.errorClassifier.ToDomainError(err)
	storeErr := &errs.StoreError{Operation: op, LockID: lockID, Err: mapped}

	fields := storeErr.LogFields()
	if errs.IsRetryableStoreError(mapped) {
		r.logger.Debug("Lock store write lost a race", fields)
	} else {
		r.logger.Error("Lock store operation failed", fields)
	}
	return storeErr
}

func orderEntries(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func toModel(lock *entity.Lock) *model.DocumentLock {
	row := &model.DocumentLock{
		ID:         lock.ID,
		Kind:       string(lock.Kind),
		HolderName: lock.Holder.Name,
		Reason:     lock.Reason,
		StartedAt:  lock.StartedAt,
		Entries:    make([]model.DocumentLockEntry, 0, len(lock.Entries)),
	}
	if lock.TransactionID != "" {
		txID := lock.TransactionID
		row.TransactionID = &txID
	}
	for _, e := range lock.Entries {
		row.Entries = append(row.Entries, model.DocumentLockEntry{
			LockID:       lock.ID,
			DocumentID:   e.DocumentID,
			DocumentType: string(e.DocumentType),
			Kind:         string(lock.Kind),
		})
	}
	return row
}

func toEntity(row *model.DocumentLock) *entity.Lock {
	lock := &entity.Lock{
		ID:        row.ID,
		Kind:      entity.LockKind(row.Kind),
		Holder:    entity.Holder{Name: row.HolderName},
		Reason:    row.Reason,
		StartedAt: row.StartedAt.UTC(),
		Entries:   make([]entity.LockEntry, 0, len(row.Entries)),
	}
	if row.TransactionID != nil {
		lock.TransactionID = *row.TransactionID
	}
	for _, e := range row.Entries {
		lock.Entries = append(lock.Entries, entity.LockEntry{
			DocumentID:   e.DocumentID,
			DocumentType: entity.DocumentType(e.DocumentType),
		})
	}
	return lock
}

package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific constraints and indexes
type AdvancedIndexManager struct {
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{logger: logger}
}

type statement struct {
	name     string
	sql      string
	required bool
}

var lockStatements = []statement{
	{
		name:     "drop_chk_document_locks_kind",
		sql:      `ALTER TABLE document_locks DROP CONSTRAINT IF EXISTS chk_document_locks_kind`,
		required: true,
	},
	{
		name: "chk_document_locks_kind",
		sql: `ALTER TABLE document_locks ADD CONSTRAINT chk_document_locks_kind
			CHECK (kind IN ('manual', 'transaction_scoped'))`,
		required: true,
	},
	{
		name:     "drop_chk_document_locks_transaction_id",
		sql:      `ALTER TABLE document_locks DROP CONSTRAINT IF EXISTS chk_document_locks_transaction_id`,
		required: true,
	},
	{
		// a transaction id is present exactly when the lock is transaction scoped
		name: "chk_document_locks_transaction_id",
		sql: `ALTER TABLE document_locks ADD CONSTRAINT chk_document_locks_transaction_id
			CHECK ((kind = 'manual') = (transaction_id IS NULL))`,
		required: true,
	},
	{
		name: "idx_document_lock_entries_document",
		sql: `CREATE INDEX IF NOT EXISTS idx_document_lock_entries_document
			ON document_lock_entries (document_id, document_type)`,
		required: true,
	},
	{
		name: "idx_document_locks_tx_scoped",
		sql: `CREATE INDEX IF NOT EXISTS idx_document_locks_tx_scoped
			ON document_locks (transaction_id)
			WHERE kind = 'transaction_scoped'`,
		required: true,
	},
	{
		name: "fillfactor_document_lock_entries",
		sql:  `ALTER TABLE document_lock_entries SET (fillfactor = 80)`,
	},
	{
		name: "fillfactor_document_locks",
		sql:  `ALTER TABLE document_locks SET (fillfactor = 80)`,
	},
}

// Apply creates the lock constraints and indexes. Storage tuning that fails is
// logged and skipped.
func (m *AdvancedIndexManager) Apply(ctx context.Context, tx *gorm.DB) error {
	m.logger.Info("Creating lock constraints and indexes", nil)

	db := tx.WithContext(ctx)
	for _, s := range lockStatements {
		if s.required {
			if err := db.Exec(s.sql).Error; err != nil {
				m.logger.Error("Failed to apply schema statement", map[string]any{
					"statement": s.name,
					"error":     err.Error(),
				})
				return err
			}
			continue
		}

		// a failed statement aborts the transaction unless rolled back to a savepoint
		if err := db.SavePoint(s.name).Error; err != nil {
			return err
		}
		if err := db.Exec(s.sql).Error; err != nil {
			m.logger.Warn("Skipping storage tuning statement", map[string]any{
				"statement": s.name,
				"error":     err.Error(),
			})
			if err := db.RollbackTo(s.name).Error; err != nil {
				return err
			}
		}
	}

	m.logger.Info("Lock constraints and indexes created", nil)
	return nil
}

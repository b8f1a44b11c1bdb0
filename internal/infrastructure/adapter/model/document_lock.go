package model

import (
	"time"
)

// DocumentLock represents the database model for a lock
type DocumentLock struct {
	ID            string              `gorm:"primaryKey;type:varchar(36)"`
	Kind          string              `gorm:"type:varchar(32);not null;index:idx_document_locks_holder_kind,priority:2"`
	HolderName    string              `gorm:"type:varchar(255);not null;index:idx_document_locks_holder_kind,priority:1"`
	Reason        string              `gorm:"type:text;not null;default:''"`
	TransactionID *string             `gorm:"type:varchar(64);index:idx_document_locks_transaction_id"`
	StartedAt     time.Time           `gorm:"not null;index:idx_document_locks_started_at"`
	CreatedAt     time.Time           `gorm:"autoCreateTime"`
	Entries       []DocumentLockEntry `gorm:"foreignKey:LockID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for DocumentLock
func (DocumentLock) TableName() string {
	return "document_locks"
}

// DocumentLockEntry is one protected record of a lock. The unique index on
// (document_id, document_type, kind) makes the second of two racing inserts fail.
type DocumentLockEntry struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	LockID       string `gorm:"type:varchar(36);not null;index:idx_document_lock_entries_lock_id"`
	DocumentID   string `gorm:"type:varchar(255);not null;uniqueIndex:ux_document_lock_entries_claim,priority:1"`
	DocumentType string `gorm:"type:varchar(64);not null;uniqueIndex:ux_document_lock_entries_claim,priority:2"`
	Kind         string `gorm:"type:varchar(32);not null;uniqueIndex:ux_document_lock_entries_claim,priority:3"`
}

// TableName specifies the table name for DocumentLockEntry
func (DocumentLockEntry) TableName() string {
	return "document_lock_entries"
}

package dto

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEntries(t *testing.T) {
	entries, err := ToEntries([]LockEntryDTO{
		{DocumentID: "DESC-1", DocumentType: "description"},
		{DocumentID: " KOD-5 ", DocumentType: "cultural_object"},
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.LockEntry{
		{DocumentID: "DESC-1", DocumentType: entity.DocumentTypeDescription},
		{DocumentID: "KOD-5", DocumentType: entity.DocumentTypeCulturalObject},
	}, entries)

	_, err = ToEntries([]LockEntryDTO{{DocumentID: "", DocumentType: "description"}})
	assert.ErrorIs(t, err, errs.ErrInvalidLockEntry)
}

func TestFromLock(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := &entity.Lock{
		ID:        "lock-1",
		Kind:      entity.LockKindManual,
		Holder:    entity.Holder{Name: "konrad"},
		Reason:    "editing",
		StartedAt: now.Add(-3 * time.Minute),
		Entries:   []entity.LockEntry{{DocumentID: "DESC-1", DocumentType: entity.DocumentTypeDescription}},
	}

	resp := FromLock(l, now)
	assert.Equal(t, "lock-1", resp.ID)
	assert.Equal(t, "manual", resp.Kind)
	assert.Equal(t, "konrad", resp.Holder)
	assert.Equal(t, "3 minutes ago", resp.Since)
	assert.Empty(t, resp.TransactionID)
	assert.Equal(t, []LockEntryDTO{{DocumentID: "DESC-1", DocumentType: "description"}}, resp.Entries)

	assert.Empty(t, FromLocks(nil, now))
}

package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLockEntry(t *testing.T) {
	t.Run("Valid entry", func(t *testing.T) {
		e, err := NewLockEntry(" KOD-5 ", DocumentTypeDescription)
		require.NoError(t, err)
		assert.Equal(t, "KOD-5", e.DocumentID)
		assert.Equal(t, DocumentTypeDescription, e.DocumentType)
	})

	t.Run("Missing id", func(t *testing.T) {
		_, err := NewLockEntry("", DocumentTypeDescription)
		assert.ErrorIs(t, err, errs.ErrInvalidLockEntry)
	})

	t.Run("Missing type", func(t *testing.T) {
		_, err := NewLockEntry("KOD-5", "")
		assert.ErrorIs(t, err, errs.ErrInvalidLockEntry)
	})
}

func TestLockEntryString(t *testing.T) {
	e := LockEntry{DocumentID: "KOD-5", DocumentType: DocumentTypeDescription}
	assert.Equal(t, "description:KOD-5", e.String())

	parsed, err := ParseLockEntry(e.String())
	require.NoError(t, err)
	assert.Equal(t, e, parsed)

	_, err = ParseLockEntry("no-separator")
	assert.ErrorIs(t, err, errs.ErrInvalidLockEntry)
}

func TestEntryEquality(t *testing.T) {
	a := LockEntry{DocumentID: "KOD-5", DocumentType: DocumentTypeDescription}
	b := LockEntry{DocumentID: "KOD-5", DocumentType: DocumentTypeDescription}
	c := LockEntry{DocumentID: "KOD-5", DocumentType: DocumentTypeCulturalObject}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	set := NewEntrySet(a)
	assert.True(t, set.Contains(b))
	assert.False(t, set.Contains(c))
}

func TestDeduplicateEntries(t *testing.T) {
	a := LockEntry{DocumentID: "A", DocumentType: DocumentTypeDescription}
	b := LockEntry{DocumentID: "B", DocumentType: DocumentTypeDescription}

	out := DeduplicateEntries([]LockEntry{b, a, b, a})
	assert.Equal(t, []LockEntry{b, a}, out)
	assert.Empty(t, DeduplicateEntries(nil))
}

func TestSubtractEntries(t *testing.T) {
	a := LockEntry{DocumentID: "A", DocumentType: DocumentTypeDescription}
	b := LockEntry{DocumentID: "B", DocumentType: DocumentTypeDescription}
	c := LockEntry{DocumentID: "C", DocumentType: DocumentTypeCatalog}

	remaining := SubtractEntries([]LockEntry{a, b, c}, NewEntrySet(b))
	assert.Equal(t, []LockEntry{a, c}, remaining)

	assert.Empty(t, SubtractEntries([]LockEntry{a}, NewEntrySet(a, b)))
}

func TestEntrySetSlice(t *testing.T) {
	set := NewEntrySet(
		LockEntry{DocumentID: "2", DocumentType: DocumentTypeDescription},
		LockEntry{DocumentID: "1", DocumentType: DocumentTypeDescription},
		LockEntry{DocumentID: "9", DocumentType: DocumentTypeCatalog},
	)

	assert.Equal(t, []LockEntry{
		{DocumentID: "9", DocumentType: DocumentTypeCatalog},
		{DocumentID: "1", DocumentType: DocumentTypeDescription},
		{DocumentID: "2", DocumentType: DocumentTypeDescription},
	}, set.Slice())
}

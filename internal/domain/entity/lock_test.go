package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	kod5 = LockEntry{DocumentID: "KOD-5", DocumentType: DocumentTypeDescription}
	kod6 = LockEntry{DocumentID: "KOD-6", DocumentType: DocumentTypeDescription}
)

func TestParseLockKind(t *testing.T) {
	k, err := ParseLockKind("MANUAL")
	require.NoError(t, err)
	assert.Equal(t, LockKindManual, k)

	k, err = ParseLockKind("transaction_scoped")
	require.NoError(t, err)
	assert.Equal(t, LockKindTransactionScoped, k)

	_, err = ParseLockKind("forever")
	assert.ErrorIs(t, err, errs.ErrInvalidLockKind)
}

func TestNewHolder(t *testing.T) {
	h, err := NewHolder(" konrad ")
	require.NoError(t, err)
	assert.Equal(t, "konrad", h.Name)

	_, err = NewHolder("   ")
	assert.ErrorIs(t, err, errs.ErrInvalidHolder)
}

func TestNewLock(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	holder := Holder{Name: "konrad"}

	t.Run("Manual lock", func(t *testing.T) {
		l, err := NewLock("id-1", LockKindManual, holder, "editing", "", now, []LockEntry{kod5, kod5, kod6})
		require.NoError(t, err)
		assert.Equal(t, []LockEntry{kod5, kod6}, l.Entries)
		assert.Equal(t, ManualScope("konrad"), l.Scope())
	})

	t.Run("Transaction scoped lock", func(t *testing.T) {
		l, err := NewLock("id-2", LockKindTransactionScoped, holder, "import", "tx-1", now, []LockEntry{kod5})
		require.NoError(t, err)
		assert.Equal(t, TransactionScope("tx-1"), l.Scope())
		assert.Equal(t, "tx-1", l.Scope().Owner())
	})

	t.Run("Rejects invalid locks", func(t *testing.T) {
		cases := []struct {
			name    string
			id      string
			kind    LockKind
			holder  Holder
			txID    string
			entries []LockEntry
			want    error
		}{
			{"missing id", "", LockKindManual, holder, "", []LockEntry{kod5}, errs.ErrInvalidRequest},
			{"bad kind", "x", LockKind("other"), holder, "", []LockEntry{kod5}, errs.ErrInvalidLockKind},
			{"empty holder", "x", LockKindManual, Holder{}, "", []LockEntry{kod5}, errs.ErrInvalidHolder},
			{"no entries", "x", LockKindManual, holder, "", nil, errs.ErrEmptyEntries},
			{"bad entry", "x", LockKindManual, holder, "", []LockEntry{{DocumentID: "1"}}, errs.ErrInvalidLockEntry},
			{"tx lock without tx", "x", LockKindTransactionScoped, holder, "", []LockEntry{kod5}, errs.ErrNoActiveTransaction},
			{"manual lock with tx", "x", LockKindManual, holder, "tx-1", []LockEntry{kod5}, errs.ErrInvalidLockKind},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewLock(tc.id, tc.kind, tc.holder, "", tc.txID, now, tc.entries)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestLockCoverage(t *testing.T) {
	l := &Lock{ID: "1", Kind: LockKindManual, Holder: Holder{Name: "konrad"}, Entries: []LockEntry{kod5}}

	assert.True(t, l.Covers(kod5))
	assert.False(t, l.Covers(kod6))
	assert.True(t, l.Overlaps([]LockEntry{kod6, kod5}))
	assert.False(t, l.Overlaps([]LockEntry{kod6}))

	other := &Lock{ID: "2", Kind: LockKindManual, Holder: Holder{Name: "konrad"}, Entries: []LockEntry{kod6}}
	covered := CoveredEntries([]*Lock{l, other})
	assert.True(t, covered.Contains(kod5))
	assert.True(t, covered.Contains(kod6))
}

func TestLockClone(t *testing.T) {
	l := &Lock{ID: "1", Entries: []LockEntry{kod5}}
	c := l.Clone()
	c.Entries[0] = kod6

	assert.Equal(t, kod5, l.Entries[0])
	assert.Nil(t, (*Lock)(nil).Clone())
}

func TestLockScopeValidate(t *testing.T) {
	assert.NoError(t, ManualScope("konrad").Validate())
	assert.ErrorIs(t, ManualScope("").Validate(), errs.ErrInvalidHolder)
	assert.NoError(t, TransactionScope("tx").Validate())
	assert.ErrorIs(t, TransactionScope("").Validate(), errs.ErrNoActiveTransaction)
	assert.ErrorIs(t, LockScope{Kind: "nope"}.Validate(), errs.ErrInvalidLockKind)
}

package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
)

// LockKind determines how long a lock lives
type LockKind string

const (
	// LockKindManual is held until explicitly released (a human editing session)
	LockKindManual LockKind = "manual"
	// LockKindTransactionScoped is held until the owning transaction completes
	LockKindTransactionScoped LockKind = "transaction_scoped"
)

// IsValid checks if the lock kind is one of the allowed values
func (k LockKind) IsValid() bool {
	return k == LockKindManual || k == LockKindTransactionScoped
}

// ParseLockKind parses a lock kind from its string form
func ParseLockKind(s string) (LockKind, error) {
	kind := LockKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidLockKind, s)
	}
	return kind, nil
}

// Holder identifies the editor or system principal owning a lock
type Holder struct {
	Name string
}

// NewHolder creates a holder, rejecting empty names
func NewHolder(name string) (Holder, error) {
	h := Holder{Name: strings.TrimSpace(name)}
	if err := h.Validate(); err != nil {
		return Holder{}, err
	}
	return h, nil
}

// Validate checks the holder has a name
func (h Holder) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return errs.ErrInvalidHolder
	}
	return nil
}

// LockScope names the owner against which conflicts are evaluated:
// a holder for manual locks, a transaction for transaction-scoped locks.
type LockScope struct {
	Kind          LockKind
	HolderName    string
	TransactionID string
}

// ManualScope returns the scope of manual locks owned by holder
func ManualScope(holder string) LockScope {
	return LockScope{Kind: LockKindManual, HolderName: holder}
}

// TransactionScope returns the scope of locks owned by the transaction
func TransactionScope(transactionID string) LockScope {
	return LockScope{Kind: LockKindTransactionScoped, TransactionID: transactionID}
}

// Owner returns the identity that owns locks in this scope
func (s LockScope) Owner() string {
	if s.Kind == LockKindTransactionScoped {
		return s.TransactionID
	}
	return s.HolderName
}

// Validate checks that the scope names an owner
func (s LockScope) Validate() error {
	switch s.Kind {
	case LockKindManual:
		if strings.TrimSpace(s.HolderName) == "" {
			return errs.ErrInvalidHolder
		}
	case LockKindTransactionScoped:
		if strings.TrimSpace(s.TransactionID) == "" {
			return errs.ErrNoActiveTransaction
		}
	default:
		return fmt.Errorf("%w: %q", errs.ErrInvalidLockKind, s.Kind)
	}
	return nil
}

// Lock is a persisted grant of exclusive access over one or more entries
type Lock struct {
	ID            string
	Kind          LockKind
	Holder        Holder
	Reason        string
	TransactionID string // empty for manual locks
	StartedAt     time.Time
	Entries       []LockEntry
}

// NewLock creates a lock and checks its invariants
func NewLock(
	id string,
	kind LockKind,
	holder Holder,
	reason string,
	transactionID string,
	startedAt time.Time,
	entries []LockEntry,
) (*Lock, error) {
	lock := &Lock{
		ID:            id,
		Kind:          kind,
		Holder:        holder,
		Reason:        reason,
		TransactionID: transactionID,
		StartedAt:     startedAt,
		Entries:       DeduplicateEntries(entries),
	}
	if err := lock.Validate(); err != nil {
		return nil, err
	}
	return lock, nil
}

// Validate checks the lock invariants
func (l *Lock) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: lock id is required", errs.ErrInvalidRequest)
	}
	if !l.Kind.IsValid() {
		return fmt.Errorf("%w: %q", errs.ErrInvalidLockKind, l.Kind)
	}
	if err := l.Holder.Validate(); err != nil {
		return err
	}
	if len(l.Entries) == 0 {
		return errs.ErrEmptyEntries
	}
	for _, e := range l.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	hasTx := l.TransactionID != ""
	switch {
	case l.Kind == LockKindTransactionScoped && !hasTx:
		return errs.ErrNoActiveTransaction
	case l.Kind == LockKindManual && hasTx:
		return fmt.Errorf("%w: manual lock cannot carry a transaction id", errs.ErrInvalidLockKind)
	}
	return nil
}

// Scope returns the owner scope of the lock
func (l *Lock) Scope() LockScope {
	if l.Kind == LockKindTransactionScoped {
		return TransactionScope(l.TransactionID)
	}
	return ManualScope(l.Holder.Name)
}

// Covers reports whether the lock protects the entry
func (l *Lock) Covers(entry LockEntry) bool {
	for _, e := range l.Entries {
		if e == entry {
			return true
		}
	}
	return false
}

// Overlaps reports whether the lock shares at least one entry with entries
func (l *Lock) Overlaps(entries []LockEntry) bool {
	for _, e := range entries {
		if l.Covers(e) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate stored state
func (l *Lock) Clone() *Lock {
	if l == nil {
		return nil
	}
	c := *l
	c.Entries = append([]LockEntry(nil), l.Entries...)
	return &c
}

// CoveredEntries returns the union of entries covered by the locks
func CoveredEntries(locks []*Lock) EntrySet {
	set := make(EntrySet)
	for _, l := range locks {
		set.Add(l.Entries...)
	}
	return set
}

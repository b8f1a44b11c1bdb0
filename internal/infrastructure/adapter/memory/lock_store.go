package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/persistence"
)

// claimKey mirrors the unique index of the relational store:
// an entry can be claimed once per lock kind.
type claimKey struct {
	entry entity.LockEntry
	kind  entity.LockKind
}

// Store is an in-process lock store. It enforces the same entry uniqueness
// as the PostgreSQL schema so racing acquisitions lose at Save.
type Store struct {
	mu     sync.RWMutex
	locks  map[string]*entity.Lock
	claims map[claimKey]string
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		locks:  make(map[string]*entity.Lock),
		claims: make(map[claimKey]string),
	}
}

var _ persistence.LockStore = (*Store)(nil)

// ByHolder returns all locks held by holderName
func (s *Store) ByHolder(_ context.Context, holderName string) ([]*entity.Lock, error) {
	return s.filter(func(l *entity.Lock) bool {
		return l.Holder.Name == holderName
	}), nil
}

// ByTransaction returns all locks owned by transactionID
func (s *Store) ByTransaction(_ context.Context, transactionID string) ([]*entity.Lock, error) {
	return s.filter(func(l *entity.Lock) bool {
		return l.TransactionID != "" && l.TransactionID == transactionID
	}), nil
}

// ByEntries returns every lock overlapping entries
func (s *Store) ByEntries(_ context.Context, entries []entity.LockEntry) ([]*entity.Lock, error) {
	return s.filter(func(l *entity.Lock) bool {
		return l.Overlaps(entries)
	}), nil
}

// ConflictsForTransaction returns transaction-scoped locks of other transactions overlapping entries
func (s *Store) ConflictsForTransaction(_ context.Context, transactionID string, entries []entity.LockEntry) ([]*entity.Lock, error) {
	return s.filter(func(l *entity.Lock) bool {
		return l.Kind == entity.LockKindTransactionScoped &&
			l.TransactionID != transactionID &&
			l.Overlaps(entries)
	}), nil
}

// ConflictsForHolder returns manual locks of other holders overlapping entries
func (s *Store) ConflictsForHolder(_ context.Context, holderName string, entries []entity.LockEntry) ([]*entity.Lock, error) {
	return s.filter(func(l *entity.Lock) bool {
		return l.Kind == entity.LockKindManual &&
			l.Holder.Name != holderName &&
			l.Overlaps(entries)
	}), nil
}

// ByID returns the lock with the given id
func (s *Store) ByID(_ context.Context, id string) (*entity.Lock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.locks[id]
	if !ok {
		return nil, errs.ErrLockNotFound
	}
	return l.Clone(), nil
}

// FindAll returns every lock ordered by start time
func (s *Store) FindAll(_ context.Context) ([]*entity.Lock, error) {
	return s.filter(func(*entity.Lock) bool { return true }), nil
}

// Save stores a new lock, failing if any entry is already claimed for its kind
func (s *Store) Save(_ context.Context, lock *entity.Lock) error {
	if err := lock.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.locks[lock.ID]; exists {
		return errs.ErrConstraintViolation
	}
	for _, e := range lock.Entries {
		if _, taken := s.claims[claimKey{entry: e, kind: lock.Kind}]; taken {
			return errs.ErrDuplicateLockEntry
		}
	}

	stored := lock.Clone()
	s.locks[stored.ID] = stored
	for _, e := range stored.Entries {
		s.claims[claimKey{entry: e, kind: stored.Kind}] = stored.ID
	}
	return nil
}

// DeleteByID removes the lock and its entry claims
func (s *Store) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.remove(id); !ok {
		return errs.ErrLockNotFound
	}
	return nil
}

// Len returns the number of stored locks
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.locks)
}

// remove deletes a lock; the caller holds s.mu
func (s *Store) remove(id string) (*entity.Lock, bool) {
	l, ok := s.locks[id]
	if !ok {
		return nil, false
	}
	delete(s.locks, id)
	for _, e := range l.Entries {
		key := claimKey{entry: e, kind: l.Kind}
		if s.claims[key] == id {
			delete(s.claims, key)
		}
	}
	return l, true
}

// restore puts a previously removed lock back; the caller holds s.mu
func (s *Store) restore(l *entity.Lock) {
	s.locks[l.ID] = l
	for _, e := range l.Entries {
		s.claims[claimKey{entry: e, kind: l.Kind}] = l.ID
	}
}

func (s *Store) filter(match func(*entity.Lock) bool) []*entity.Lock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Lock, 0)
	for _, l := range s.locks {
		if match(l) {
			out = append(out, l.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

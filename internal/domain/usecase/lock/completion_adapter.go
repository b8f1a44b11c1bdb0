package lock

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/persistence"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AdapterState is the observable state of a CompletionAdapter
type AdapterState int32

const (
	// AdapterArmed waits for the transaction to complete
	AdapterArmed AdapterState = iota
	// AdapterFired has released its locks
	AdapterFired
)

// String returns the state name
func (s AdapterState) String() string {
	if s == AdapterFired {
		return "fired"
	}
	return "armed"
}

// CompletionAdapter is enlisted once per transaction and releases every
// transaction-scoped lock created in it when the transaction commits or rolls back.
type CompletionAdapter struct {
	transactionID string
	coordinator   *Coordinator

	state atomic.Int32

	mu    sync.Mutex
	locks []*entity.Lock
}

var _ persistence.Synchronization = (*CompletionAdapter)(nil)

func newCompletionAdapter(transactionID string, coordinator *Coordinator) *CompletionAdapter {
	return &CompletionAdapter{
		transactionID: transactionID,
		coordinator:   coordinator,
	}
}

// TransactionID returns the transaction the adapter is bound to
func (a *CompletionAdapter) TransactionID() string {
	return a.transactionID
}

// State returns the current state
func (a *CompletionAdapter) State() AdapterState {
	return AdapterState(a.state.Load())
}

// Locks returns the locks the adapter will release
func (a *CompletionAdapter) Locks() []*entity.Lock {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*entity.Lock, len(a.locks))
	copy(out, a.locks)
	return out
}

// track adds a lock to release on completion. It returns false once the adapter fired.
func (a *CompletionAdapter) track(lock *entity.Lock) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.State() == AdapterFired {
		return false
	}
	a.locks = append(a.locks, lock)
	return true
}

// untrack forgets a lock released before the transaction completed
func (a *CompletionAdapter) untrack(lockID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, l := range a.locks {
		if l.ID == lockID {
			a.locks = append(a.locks[:i], a.locks[i+1:]...)
			return
		}
	}
}

// AfterCompletion releases the tracked locks. Commit and rollback are handled
// alike; only the first call has an effect.
func (a *CompletionAdapter) AfterCompletion(ctx context.Context, status persistence.TransactionStatus) {
	if !a.state.CompareAndSwap(int32(AdapterArmed), int32(AdapterFired)) {
		return
	}

	ctx, span := tracer.Start(ctx, "CompletionAdapter.AfterCompletion", trace.WithAttributes(
		attribute.String("lock.transaction_id", a.transactionID),
		attribute.String("lock.transaction_status", status.String()),
	))
	defer span.End()

	a.mu.Lock()
	locks := a.locks
	a.locks = nil
	a.mu.Unlock()

	c := a.coordinator
	c.logger.Debug("Transaction completed, releasing transaction-scoped locks", map[string]any{
		"transaction_id": a.transactionID,
		"status":         status.String(),
		"locks":          len(locks),
	})

	released := 0
	for _, l := range locks {
		if c.ReleaseByID(ctx, l.ID) {
			released++
		}
	}

	c.registry.Remove(a.transactionID, a)
	c.metrics.AdaptersArmed(c.registry.Len())

	c.logger.Info("Completion adapter fired", map[string]any{
		"transaction_id": a.transactionID,
		"status":         status.String(),
		"released":       released,
		"tracked":        len(locks),
	})
}

package lock

import (
	"sync"
	"sync/atomic"
)

// Registry maps transaction ids to their armed completion adapter. It only
// prevents double enlistment; conflict detection never consults it.
// Each Coordinator owns one, injected at construction.
type Registry struct {
	adapters sync.Map // map[string]*CompletionAdapter
	size     atomic.Int64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// LoadOrStore returns the adapter registered for txID, or stores and returns
// candidate when there is none. loaded reports whether an adapter existed.
func (r *Registry) LoadOrStore(txID string, candidate *CompletionAdapter) (adapter *CompletionAdapter, loaded bool) {
	actual, loaded := r.adapters.LoadOrStore(txID, candidate)
	if !loaded {
		r.size.Add(1)
	}
	return actual.(*CompletionAdapter), loaded
}

// Get returns the adapter registered for txID
func (r *Registry) Get(txID string) (*CompletionAdapter, bool) {
	v, ok := r.adapters.Load(txID)
	if !ok {
		return nil, false
	}
	return v.(*CompletionAdapter), true
}

// Remove deletes the entry for txID only if it still points to adapter
func (r *Registry) Remove(txID string, adapter *CompletionAdapter) bool {
	if r.adapters.CompareAndDelete(txID, adapter) {
		r.size.Add(-1)
		return true
	}
	return false
}

// Len returns the number of registered adapters
func (r *Registry) Len() int {
	return int(r.size.Load())
}

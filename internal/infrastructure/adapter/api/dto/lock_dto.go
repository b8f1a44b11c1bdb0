package dto

import (
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	"github.com/dustin/go-humanize"
)

// LockEntryDTO identifies one protected record
type LockEntryDTO struct {
	DocumentID   string `json:"documentId" binding:"required"`
	DocumentType string `json:"documentType" binding:"required"`
}

// AcquireLockRequest is the body of POST /locks
type AcquireLockRequest struct {
	Holder  string         `json:"holder" binding:"required"`
	Reason  string         `json:"reason"`
	Entries []LockEntryDTO `json:"entries" binding:"required,min=1,dive"`
}

// ConflictQueryRequest is the body of POST /locks/conflicts. Exactly one of
// Holder and TransactionID selects the scope.
type ConflictQueryRequest struct {
	Holder        string         `json:"holder"`
	TransactionID string         `json:"transactionId"`
	Entries       []LockEntryDTO `json:"entries" binding:"required,min=1,dive"`
}

// LockResponse represents a lock in API responses
type LockResponse struct {
	ID            string         `json:"id"`
	Kind          string         `json:"kind"`
	Holder        string         `json:"holder"`
	Reason        string         `json:"reason"`
	TransactionID string         `json:"transactionId,omitempty"`
	StartedAt     time.Time      `json:"startedAt"`
	Since         string         `json:"since"`
	Entries       []LockEntryDTO `json:"entries"`
}

// LockListResponse is the body of GET /locks
type LockListResponse struct {
	Locks []LockResponse `json:"locks"`
	Count int            `json:"count"`
}

// ConflictsResponse is the body of POST /locks/conflicts
type ConflictsResponse struct {
	Conflicts []LockResponse `json:"conflicts"`
}

// ReleaseResponse is the body of DELETE /locks/:id
type ReleaseResponse struct {
	Released bool `json:"released"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status        string `json:"status"`
	Store         string `json:"store"`
	ArmedAdapters int    `json:"armedAdapters"`
}

// ToEntries converts request entries to domain entries
func ToEntries(in []LockEntryDTO) ([]entity.LockEntry, error) {
	entries := make([]entity.LockEntry, 0, len(in))
	for _, e := range in {
		entry, err := entity.NewLockEntry(e.DocumentID, entity.DocumentType(e.DocumentType))
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// FromLock converts a lock to its API representation; now anchors the relative age
func FromLock(l *entity.Lock, now time.Time) LockResponse {
	entries := make([]LockEntryDTO, 0, len(l.Entries))
	for _, e := range l.Entries {
		entries = append(entries, LockEntryDTO{
			DocumentID:   e.DocumentID,
			DocumentType: string(e.DocumentType),
		})
	}
	return LockResponse{
		ID:            l.ID,
		Kind:          string(l.Kind),
		Holder:        l.Holder.Name,
		Reason:        l.Reason,
		TransactionID: l.TransactionID,
		StartedAt:     l.StartedAt,
		Since:         humanize.RelTime(l.StartedAt, now, "ago", "from now"),
		Entries:       entries,
	}
}

// FromLocks converts a list of locks
func FromLocks(locks []*entity.Lock, now time.Time) []LockResponse {
	out := make([]LockResponse, 0, len(locks))
	for _, l := range locks {
		out = append(out, FromLock(l, now))
	}
	return out
}

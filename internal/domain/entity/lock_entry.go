package entity

import (
	"fmt"
	"sort"
	"strings"

	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
)

// DocumentType identifies the kind of record a lock entry protects.
// The coordinator treats it as an opaque label; the constants below are the
// record types the cataloguing backend currently locks.
type DocumentType string

const (
	// DocumentTypeDescription is a catalogue description of a cultural object
	DocumentTypeDescription DocumentType = "description"
	// DocumentTypeCulturalObject is the cultural object record itself
	DocumentTypeCulturalObject DocumentType = "cultural_object"
	// DocumentTypeDigitization is a digitization attached to a cultural object
	DocumentTypeDigitization DocumentType = "digitization"
	// DocumentTypeCatalog is a printed or online catalogue
	DocumentTypeCatalog DocumentType = "catalog"
)

// LockEntry identifies exactly one protected record
type LockEntry struct {
	DocumentID   string
	DocumentType DocumentType
}

// NewLockEntry creates a validated lock entry
func NewLockEntry(documentID string, documentType DocumentType) (LockEntry, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" || strings.TrimSpace(string(documentType)) == "" {
		return LockEntry{}, fmt.Errorf("%w: document id and type are required", errs.ErrInvalidLockEntry)
	}
	return LockEntry{DocumentID: documentID, DocumentType: documentType}, nil
}

// Validate checks that both fields of the entry are set
func (e LockEntry) Validate() error {
	if strings.TrimSpace(e.DocumentID) == "" || strings.TrimSpace(string(e.DocumentType)) == "" {
		return fmt.Errorf("%w: %q", errs.ErrInvalidLockEntry, e.String())
	}
	return nil
}

// String renders the entry as type:id
func (e LockEntry) String() string {
	return string(e.DocumentType) + ":" + e.DocumentID
}

// ParseLockEntry parses the type:id form produced by String
func ParseLockEntry(s string) (LockEntry, error) {
	typ, id, ok := strings.Cut(s, ":")
	if !ok {
		return LockEntry{}, fmt.Errorf("%w: expected type:id, got %q", errs.ErrInvalidLockEntry, s)
	}
	return NewLockEntry(id, DocumentType(strings.TrimSpace(typ)))
}

// EntrySet is a set of lock entries
type EntrySet map[LockEntry]struct{}

// NewEntrySet builds a set from the given entries
func NewEntrySet(entries ...LockEntry) EntrySet {
	set := make(EntrySet, len(entries))
	for _, e := range entries {
		set[e] = struct{}{}
	}
	return set
}

// Add inserts entries into the set
func (s EntrySet) Add(entries ...LockEntry) {
	for _, e := range entries {
		s[e] = struct{}{}
	}
}

// Contains reports whether the entry is in the set
func (s EntrySet) Contains(e LockEntry) bool {
	_, ok := s[e]
	return ok
}

// Slice returns the entries in a deterministic order
func (s EntrySet) Slice() []LockEntry {
	out := make([]LockEntry, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	SortEntries(out)
	return out
}

// DeduplicateEntries returns the distinct entries, keeping first-seen order
func DeduplicateEntries(entries []LockEntry) []LockEntry {
	seen := make(EntrySet, len(entries))
	out := make([]LockEntry, 0, len(entries))
	for _, e := range entries {
		if seen.Contains(e) {
			continue
		}
		seen.Add(e)
		out = append(out, e)
	}
	return out
}

// SubtractEntries returns the entries not contained in covered, keeping order
func SubtractEntries(entries []LockEntry, covered EntrySet) []LockEntry {
	out := make([]LockEntry, 0, len(entries))
	for _, e := range entries {
		if !covered.Contains(e) {
			out = append(out, e)
		}
	}
	return out
}

// SortEntries orders entries by type, then id
func SortEntries(entries []LockEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DocumentType != entries[j].DocumentType {
			return entries[i].DocumentType < entries[j].DocumentType
		}
		return entries[i].DocumentID < entries[j].DocumentID
	})
}

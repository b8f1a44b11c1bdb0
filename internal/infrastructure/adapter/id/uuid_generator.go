package id

import (
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator issues random (v4) UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUID-backed IDGenerator
func NewUUIDGenerator() core.IDGenerator {
	return UUIDGenerator{}
}

// NewID returns a new UUID in canonical string form
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// IsValid reports whether s parses as a UUID
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

package database

import (
	"fmt"

	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error, naming the failed operation
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", operation, m.classifier.ToDomainError(err))
}

// IsTransient reports whether the operation that produced err may succeed if retried
func (m *ErrorMapper) IsTransient(err error) bool {
	return m.classifier.IsTransientError(err) || m.classifier.IsSerializationError(err)
}

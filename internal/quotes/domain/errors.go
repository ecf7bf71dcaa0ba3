package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("project not found")

// ValidationError reports malformed caller input. The caller can recover by
// resubmitting corrected input; no side effect has happened yet.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError reports a failed artifact write. The submission is aborted
// with no partial state.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("artifact storage: %v", e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// PersistenceError reports a failed repository write. The submission is
// aborted with no partial state.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("persistence: %v", e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

// AIServiceError reports a failed or unusable response from the generation
// service. By the time it can occur the Project is already durable, so it
// carries the assigned id for the caller.
type AIServiceError struct {
	ProjectID int64
	Err       error
}

func (e *AIServiceError) Error() string { return fmt.Sprintf("quote generation: %v", e.Err) }
func (e *AIServiceError) Unwrap() error { return e.Err }

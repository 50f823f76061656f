package models

import "fmt"

// ValidationError reports a request field that failed validation.
// Validation happens before any storage interaction.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StorageError wraps a failure from the storage collaborator. It is
// surfaced to the caller verbatim; the service never retries.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

package services

import (
	"errors"
	"fmt"
)

// FieldError represents a single validation error
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError represents caller input that was rejected before any backend write
type ValidationError struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"validation_errors,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// ParseError reports a stored payload that is not valid JSON. Reads recover from it
// per key; it never fails a whole read.
type ParseError struct {
	Key string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE_ERROR: Stored value for key '%s' is not valid JSON", e.Key)
}

// StorageConsistencyError reports a write whose read-back did not confirm it
type StorageConsistencyError struct {
	Key   string
	Cause error
}

func (e *StorageConsistencyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("KV write verification failed: %q not found: %v", e.Key, e.Cause)
	}
	return fmt.Sprintf("KV write verification failed: %q not found", e.Key)
}

func (e *StorageConsistencyError) Unwrap() error {
	return e.Cause
}

// IsStorageConsistencyError checks if an error is a storage consistency error
func IsStorageConsistencyError(err error) bool {
	var target *StorageConsistencyError
	return errors.As(err, &target)
}

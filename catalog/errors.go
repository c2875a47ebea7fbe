package catalog

import (
	"errors"
	"fmt"
)

// StoreError is returned when the product store cannot serve a snapshot.
type StoreError struct {
	Op       string
	Category string
	Err      error
}

// Error implements the error interface for StoreError
func (e *StoreError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("catalog store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("catalog store: %s (category=%s): %v", e.Op, e.Category, e.Err)
}

// Unwrap exposes the underlying store error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is allows proper error type checking with errors.Is()
func (e *StoreError) Is(target error) bool {
	_, ok := target.(*StoreError)
	return ok
}

// IsStoreError checks if an error is a StoreError
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the viewer should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoBook indicates no image sequence is open.
	ErrNoBook = errors.New("no book open")

	// ErrInitialization indicates a startup failure.
	ErrInitialization = errors.New("initialization failed")
)

// OperationError represents an error during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "open", "reload")
	Target string // Target of the operation (e.g., a file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrStoreFailure = errors.New("store failure")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// GoalNotFoundError reports that an operation's primary goal id did not
// resolve. A dangling parent reference is not an error and never produces
// one of these; only the goal an operation targets does.
type GoalNotFoundError struct {
	ID string
}

func (e *GoalNotFoundError) Error() string {
	return fmt.Sprintf("goal %s: not found", e.ID)
}

func (e *GoalNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StoreError wraps a failed store read or write. The engine surfaces these
// uninterpreted; retry policy belongs to the store, not here.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreFailure
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

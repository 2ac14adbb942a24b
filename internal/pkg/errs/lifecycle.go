package errs

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidTransitionError reports an attempt to move an entity out of a state
// that does not permit the requested action. It is fatal to the request.
type InvalidTransitionError struct {
	Entity string
	From   string
	Action string
}

// NewInvalidTransitionError creates an InvalidTransitionError.
func NewInvalidTransitionError(entity, from, action string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, Action: action}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s in status %s", ErrInvalidTransition, e.Action, e.Entity, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ResourceConflictError reports a lost optimistic concurrency race: the stored
// entity no longer matches the version or status the caller read.
// Callers must re-validate before re-submitting.
type ResourceConflictError struct {
	Entity string
	ID     any
	Cause  error
}

// NewResourceConflictError creates a ResourceConflictError without a cause.
func NewResourceConflictError(entity string, id any) *ResourceConflictError {
	return &ResourceConflictError{Entity: entity, ID: id}
}

// NewResourceConflictErrorWithCause creates a ResourceConflictError wrapping cause.
func NewResourceConflictErrorWithCause(entity string, id any, cause error) *ResourceConflictError {
	return &ResourceConflictError{Entity: entity, ID: id, Cause: cause}
}

func (e *ResourceConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s was modified concurrently", ErrResourceConflict, e.Entity, e.ID), e.Cause)
}

// Unwrap exposes both the sentinel and the cause, so errors.As can reach
// the violations carried by a wrapped ValidationError.
func (e *ResourceConflictError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrResourceConflict}
	}
	return []error{ErrResourceConflict, e.Cause}
}

// ValidationError carries the complete list of violations found while
// validating a request. Violations are never short-circuited.
type ValidationError struct {
	Violations []error
}

// NewValidationError creates a ValidationError. It returns nil when there
// are no violations so callers can return it directly.
func NewValidationError(violations ...error) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Error())
	}
	return fmt.Sprintf("%s: [%s]", ErrValidationRejected, strings.Join(msgs, "; "))
}

// Unwrap returns the sentinel followed by every violation.
func (e *ValidationError) Unwrap() []error {
	return append([]error{ErrValidationRejected}, e.Violations...)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

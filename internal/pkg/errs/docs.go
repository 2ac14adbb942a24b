// Package errs provides standardized error types for the fleet dispatch engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidTransitionError: For when a lifecycle transition is not permitted
//   - ResourceConflictError: For when an optimistic concurrency check is lost
//   - ValidationError: For a complete list of eligibility violations
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// None of these errors are retried by the engine. ResourceConflictError in
// particular tells the caller to re-read state and re-submit.
package errs

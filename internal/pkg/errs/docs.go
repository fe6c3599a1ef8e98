// Package errs provides the error types shared by the installation workflow service.
//
// Every type follows the same pattern: a sentinel (ErrXxx), a struct carrying the
// details, constructors with and without a cause, Error() and Unwrap(). Callers match
// on the sentinel with errors.Is and read the details with errors.As.
//
// Validation errors:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - VersionIsInvalidError: optimistic concurrency conflict on persistence
//   - ObjectNotFoundError: referenced order or task does not resolve
//
// Workflow errors:
//   - InvalidTransitionError: pair not in the legal table, never retried automatically
//   - ForbiddenError: actor role lacks authority for the transition
//   - TokenMismatchError: QR verification failed, the user may retry
//   - CascadeFailedError: a triggered transition failed after the primary one committed
package errs

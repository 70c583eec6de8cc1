// Package errs provides standardized error types for the harbor application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the record service:
//   - ObjectNotFoundError: a referenced vessel or cargo record does not exist
//   - ObjectConflictError: a name is already taken, or a cargo item is already loaded
//   - AccessForbiddenError: the caller is not the owner of the vessel
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing caller-supplied attributes
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Callers branch on error kind, never on message text:
//
//	if errors.Is(err, errs.ErrObjectNotFound) { ... }
package errs

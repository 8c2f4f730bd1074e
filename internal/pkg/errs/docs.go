// Package errs provides standardized error types for the storefront order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the order engine reports:
//   - ObjectNotFoundError: an order, review or product does not exist
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: invalid input
//   - InvalidTransitionError: a status change that the transition table does not allow
//   - ForbiddenError: the acting identity may not touch the object
//   - ObjectAlreadyExistsError: a uniqueness rule would be violated
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels; the HTTP adapter maps
// each sentinel to a status code. Anything that matches no sentinel is a server fault.
package errs

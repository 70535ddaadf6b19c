// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the service-boundary taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input, rejected locally
//   - ObjectNotFoundError: a referenced shop/courier/order is absent
//   - NotAuthorizedError: the actor lacks rights over the target entity
//   - InvalidTransitionError: the order lifecycle rejects the requested edge
//   - UpstreamServiceError: geocoding or storage is unavailable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrNotAuthorized)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All errors are synchronous return values at the service boundary and are
// never silently dropped.
package errs

// Package errs provides standardized error types for the order-management service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The HTTP adapter relies on errors.Is against the sentinels to translate
// failures into status codes: ErrObjectNotFound maps to 404, ErrValueIsInvalid
// and ErrValueIsRequired to 400, everything else to 500.
package errs

package errs

import "errors"

// Sentinel errors used as classification anchors for errors.Is checks.
// Each typed error in this package unwraps to exactly one of these.
var (
	// ErrObjectNotFound anchors all "object does not exist" failures.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid anchors all malformed-value failures.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange anchors all bounds violations.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired anchors all missing-value failures.
	ErrValueIsRequired = errors.New("value is required")
)

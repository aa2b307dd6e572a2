package validator

import "errors"

// Common validation errors shared across rule families.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is available.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilPredicate is returned when a rule is constructed without a predicate.
	ErrNilPredicate = errors.New("rule predicate is nil")
)

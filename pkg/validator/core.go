package validator

import (
	"errors"
	"fmt"
)

// Numeric is the constraint used by the numeric rule constructors.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError describes a single failed rule.
//
// Code is the stable, externally meaningful identifier of the violated rule
// and is intended for programmatic handling and localization lookup. Message
// is free-form text, possibly parameterized by the rejected value; code and
// message are kept orthogonal on purpose. Field is stamped by the owning
// property, not by the rule itself.
type ValidationError struct {
	Field             string
	Code              int
	Message           string
	TranslationValues map[string]any
}

func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return fmt.Sprintf("validation failed [%d]: %s", ve.Code, ve.Message)
	}
	return fmt.Sprintf("%s [%d]: %s", ve.Field, ve.Code, ve.Message)
}

// WithField returns a copy of the error bound to the given field name.
func (ve ValidationError) WithField(field string) ValidationError {
	ve.Field = field
	return ve
}

// Rule is a single named validation check: a numeric code, a predicate over
// a candidate value, and a message producer for rejected values. Rules are
// immutable once constructed and must be pure with respect to their input.
type Rule[T any] struct {
	code    int
	check   func(T) bool
	message func(T) string
	values  func(T) map[string]any
}

// NewRule constructs a rule from a code, a predicate, and a message producer.
// The message producer may embed the rejected value in free text.
func NewRule[T any](code int, check func(T) bool, message func(T) string) Rule[T] {
	return Rule[T]{code: code, check: check, message: message}
}

// WithValues returns a copy of the rule that attaches translation values to
// the errors it produces, for parameterized message catalogs.
func (r Rule[T]) WithValues(values func(T) map[string]any) Rule[T] {
	r.values = values
	return r
}

// Code returns the rule's numeric identifier.
func (r Rule[T]) Code() int { return r.code }

// Apply evaluates the rule against value. It returns nil when the predicate
// holds and a ValidationError carrying the rule's code otherwise. Evaluation
// is synchronous and deterministic; the same value always yields the same
// outcome.
func (r Rule[T]) Apply(value T) error {
	if r.check == nil {
		return ErrNilPredicate
	}
	if r.check(value) {
		return nil
	}
	ve := ValidationError{
		Code:    r.code,
		Message: ErrValidationFailed.Error(),
	}
	if r.message != nil {
		ve.Message = r.message(value)
	}
	if r.values != nil {
		ve.TranslationValues = r.values(value)
	}
	return ve
}

// Apply evaluates rules strictly in slice order against value and stops at
// the first failure, returning that rule's error. Later rules are not
// evaluated, so a rule's predicate must not assume earlier rules already
// filtered its input beyond what it itself checks.
func Apply[T any](value T, rules ...Rule[T]) error {
	for _, rule := range rules {
		if err := rule.Apply(value); err != nil {
			return err
		}
	}
	return nil
}

// ExtractValidationError extracts a ValidationError from an error chain.
// The second return value reports whether one was found.
func ExtractValidationError(err error) (ValidationError, bool) {
	if err == nil {
		return ValidationError{}, false
	}

	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return ValidationError{}, false
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	_, ok := ExtractValidationError(err)
	return ok
}

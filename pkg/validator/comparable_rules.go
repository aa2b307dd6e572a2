package validator

import (
	"fmt"
	"slices"
)

// OneOf validates that a value is one of the allowed values.
func OneOf[T comparable](code int, allowed ...T) Rule[T] {
	return NewRule(code,
		func(v T) bool { return slices.Contains(allowed, v) },
		func(v T) string { return fmt.Sprintf("%v is not an allowed value", v) },
	).WithValues(func(v T) map[string]any {
		return map[string]any{"value": v, "allowed": allowed}
	})
}

// NotEqual validates that a value differs from forbidden.
func NotEqual[T comparable](code int, forbidden T) Rule[T] {
	return NewRule(code,
		func(v T) bool { return v != forbidden },
		func(T) string { return fmt.Sprintf("must not equal %v", forbidden) },
	).WithValues(func(T) map[string]any {
		return map[string]any{"forbidden": forbidden}
	})
}

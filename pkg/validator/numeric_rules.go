package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to min.
func Min[T Numeric](code int, min T) Rule[T] {
	return NewRule(code,
		func(v T) bool { return v >= min },
		func(T) string { return fmt.Sprintf("must be at least %v", min) },
	).WithValues(func(v T) map[string]any {
		return map[string]any{"min": min, "value": v}
	})
}

// Max validates that a numeric value is less than or equal to max.
func Max[T Numeric](code int, max T) Rule[T] {
	return NewRule(code,
		func(v T) bool { return v <= max },
		func(T) string { return fmt.Sprintf("must be at most %v", max) },
	).WithValues(func(v T) map[string]any {
		return map[string]any{"max": max, "value": v}
	})
}

// Between validates that a numeric value is within [min, max].
func Between[T Numeric](code int, min, max T) Rule[T] {
	return NewRule(code,
		func(v T) bool { return v >= min && v <= max },
		func(T) string { return fmt.Sprintf("must be between %v and %v", min, max) },
	).WithValues(func(v T) map[string]any {
		return map[string]any{"min": min, "max": max, "value": v}
	})
}

// Positive validates that a numeric value is greater than zero.
func Positive[T Numeric](code int) Rule[T] {
	return NewRule(code,
		func(v T) bool { return v > 0 },
		func(v T) string { return fmt.Sprintf("must be positive, got %v", v) },
	).WithValues(func(v T) map[string]any {
		return map[string]any{"value": v}
	})
}

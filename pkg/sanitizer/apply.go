package sanitizer

// Apply runs value through the given transformations in order and returns
// the result.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable transformation from a chain of transformations,
// applied left to right. Prefer this over repeated Apply calls when the same
// chain is used for every write to a field.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

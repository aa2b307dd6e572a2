package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NonEmpty validates that a string has content after trimming whitespace.
func NonEmpty(code int) Rule[string] {
	return NewRule(code,
		func(s string) bool { return strings.TrimSpace(s) != "" },
		func(string) string { return "must not be empty" },
	)
}

// MinLen validates that a string is at least min runes long.
func MinLen(code, min int) Rule[string] {
	return NewRule(code,
		func(s string) bool { return utf8.RuneCountInString(s) >= min },
		func(string) string { return fmt.Sprintf("must be at least %d characters long", min) },
	).WithValues(func(s string) map[string]any {
		return map[string]any{"min": min, "length": utf8.RuneCountInString(s)}
	})
}

// MaxLen validates that a string is at most max runes long.
func MaxLen(code, max int) Rule[string] {
	return NewRule(code,
		func(s string) bool { return utf8.RuneCountInString(s) <= max },
		func(string) string { return fmt.Sprintf("must be at most %d characters long", max) },
	).WithValues(func(s string) map[string]any {
		return map[string]any{"max": max, "length": utf8.RuneCountInString(s)}
	})
}

// LenBetween validates that a string's rune length is within [min, max].
func LenBetween(code, min, max int) Rule[string] {
	return NewRule(code,
		func(s string) bool {
			n := utf8.RuneCountInString(s)
			return n >= min && n <= max
		},
		func(string) string {
			return fmt.Sprintf("must be between %d and %d characters long", min, max)
		},
	).WithValues(func(s string) map[string]any {
		return map[string]any{"min": min, "max": max, "length": utf8.RuneCountInString(s)}
	})
}

// Matches validates that a string matches the given pattern.
func Matches(code int, re *regexp.Regexp) Rule[string] {
	return NewRule(code,
		func(s string) bool { return re.MatchString(s) },
		func(string) string { return fmt.Sprintf("must match pattern %s", re.String()) },
	).WithValues(func(string) map[string]any {
		return map[string]any{"pattern": re.String()}
	})
}

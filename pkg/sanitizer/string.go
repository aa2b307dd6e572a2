package sanitizer

import "strings"

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// CollapseWhitespace replaces every run of Unicode whitespace with a single
// space and trims the edges. The transformation is idempotent: applying it
// to an already-collapsed string returns the string unchanged.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate limits a string to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

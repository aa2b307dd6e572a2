// Package sanitizer provides small, pure normalization helpers for values
// that are about to be validated and stored: whitespace handling, case
// conversion, and length capping, plus the Apply and Compose helpers for
// building normalization pipelines.
//
// Every helper is a deterministic func(T) T with no hidden state, so the
// package is stateless and safe for concurrent use. Normalizers intended
// for use with validated properties should be idempotent, i.e.
// f(f(x)) == f(x); all helpers in this package are.
//
//	normalize := sanitizer.Compose(
//	    sanitizer.CollapseWhitespace,
//	    sanitizer.ToLower,
//	)
//
//	normalize("\tMixed CASE   Input\n") // "mixed case input"
package sanitizer

// Package validator provides a small, generic rule engine for validating
// single values: each Rule pairs a stable numeric code with a predicate and
// a message producer, and Apply evaluates an ordered rule list against a
// candidate value, stopping at the first failure.
//
// The numeric code is the rule's identity. It is meant for programmatic
// handling and localization lookup, independent of the human-readable
// message, so the two are never derived from each other.
//
// # Usage
//
//	rules := []validator.Rule[string]{
//	    validator.NonEmpty(1000),
//	    validator.LenBetween(1001, 4, 32),
//	}
//
//	if err := validator.Apply(name, rules...); err != nil {
//	    if ve, ok := validator.ExtractValidationError(err); ok {
//	        // ve.Code identifies the violated rule, ve.Message describes it
//	    }
//	}
//
// Custom rules are built with NewRule:
//
//	noDigits := validator.NewRule(2001,
//	    func(s string) bool { return !strings.ContainsFunc(s, unicode.IsDigit) },
//	    func(s string) string { return fmt.Sprintf("%q must not contain digits", s) },
//	)
//
// Rules are immutable values, hold no hidden state, and are safe to share
// between goroutines. Evaluation order is the caller's slice order; a rule
// must not assume earlier rules already filtered its input.
package validator

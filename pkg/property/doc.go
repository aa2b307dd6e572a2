// Package property implements a validated scalar container: a typed value
// holder bound to one entity field that normalizes and validates every
// write, including the initial one, so the stored value always satisfies
// its declared rules.
//
// A property is configured once through a Builder and is immutable in its
// configuration afterwards: the normalizer and the ordered rule list are
// fixed when Build is called. Writes are all-or-nothing: a rejected value
// leaves the stored value untouched. Reads never re-validate.
//
//	nameProp, err := property.Define[string]("name").
//	    Normalize(sanitizer.CollapseWhitespace).
//	    Rules(
//	        validator.NonEmpty(1000),
//	        validator.LenBetween(1001, 4, 32),
//	    ).
//	    Build("Monopoly Bank")
//	if err != nil {
//	    // initial value was rejected; no property exists
//	}
//
//	nameProp.Get()            // "Monopoly Bank"
//	err = nameProp.Set("bit") // ValidationError with code 1001
//
// Rules evaluate strictly in registration order and stop at the first
// failure, so order rules from general to specific ("non-empty" before
// "length range") to keep failure messages meaningful.
//
// The container takes no locks. It is designed for single-writer use where
// some higher-level scheduler serializes all mutating calls.
package property

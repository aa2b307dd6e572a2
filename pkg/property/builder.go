package property

import (
	"github.com/dmitrymomot/propkit/pkg/validator"
)

// Builder configures a validated property before it is built: a normalizer
// applied to every write, and an ordered list of rules evaluated after it.
// Registration order is evaluation order and cannot be changed once a
// property is built.
type Builder[T any] struct {
	field     string
	normalize func(T) T
	rules     []validator.Rule[T]
}

// Define starts a builder for a property bound to the given field name.
// The field name appears in validation errors produced by the property.
func Define[T any](field string) *Builder[T] {
	return &Builder[T]{field: field}
}

// Normalize sets the normalization function applied to every candidate
// value before validation. The last call wins; when never called, values
// are stored as given.
func (b *Builder[T]) Normalize(fn func(T) T) *Builder[T] {
	b.normalize = fn
	return b
}

// Rule registers a validation rule from its parts. Rules run in
// registration order on every write.
func (b *Builder[T]) Rule(code int, check func(T) bool, message func(T) string) *Builder[T] {
	b.rules = append(b.rules, validator.NewRule(code, check, message))
	return b
}

// Rules registers pre-built rules, preserving their order.
func (b *Builder[T]) Rules(rules ...validator.Rule[T]) *Builder[T] {
	b.rules = append(b.rules, rules...)
	return b
}

// Build normalizes initial, runs every registered rule in order against the
// normalized value, and returns the property holding it. On the first
// failing rule it returns that rule's error and no property: construction
// is all-or-nothing. The built property owns a frozen copy of the rule
// list, so the builder may be reused to mint further independent
// properties.
func (b *Builder[T]) Build(initial T) (*Property[T], error) {
	p := &Property[T]{
		field:     b.field,
		normalize: b.normalize,
		rules:     append([]validator.Rule[T]{}, b.rules...),
	}
	if err := p.Set(initial); err != nil {
		return nil, err
	}
	return p, nil
}

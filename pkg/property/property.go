package property

import (
	"github.com/dmitrymomot/propkit/pkg/validator"
)

// Property is a validated scalar container: a single typed value that is
// guaranteed, at all times after a successful Build or Set, to be
// normalized and to satisfy every rule registered on its builder.
//
// A property performs no locking. Mutation must be serialized by the
// caller; reads are plain field access.
type Property[T any] struct {
	field     string
	value     T
	normalize func(T) T
	rules     []validator.Rule[T]
}

// Field returns the field name the property is bound to.
func (p *Property[T]) Field() string { return p.field }

// Get returns the current stored value. Validation is an invariant of
// storage, not of read, so no rules run here.
func (p *Property[T]) Get() T { return p.value }

// Set normalizes v, runs every rule in registration order against the
// normalized value, and commits it. On the first failing rule the stored
// value is left unchanged and the rule's error, stamped with the
// property's field name, is returned. Normalization runs exactly once per
// write; rules only ever observe the normalized value.
func (p *Property[T]) Set(v T) error {
	if p.normalize != nil {
		v = p.normalize(v)
	}
	if err := validator.Apply(v, p.rules...); err != nil {
		if ve, ok := validator.ExtractValidationError(err); ok {
			return ve.WithField(p.field)
		}
		return err
	}
	p.value = v
	return nil
}

// Swap performs a validated write of v and returns the value it replaced.
// On failure the stored value is unchanged and returned alongside the
// error. This is the choke point for rename-style operations that must
// report the previous value atomically with the write.
func (p *Property[T]) Swap(v T) (T, error) {
	old := p.value
	if err := p.Set(v); err != nil {
		return old, err
	}
	return old, nil
}

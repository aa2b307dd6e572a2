package bank

import (
	"github.com/dmitrymomot/propkit/pkg/identity"
	"github.com/dmitrymomot/propkit/pkg/property"
	"github.com/dmitrymomot/propkit/pkg/sanitizer"
	"github.com/dmitrymomot/propkit/pkg/validator"
)

// Stable rule codes for bank name validation. The codes identify the
// violated rule for programmatic handling and catalog lookup, independent
// of the message text.
const (
	// CodeNameRequired is reported when the name is empty after normalization.
	CodeNameRequired = 1000
	// CodeNameLength is reported when the name length is outside the configured bounds.
	CodeNameLength = 1001
)

// NormalizeName collapses runs of whitespace to single spaces and trims
// the edges. It is applied to every name write before validation.
var NormalizeName = sanitizer.CollapseWhitespace

// NameRules returns the ordered name rule set for the given bounds.
// Non-empty runs first so that a blank name reports CodeNameRequired
// rather than a misleading length violation.
func NameRules(cfg Config) []validator.Rule[string] {
	return []validator.Rule[string]{
		validator.NonEmpty(CodeNameRequired),
		validator.LenBetween(CodeNameLength, cfg.NameMinLen, cfg.NameMaxLen),
	}
}

// Bank is a minimal domain entity with a single validated property. All
// mutation goes through validated writes, so the name is always normalized
// and compliant with the configured rules.
//
// A Bank takes no locks; like the identity sequence it draws from, it
// relies on the caller to serialize mutation.
type Bank struct {
	id   uint64
	name *property.Property[string]
}

// Option configures entity construction.
type Option func(*Config)

// WithConfig replaces the default name bounds.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// New creates a bank with an identifier drawn from seq and a validated,
// normalized name. When the initial name violates a rule, the rule's error
// is returned, no identifier is consumed, and no entity is created.
func New(seq *identity.Sequence, name string, opts ...Option) (*Bank, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	nameProp, err := property.Define[string]("name").
		Normalize(NormalizeName).
		Rules(NameRules(cfg)...).
		Build(name)
	if err != nil {
		return nil, err
	}

	return &Bank{
		id:   seq.Next(),
		name: nameProp,
	}, nil
}

// ID returns the bank's process-local identifier.
func (b *Bank) ID() uint64 { return b.id }

// Name returns the bank's current name.
func (b *Bank) Name() string { return b.name.Get() }

// Rename performs a validated write of newName and returns the name it
// replaced. A rejected name leaves the current name unchanged. Routing
// every rename through this single method keeps one choke point where a
// future cross-entity invariant, like global name uniqueness, could be
// enforced without relying on caller discipline.
func (b *Bank) Rename(newName string) (string, error) {
	return b.name.Swap(newName)
}

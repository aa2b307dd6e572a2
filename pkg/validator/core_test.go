package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/propkit/pkg/validator"
)

func TestRuleApply(t *testing.T) {
	rule := validator.NewRule(42,
		func(s string) bool { return s != "" },
		func(s string) string { return fmt.Sprintf("%q is not acceptable", s) },
	)

	t.Run("passes for accepted value", func(t *testing.T) {
		assert.NoError(t, rule.Apply("ok"))
	})

	t.Run("fails with rule code and message", func(t *testing.T) {
		err := rule.Apply("")
		require.Error(t, err)

		ve, ok := validator.ExtractValidationError(err)
		require.True(t, ok)
		assert.Equal(t, 42, ve.Code)
		assert.Equal(t, `"" is not acceptable`, ve.Message)
		assert.Empty(t, ve.Field)
	})

	t.Run("is deterministic for the same input", func(t *testing.T) {
		first := rule.Apply("")
		second := rule.Apply("")
		assert.Equal(t, first, second)
	})

	t.Run("zero-value rule reports nil predicate", func(t *testing.T) {
		var zero validator.Rule[string]
		assert.ErrorIs(t, zero.Apply("anything"), validator.ErrNilPredicate)
	})
}

func TestRuleWithValues(t *testing.T) {
	rule := validator.NewRule(7,
		func(n int) bool { return n >= 0 },
		func(n int) string { return fmt.Sprintf("%d is negative", n) },
	).WithValues(func(n int) map[string]any {
		return map[string]any{"value": n}
	})

	err := rule.Apply(-3)
	require.Error(t, err)

	ve, ok := validator.ExtractValidationError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"value": -3}, ve.TranslationValues)
}

func TestApply(t *testing.T) {
	first := validator.NonEmpty(1000)
	second := validator.LenBetween(1001, 4, 32)

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply("Monopoly Bank", first, second))
	})

	t.Run("returns nil for empty rule list", func(t *testing.T) {
		assert.NoError(t, validator.Apply("anything"))
	})

	t.Run("stops at the first failing rule", func(t *testing.T) {
		// Empty input violates both rules; the first registered code wins.
		err := validator.Apply("", first, second)
		require.Error(t, err)

		ve, ok := validator.ExtractValidationError(err)
		require.True(t, ok)
		assert.Equal(t, 1000, ve.Code)
	})

	t.Run("later rule failure is reported when earlier rules pass", func(t *testing.T) {
		err := validator.Apply("bit", first, second)
		require.Error(t, err)

		ve, ok := validator.ExtractValidationError(err)
		require.True(t, ok)
		assert.Equal(t, 1001, ve.Code)
	})
}

func TestValidationError(t *testing.T) {
	t.Run("formats without field", func(t *testing.T) {
		ve := validator.ValidationError{Code: 1001, Message: "too short"}
		assert.Equal(t, "validation failed [1001]: too short", ve.Error())
	})

	t.Run("formats with field", func(t *testing.T) {
		ve := validator.ValidationError{Field: "name", Code: 1001, Message: "too short"}
		assert.Equal(t, "name [1001]: too short", ve.Error())
	})

	t.Run("WithField returns a stamped copy", func(t *testing.T) {
		ve := validator.ValidationError{Code: 1000, Message: "empty"}
		stamped := ve.WithField("name")
		assert.Equal(t, "name", stamped.Field)
		assert.Empty(t, ve.Field)
	})
}

func TestExtractValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		_, ok := validator.ExtractValidationError(nil)
		assert.False(t, ok)
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		_, ok := validator.ExtractValidationError(assert.AnError)
		assert.False(t, ok)
		assert.False(t, validator.IsValidationError(assert.AnError))
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		inner := validator.ValidationError{Code: 5, Message: "bad"}
		wrapped := fmt.Errorf("saving entity: %w", inner)

		ve, ok := validator.ExtractValidationError(wrapped)
		require.True(t, ok)
		assert.Equal(t, 5, ve.Code)
		assert.True(t, validator.IsValidationError(wrapped))
	})
}

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/propkit/pkg/validator"
)

func TestOneOf(t *testing.T) {
	rule := validator.OneOf(40, "checking", "savings")

	assert.NoError(t, rule.Apply("checking"))
	assert.NoError(t, rule.Apply("savings"))

	err := rule.Apply("brokerage")
	ve, ok := validator.ExtractValidationError(err)
	require.True(t, ok)
	assert.Equal(t, 40, ve.Code)
	assert.Equal(t, "brokerage", ve.TranslationValues["value"])
}

func TestNotEqual(t *testing.T) {
	rule := validator.NotEqual(41, 0)

	assert.NoError(t, rule.Apply(7))
	assert.Error(t, rule.Apply(0))
}

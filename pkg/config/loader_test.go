package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/propkit/pkg/config"
)

type testConfig struct {
	Name    string `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
	Port    int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
	Debug   bool   `env:"CONFIG_TEST_DEBUG" envDefault:"false"`
	Require string `env:"CONFIG_TEST_REQUIRE,required"`
}

func TestLoad(t *testing.T) {
	t.Run("reads values from environment", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_NAME", "custom")
		t.Setenv("CONFIG_TEST_PORT", "9090")
		t.Setenv("CONFIG_TEST_DEBUG", "true")
		t.Setenv("CONFIG_TEST_REQUIRE", "present")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "custom", cfg.Name)
		assert.Equal(t, 9090, cfg.Port)
		assert.True(t, cfg.Debug)
	})

	t.Run("applies defaults for unset variables", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_REQUIRE", "present")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.False(t, cfg.Debug)
	})

	t.Run("fails when a required variable is missing", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("fails on unparsable values", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_PORT", "not-a-number")
		t.Setenv("CONFIG_TEST_REQUIRE", "present")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns on success", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_REQUIRE", "present")

		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() { config.MustLoad[testConfig](nil) })
	})
}

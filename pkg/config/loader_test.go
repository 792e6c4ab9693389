package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shopkit/pkg/config"
)

type shopConfig struct {
	Country string   `env:"SHOPKIT_TEST_COUNTRY" envDefault:"GB"`
	Level   string   `env:"SHOPKIT_TEST_LEVEL" envDefault:"info"`
	Allowed []string `env:"SHOPKIT_TEST_ALLOWED" envSeparator:","`
}

type requiredConfig struct {
	Secret string `env:"SHOPKIT_TEST_SECRET,required"`
}

type badConfig struct {
	Port int `env:"SHOPKIT_TEST_PORT"`
}

func unsetShopEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SHOPKIT_TEST_COUNTRY", "SHOPKIT_TEST_LEVEL", "SHOPKIT_TEST_ALLOWED"} {
		// t.Setenv registers the restore; Unsetenv then clears it for this test.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		unsetShopEnv(t)

		var cfg shopConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "GB", cfg.Country)
		assert.Equal(t, "info", cfg.Level)
		assert.Empty(t, cfg.Allowed)
	})

	t.Run("reads process environment", func(t *testing.T) {
		t.Setenv("SHOPKIT_TEST_COUNTRY", "US")
		t.Setenv("SHOPKIT_TEST_ALLOWED", "GB,US,CA")

		var cfg shopConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "US", cfg.Country)
		assert.Equal(t, []string{"GB", "US", "CA"}, cfg.Allowed)
	})

	t.Run("missing required variable", func(t *testing.T) {
		t.Setenv("SHOPKIT_TEST_SECRET", "")
		require.NoError(t, os.Unsetenv("SHOPKIT_TEST_SECRET"))

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("SHOPKIT_TEST_PORT", "eighty")

		var cfg badConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *shopConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("later files override earlier ones", func(t *testing.T) {
		unsetShopEnv(t)

		require.NoError(t, config.LoadEnv("testdata/.env.shop", "testdata/.env.override"))

		var cfg shopConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "DE", cfg.Country)
		assert.Equal(t, "debug", cfg.Level)
	})

	t.Run("no paths is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "0.08", cfg.Store.SalesTaxRate.String())
	assert.Empty(t, cfg.Store.DataFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SUPERMART_SALES_TAX", "0.1")
	t.Setenv("SUPERMART_DATA_FILE", "store.txt")
	t.Setenv("LOGGER_LEVEL", "debug")
	t.Setenv("LOGGER_DISABLE_CALLER", "false")

	cfg := LoadEnv()

	assert.Equal(t, "0.1", cfg.Store.SalesTaxRate.String())
	assert.Equal(t, "store.txt", cfg.Store.DataFile)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.False(t, cfg.Logger.DisableCaller)
}

func TestGetEnvDecimalIgnoresGarbage(t *testing.T) {
	t.Setenv("SUPERMART_SALES_TAX", "eight percent")

	cfg := LoadEnv()
	assert.Equal(t, "0.08", cfg.Store.SalesTaxRate.String())
}

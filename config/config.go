package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Store  StoreConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StoreConfig struct {
	// DataFile is the store snapshot to load. Empty means prompt the user.
	DataFile     string
	SalesTaxRate decimal.Decimal
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", true),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Store: StoreConfig{
			DataFile:     getEnv("SUPERMART_DATA_FILE", ""),
			SalesTaxRate: getEnvDecimal("SUPERMART_SALES_TAX", "0.08"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(fallback)
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	CatalogPath string `validate:"required"`
	RecipesPath string `validate:"required"`
	UnitsPath   string // optional YAML conversion table override
	Port        int    `validate:"gt=0,lte=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	CacheSize   int    `validate:"gt=0"`
	Locale      string `validate:"required"`
	Environment string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env if present, but don't fail if it isn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		CatalogPath: getEnv("CATALOG_PATH", "inventory.csv"),
		RecipesPath: getEnv("RECIPES_PATH", "recipes.csv"),
		UnitsPath:   getEnv("UNITS_PATH", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Locale:      getEnv("LOCALE", "en-US"),
		Environment: getEnv("ENVIRONMENT", "dev"),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.CacheSize, err = getEnvInt("REPORT_CACHE_SIZE", 256); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}

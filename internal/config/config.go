// Package config reads CLI defaults from the environment, following the
// ASSOC_* variable convention.
package config

import (
	"os"
	"strconv"

	"goassoc/domain/measure"
	"goassoc/internal/errors"
)

// Config holds the default test parameters for the CLI
type Config struct {
	Method        string
	Alternative   string
	RemoveMissing bool
	Sheet         string
}

// Load reads configuration from environment variables, validates it,
// and fills defaults
func Load() (*Config, error) {
	cfg := &Config{
		Method:        getEnv("ASSOC_METHOD", "pearson"),
		Alternative:   getEnv("ASSOC_ALTERNATIVE", "two-sided"),
		RemoveMissing: getEnvBool("ASSOC_REMOVE_MISSING", true),
		Sheet:         os.Getenv("ASSOC_SHEET"),
	}

	if _, err := measure.Resolve(cfg.Method); err != nil {
		return nil, errors.Wrap(err, "invalid ASSOC_METHOD")
	}
	if _, err := measure.ResolveAlternative(cfg.Alternative); err != nil {
		return nil, errors.Wrap(err, "invalid ASSOC_ALTERNATIVE")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Package config resolves gocoiler defaults from a .env file and the
// process environment. Command line flags override everything loaded here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gocoiler/internal/winding"
	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvMaxIterations = "COILER_MAX_ITERATIONS"
	EnvSafetyFactor  = "COILER_SAFETY_FACTOR"
	EnvPattern       = "COILER_PATTERN"
	EnvLogLevel      = "COILER_LOG_LEVEL"
)

// Config holds the resolved defaults
type Config struct {
	MaxIterations int
	SafetyFactor  float64
	Pattern       winding.Pattern
	LogLevel      string
}

// Default returns the built-in defaults
func Default() Config {
	return Config{
		MaxIterations: winding.DefaultMaxIterations,
		SafetyFactor:  1,
		Pattern:       winding.UnevenLayers,
		LogLevel:      "info",
	}
}

// Load reads envFile (if it exists) into the environment without overriding
// variables that are already set, then resolves the configuration.
// A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv resolves the configuration through the given lookup function
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvMaxIterations)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvMaxIterations, v)
		}
		cfg.MaxIterations = n
	}

	if v := strings.TrimSpace(getenv(EnvSafetyFactor)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || !(f > 0) {
			return Config{}, fmt.Errorf("%s must be a positive number, got %q", EnvSafetyFactor, v)
		}
		cfg.SafetyFactor = f
	}

	if v := strings.TrimSpace(getenv(EnvPattern)); v != "" {
		p, err := winding.ParsePattern(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPattern, err)
		}
		cfg.Pattern = p
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		switch strings.ToLower(v) {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = strings.ToLower(v)
		default:
			return Config{}, fmt.Errorf("%s must be one of debug, info, warn, error, got %q", EnvLogLevel, v)
		}
	}

	return cfg, nil
}

// Options converts the configuration into solver options
func (c Config) Options() winding.Options {
	return winding.Options{
		MaxIterations: c.MaxIterations,
		SafetyFactor:  c.SafetyFactor,
	}
}

// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/zapponejosh/khronos/internal/calendar"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	DatabasePath string // observance catalog (SQLite)

	// API_KEY guards the catalog write endpoints. Without one, writes are
	// open in development and refused elsewhere.
	APIKey string

	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
	LogFile   string // optional rotating log file, in addition to stdout

	// Calendar used when a request doesn't name one
	DefaultCalendar string
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Load reads configuration from the environment, after a .env file if one
// exists. Every problem is reported in one error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, portErr := getEnvInt("PORT", 8080)
	cfg := &Config{
		Port:            port,
		Env:             getEnv("ENV", EnvDevelopment),
		DatabasePath:    getEnv("DATABASE_PATH", "./data/khronos.db"),
		APIKey:          getEnv("API_KEY", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		LogFile:         getEnv("LOG_FILE", ""),
		DefaultCalendar: getEnv("DEFAULT_CALENDAR", "gregorian"),
	}

	if err := errors.Join(portErr, cfg.Validate()); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}
	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	errs = append(errs,
		oneOf("ENV", c.Env, EnvDevelopment, EnvStaging, EnvProduction),
		oneOf("LOG_LEVEL", c.LogLevel, "debug", "info", "warn", "error"),
		oneOf("LOG_FORMAT", c.LogFormat, "json", "text"),
	)

	if _, err := calendar.Lookup(c.DefaultCalendar); err != nil {
		errs = append(errs, fmt.Errorf("DEFAULT_CALENDAR: %w", err))
	}

	return errors.Join(errs...)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func oneOf(key, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), value)
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable. A value that does not
// parse is an error rather than a silent fallback.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}

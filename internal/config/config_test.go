package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/zapponejosh/khronos/internal/calendar"
)

var configVars = []string{
	"PORT", "ENV", "DATABASE_PATH", "API_KEY",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "DEFAULT_CALENDAR",
}

// clearEnv blanks every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range configVars {
		t.Setenv(v, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.DatabasePath != "./data/khronos.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "./data/khronos.db")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" || cfg.LogFile != "" {
		t.Errorf("logging = %q/%q/%q, want info/text/none", cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	}
	if cfg.DefaultCalendar != "gregorian" {
		t.Errorf("DefaultCalendar = %q, want gregorian", cfg.DefaultCalendar)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_PATH", "/data/test.db")
	t.Setenv("API_KEY", "secret-key-123")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "/var/log/khronos.log")
	t.Setenv("DEFAULT_CALENDAR", "Hebrew")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Config{
		Port:            3000,
		Env:             EnvProduction,
		DatabasePath:    "/data/test.db",
		APIKey:          "secret-key-123",
		LogLevel:        "debug",
		LogFormat:       "json",
		LogFile:         "/var/log/khronos.log",
		DefaultCalendar: "Hebrew",
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "0")
	t.Setenv("DEFAULT_CALENDAR", "mayan")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() with invalid env should fail")
	}
	// All problems are reported together.
	for _, want := range []string{"PORT", "DEFAULT_CALENDAR"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Load() error %q does not mention %s", err, want)
		}
	}
	if !errors.Is(err, calendar.ErrUnknownCalendar) {
		t.Errorf("Load() error = %v, want ErrUnknownCalendar in chain", err)
	}
}

func TestLoad_PortNotANumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "abc")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() with PORT=abc should fail")
	}
	for _, want := range []string{`PORT must be an integer, got "abc"`, "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Load() error %q does not mention %s", err, want)
		}
	}
}

func validConfig() Config {
	return Config{
		Port:            8080,
		Env:             EnvDevelopment,
		DatabasePath:    "./data/test.db",
		LogLevel:        "info",
		LogFormat:       "text",
		DefaultCalendar: "gregorian",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid development config", func(*Config) {}, false},
		{"valid production config", func(c *Config) {
			c.Env = EnvProduction
			c.APIKey = "required-in-prod"
			c.LogFormat = "json"
		}, false},
		{"production requires API key", func(c *Config) { c.Env = EnvProduction }, true},
		{"invalid port - too low", func(c *Config) { c.Port = 0 }, true},
		{"invalid port - too high", func(c *Config) { c.Port = 70000 }, true},
		{"invalid environment", func(c *Config) { c.Env = "invalid" }, true},
		{"invalid log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"invalid log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"empty database path", func(c *Config) { c.DatabasePath = "" }, true},
		{"log file is optional", func(c *Config) { c.LogFile = "./logs/khronos.log" }, false},
		{"every calendar accepted", func(c *Config) { c.DefaultCalendar = "vulcan" }, false},
		{"unknown calendar", func(c *Config) { c.DefaultCalendar = "mayan" }, true},
		{"empty calendar", func(c *Config) { c.DefaultCalendar = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_Message(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "verbose"

	err := cfg.Validate()
	want := `LOG_LEVEL must be one of: debug, info, warn, error; got "verbose"`
	if err == nil || err.Error() != want {
		t.Errorf("Validate() error = %v, want %q", err, want)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	for env, want := range map[string]bool{
		EnvDevelopment: true,
		EnvStaging:     false,
		EnvProduction:  false,
	} {
		cfg := &Config{Env: env}
		if got := cfg.IsDevelopment(); got != want {
			t.Errorf("IsDevelopment() for %s = %v, want %v", env, got, want)
		}
	}
}

// Package config loads and validates CLI configuration.
// Values come from DIARY_-prefixed environment variables layered over
// built-in defaults; no config file is required.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the diary CLI.
type Config struct {
	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the slog handler. Defaults to "text".
	// Valid values: text, json.
	LogFormat string
}

// Load reads configuration from the environment and returns a validated
// Config. Set DIARY_LOG_LEVEL and DIARY_LOG_FORMAT to override defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("DIARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Config{
		LogLevel:  strings.ToLower(v.GetString("log.level")),
		LogFormat: strings.ToLower(v.GetString("log.format")),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid log level %q (want debug, info, warn, or error)", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid log format %q (want text or json)", cfg.LogFormat)
	}

	return cfg, nil
}

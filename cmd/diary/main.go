// Package main is the entry point for the workout diary CLI.
// Its sole responsibility is wiring configuration, logging, and the
// command tree together. No business logic belongs here.
package main

import (
	"log/slog"
	"os"

	"github.com/tmluong/workout-diary/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before one is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the process-wide slog logger from config.
// Logs go to stderr so command output on stdout stays machine-readable.
func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// Package logger builds the application's structured logger from configuration.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// NewLogger initializes a slog logger writing to output. A nil output selects
// the configured stream (stdout unless "stderr" is requested).
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		if cfg.Output == "stderr" {
			output = os.Stderr
		} else {
			output = os.Stdout
		}
	}

	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(output, opts))
	}
	return slog.New(slog.NewTextHandler(output, opts))
}

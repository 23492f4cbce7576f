package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// BuildLogger constructs the root slog logger from the logging config.
func BuildLogger(cfg C) *slog.Logger {
	logging := cfg.GetRoot().Logging

	level := slog.LevelInfo
	switch logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	switch logging.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	default:
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}

// Package logger provides a shared structured logger for the service.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/fraudwatch-risk-engine/internal/config"
)

// New creates a slog.Logger emitting JSON to stdout at the configured level,
// annotated with the application name and environment.
func New(cfg *config.Config) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Logging.Level),
	})

	return slog.New(handler).With(
		slog.String("app", cfg.Application.Name),
		slog.String("env", cfg.Application.Env),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/taneeshamadhu18/video-call-assignment/internal/config"
)

// NewLogger creates a *slog.Logger writing to os.Stderr and sets it as the
// default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with source info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	return NewLoggerTo(os.Stderr, cfg)
}

// NewLoggerTo is NewLogger with an explicit destination. The console uses it
// to keep log lines out of the interactive screen.
func NewLoggerTo(w io.Writer, cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(w, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

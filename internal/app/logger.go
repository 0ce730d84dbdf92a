package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/antonvasilev/zenpoints-backend/internal/config"
)

// NewLogger builds the process-wide *slog.Logger from LogConfig and installs
// it via slog.SetDefault.
//
// Format "json" is structured output for production; "text" adds source
// locations for local development. Level accepts debug, info, warn and error,
// case-insensitive, defaulting to info. Output always goes to os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
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

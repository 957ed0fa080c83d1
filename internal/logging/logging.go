// Package logging configures the process-wide structured logger.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var ErrInvalidLevel = errors.New("invalid log level")

type ctxKey string

// BriefKey carries the title of the brief being processed.
const BriefKey ctxKey = "brief"

var defaultLogger *slog.Logger

// Init builds a logger writing to w and installs it as the slog default.
// Format "json" selects the JSON handler; anything else is text.
func Init(level, format string, w io.Writer) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
	return defaultLogger
}

// ParseLevel parses a level name. The empty string means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
}

// Default returns the logger installed by Init, or slog's default.
func Default() *slog.Logger {
	if defaultLogger == nil {
		return slog.Default()
	}
	return defaultLogger
}

// WithBrief tags ctx with the brief title for FromContext.
func WithBrief(ctx context.Context, title string) context.Context {
	return context.WithValue(ctx, BriefKey, title)
}

// FromContext returns the default logger with any brief title in ctx attached.
func FromContext(ctx context.Context) *slog.Logger {
	logger := Default()
	if title, ok := ctx.Value(BriefKey).(string); ok && title != "" {
		logger = logger.With("brief", title)
	}
	return logger
}

// Package logging configures the structured logger. Logs are written to a
// rotating file because the terminal is owned by the timer interface.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Options controls the logger.
type Options struct {
	Level  string
	Format string
	// Writer overrides the log file when set.
	Writer io.Writer
	Path   string
}

// ParseLevel converts a level name to a slog level. Unknown names map to
// info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// New returns a logger built from opts.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
	}

	handlerOpts := &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	}

	var handler slog.Handler

	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// Init builds a logger from opts and installs it as the default.
func Init(opts Options) *slog.Logger {
	logger := New(opts)

	slog.SetDefault(logger)

	return logger
}

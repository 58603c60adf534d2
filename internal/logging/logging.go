// Package logging provides structured logging using Go's slog package, in
// the style the parser uses for debug tracing (mirroring the LOG.debug
// calls threaded through the Python original's state machine).
package logging

import (
	"log/slog"
	"os"
	"time"
)

var defaultLogger *slog.Logger

func init() {
	InitLogger(LevelInfo, FormatText)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages, including per-token parser trace lines.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
)

// InitLogger initializes the global logger with the specified level and format.
func InitLogger(level Level, format Format) {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// GetLogger returns the global logger instance, suitable for handing to
// parser.New.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// ParseTrace logs a single parser state transition: the token consumed,
// the expect state before it, and the expect state after. Callers pass
// these as plain strings rather than the parser package's own enum types
// to keep this package independent of core/parser.
func ParseTrace(token, before, after string, args ...any) {
	allArgs := []any{"token", token, "expect_before", before, "expect_after", after}
	allArgs = append(allArgs, args...)
	defaultLogger.Debug("parse_trace", allArgs...)
}

// CanonLoad logs a successful canon load: name, language, and book count.
func CanonLoad(name, lang string, bookCount int, args ...any) {
	allArgs := []any{"canon", name, "lang", lang, "books", bookCount}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("canon_load", allArgs...)
}

// CanonLoadError logs a canon load failure.
func CanonLoadError(source string, err error, args ...any) {
	allArgs := []any{"source", source, "error", err.Error()}
	allArgs = append(allArgs, args...)
	defaultLogger.Error("canon_load_error", allArgs...)
}

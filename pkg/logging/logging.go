// Package logging provides structured diagnostic logging rendered by pterm.
//
// Loggers are plain *slog.Logger values. Records carry a "subsystem"
// attribute naming the part of the application that logged them.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel returns the matching slog level; unknown levels map to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l LogLevel) ptermLevel() pterm.LogLevel {
	switch l {
	case LevelDebug:
		return pterm.LogLevelDebug
	case LevelWarn:
		return pterm.LogLevelWarn
	case LevelError:
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

// ParseLevel parses debug, info, warn or error, in any case.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

var defaultLogger = Discard()

// New returns a logger writing records at level and above to output.
func New(level LogLevel, output io.Writer) *slog.Logger {
	if output == nil {
		output = os.Stderr
	}
	logger := pterm.DefaultLogger.
		WithLevel(level.ptermLevel()).
		WithWriter(output)

	return slog.New(&leveledHandler{
		Handler: pterm.NewSlogHandler(logger),
		min:     level.SlogLevel(),
	})
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// InitForCLI installs the package logger used by Debug, Info, Warn and
// Error and returns it.
func InitForCLI(level LogLevel, output io.Writer) *slog.Logger {
	defaultLogger = New(level, output)
	return defaultLogger
}

// Default returns the package logger.
func Default() *slog.Logger {
	return defaultLogger
}

// For returns the package logger tagged with subsystem.
func For(subsystem string) *slog.Logger {
	return defaultLogger.With("subsystem", subsystem)
}

// leveledHandler drops records below min before they reach the handler.
type leveledHandler struct {
	slog.Handler
	min slog.Level
}

func (h *leveledHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.min && h.Handler.Enabled(ctx, level)
}

func (h *leveledHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &leveledHandler{Handler: h.Handler.WithAttrs(attrs), min: h.min}
}

func (h *leveledHandler) WithGroup(name string) slog.Handler {
	return &leveledHandler{Handler: h.Handler.WithGroup(name), min: h.min}
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	if !defaultLogger.Enabled(context.Background(), level.SlogLevel()) {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

package logger

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

// Init initializes the logger to output to console (stdout) with JSON format
func Init() {
	SetOutput(os.Stdout)
}

// SetOutput rebuilds the logger on top of w. Tests use it to capture lines.
func SetOutput(w io.Writer) {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true, // Include file and line number in logs
	})

	Logger = slog.New(handler)
}

// LogError logs an error with a message and optional key-value pairs
func LogError(msg string, err error, args ...any) {
	if Logger == nil {
		Init() // Auto-initialize if not done
	}

	attrs := []any{"error", err}
	attrs = append(attrs, args...)
	Logger.Error(msg, attrs...)
}

// LogInfo logs an informational message with optional key-value pairs
func LogInfo(msg string, args ...any) {
	if Logger == nil {
		Init()
	}
	Logger.Info(msg, args...)
}

// LogWarn logs a warning message with optional key-value pairs
func LogWarn(msg string, args ...any) {
	if Logger == nil {
		Init()
	}
	Logger.Warn(msg, args...)
}

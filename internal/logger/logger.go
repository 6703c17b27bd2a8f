// Package logger provides verbose logging for the gearscan CLI.
// When verbose mode is enabled via the --verbose flag, structured debug
// records are written to stderr to show how a schematic was loaded and
// scanned. With verbose mode off every call is a no-op.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	base    = newSlog(os.Stderr)
)

// newSlog builds a text logger without timestamps so output is stable.
func newSlog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = newSlog(w)
}

func emit(level slog.Level, msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Log(context.Background(), level, msg, args...)
	}
}

// Debug logs a formatted message at debug level if verbose mode is enabled.
func Debug(format string, args ...any) {
	emit(slog.LevelDebug, fmt.Sprintf(format, args...))
}

// Section logs the start of a named phase if verbose mode is enabled.
func Section(name string) {
	emit(slog.LevelInfo, "section", "name", name)
}

// Info logs a formatted message at info level if verbose mode is enabled.
func Info(format string, args ...any) {
	emit(slog.LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs a formatted message at warn level if verbose mode is enabled.
func Warn(format string, args ...any) {
	emit(slog.LevelWarn, fmt.Sprintf(format, args...))
}

// ABOUTME: Construction of the file-backed slog logger used across the app
// ABOUTME: Explicitly built and injected; verbose mode echoes to stderr

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup opens (or creates) the log file and returns a logger writing to it,
// plus a close function for the underlying file. With verbose set, records
// are echoed to stderr and the level drops to debug.
func Setup(path string, verbose bool) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	level := slog.LevelInfo
	var w io.Writer = f
	if verbose {
		level = slog.LevelDebug
		w = io.MultiWriter(f, os.Stderr)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f.Close, nil
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

package config

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger creates the application logger: JSON to file always, text to
// stderr only in verbose mode. Stdout stays untouched because it belongs to
// the TUI and report output. Returns the logger and a cleanup function.
func SetupLogger(logFile string, level slog.Level, verbose bool) (*slog.Logger, func() error) {
	noop := func() error { return nil }

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Fall back to stderr-only if the file cannot be opened
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		logger := slog.New(handler)
		logger.Error("failed to open log file, using stderr only", "error", err, "file", logFile)
		return logger, noop
	}

	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	cleanup := func() error { return file.Close() }

	if !verbose {
		return slog.New(fileHandler), cleanup
	}

	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(fileHandler, stderrHandler)), cleanup
}

// SetupLoggerWithWriters creates a logger with custom writers (for testing).
func SetupLoggerWithWriters(file, stderr io.Writer, level slog.Level) *slog.Logger {
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	stderrHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(fileHandler, stderrHandler))
}

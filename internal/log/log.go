// Package log configures the structured logger used by the mathmap CLI.
// The compiler and VM packages are pure functions and never log; only the
// command-line front-end reports what it's doing.
package log

import (
	"log/slog"
	"os"
)

// Level holds the current log level. It can be raised at runtime (e.g. by
// the CLI's -debug flag) without reconstructing the logger.
var Level = new(slog.LevelVar)

// defaultLogger is built once over a text handler writing to stderr.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: Level,
}))

// Default returns the package-wide logger.
func Default() *slog.Logger {
	return defaultLogger
}

// SetDebug raises or lowers the logger's verbosity.
func SetDebug(enabled bool) {
	if enabled {
		Level.Set(slog.LevelDebug)
	} else {
		Level.Set(slog.LevelInfo)
	}
}

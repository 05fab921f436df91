// Package config holds process-level configuration: logger initialization
// and load-time overrides for the engine's factor tables.
package config

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // Logger is intentionally global for application-wide structured logging
var Logger zerolog.Logger

// logMu protects concurrent access to Logger.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger initializes the package-level Logger with the given level.
// When console is true output goes through a human-readable console writer,
// otherwise structured JSON is written directly to stderr.
//
// An unparseable level falls back to InfoLevel rather than failing: logging
// setup must never block a calculation.
func InitLogger(level string, console bool) {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if console {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// GetLogger returns the global logger.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

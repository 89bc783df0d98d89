// internal/logging/logging.go
//
// zerolog setup shared by the CLI and the engine.
// Setup builds a logger (JSON lines, or zerolog's human console format), applies
// the level globally and installs it as the package-level log.Logger, so code that
// logs through github.com/rs/zerolog/log picks it up.

package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures global logging and returns the installed logger.
// An unknown level falls back to info.
func Setup(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	logger := zerolog.New(w).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

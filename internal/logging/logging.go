// Package logging builds the process logger.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a structured logger writing to w. Unknown level names fall back
// to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}

// NewConsole returns a human-readable logger on stderr for CLI runs.
func NewConsole(level string) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

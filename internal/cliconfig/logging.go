package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Logger returns the tool's diagnostics logger. It writes to stderr so
// that shim output on stdout stays clean.
func Logger() zerolog.Logger {
	return logger
}

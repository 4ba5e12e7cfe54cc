package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// TagField is the zerolog field key holding the tag.
const TagField = "tag"

// ZerologAdapter implements Logger using zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new zerolog adapter with console output on stdout.
func NewZerologAdapter() *ZerologAdapter {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Logger()
	return &ZerologAdapter{logger: logger}
}

// NewZerologAdapterWithLogger creates an adapter wrapping an existing zerolog.Logger.
func NewZerologAdapterWithLogger(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Debug logs a debug-level event.
func (z *ZerologAdapter) Debug(tag, msg string) int {
	z.logger.Debug().Str(TagField, tag).Msg(msg)
	return StatusOK
}

// Info logs an info-level event.
func (z *ZerologAdapter) Info(tag, msg string) int {
	z.logger.Info().Str(TagField, tag).Msg(msg)
	return StatusOK
}

// Warn logs a warning-level event.
func (z *ZerologAdapter) Warn(tag, msg string) int {
	z.logger.Warn().Str(TagField, tag).Msg(msg)
	return StatusOK
}

// Error logs an error-level event.
func (z *ZerologAdapter) Error(tag, msg string) int {
	z.logger.Error().Str(TagField, tag).Msg(msg)
	return StatusOK
}

// Logger returns the underlying zerolog.Logger.
func (z *ZerologAdapter) Logger() zerolog.Logger {
	return z.logger
}

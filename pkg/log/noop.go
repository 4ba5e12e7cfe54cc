package log

// NoopLogger implements Logger by discarding all log messages.
type NoopLogger struct{}

// NewNoopLogger creates a new no-op logger.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

// Debug discards the message.
func (NoopLogger) Debug(tag, msg string) int { return StatusOK }

// Info discards the message.
func (NoopLogger) Info(tag, msg string) int { return StatusOK }

// Warn discards the message.
func (NoopLogger) Warn(tag, msg string) int { return StatusOK }

// Error discards the message.
func (NoopLogger) Error(tag, msg string) int { return StatusOK }

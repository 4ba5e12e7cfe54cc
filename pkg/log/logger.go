package log

import "fmt"

// StatusOK is the status code every entry point returns. It exists for
// signature compatibility with the mocked facility and carries no outcome.
const StatusOK = 0

// Logger is the leveled, tagged call surface.
// Implementations hold no per-call state.
type Logger interface {
	// Debug logs a debug-level message under tag.
	Debug(tag, msg string) int

	// Info logs an info-level message under tag.
	Info(tag, msg string) int

	// Warn logs a warning-level message under tag.
	Warn(tag, msg string) int

	// Error logs an error-level message under tag.
	Error(tag, msg string) int
}

// Format renders one line without the trailing newline.
func Format(level Level, tag, msg string) string {
	return fmt.Sprintf("%s: %s: %s", level, tag, msg)
}

// Log dispatches msg to the method of logger matching level.
// Unknown levels are logged at debug.
func Log(logger Logger, level Level, tag, msg string) int {
	switch level {
	case LevelInfo:
		return logger.Info(tag, msg)
	case LevelWarn:
		return logger.Warn(tag, msg)
	case LevelError:
		return logger.Error(tag, msg)
	default:
		return logger.Debug(tag, msg)
	}
}

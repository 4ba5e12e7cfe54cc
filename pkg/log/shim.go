package log

import (
	"fmt"
	"io"
	"os"
)

// Shim implements Logger by printing each call to an output stream.
// Write errors are ignored.
type Shim struct {
	out io.Writer
}

// NewShim creates a shim that writes to the process's standard output.
// os.Stdout is resolved on every call, so swapping it takes effect.
func NewShim() *Shim {
	return &Shim{}
}

// NewShimWriter creates a shim that writes to w.
func NewShimWriter(w io.Writer) *Shim {
	return &Shim{out: w}
}

// Debug prints a DEBUG line.
func (s *Shim) Debug(tag, msg string) int { return s.log(LevelDebug, tag, msg) }

// Info prints an INFO line.
func (s *Shim) Info(tag, msg string) int { return s.log(LevelInfo, tag, msg) }

// Warn prints a WARN line.
func (s *Shim) Warn(tag, msg string) int { return s.log(LevelWarn, tag, msg) }

// Error prints an ERROR line.
func (s *Shim) Error(tag, msg string) int { return s.log(LevelError, tag, msg) }

func (s *Shim) log(level Level, tag, msg string) int {
	out := s.out
	if out == nil {
		out = os.Stdout
	}
	_, _ = fmt.Fprintln(out, Format(level, tag, msg))
	return StatusOK
}

var std = NewShim()

// Default returns the stdout shim behind the package-level entry points.
func Default() Logger {
	return std
}

// D logs at debug level on standard output.
func D(tag, msg string) int { return std.Debug(tag, msg) }

// I logs at info level on standard output.
func I(tag, msg string) int { return std.Info(tag, msg) }

// W logs at warn level on standard output.
func W(tag, msg string) int { return std.Warn(tag, msg) }

// E logs at error level on standard output.
func E(tag, msg string) int { return std.Error(tag, msg) }

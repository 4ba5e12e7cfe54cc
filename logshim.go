// Package logshim is a stand-in for a platform logging facility, for running
// code that issues leveled log calls inside a Go test binary.
//
// Example usage:
//
//	logshim.Debug("MainActivity", "onCreate called")
//	// DEBUG: MainActivity: onCreate called
//
// Code that should be testable without reading stdout depends on Logger and
// receives a Recorder in tests:
//
//	rec := logshim.NewRecorder()
//	vm := NewGameViewModel(rec)
//	vm.Flip(3)
//	fmt.Println(rec.Lines())
package logshim

import (
	"github.com/bft-labs/logshim/pkg/log"
)

// Logger is the leveled, tagged call surface. Every method returns 0.
type Logger = log.Logger

// Level is one of LevelDebug, LevelInfo, LevelWarn, LevelError.
type Level = log.Level

// Recorder captures calls in memory for assertions.
type Recorder = log.Recorder

// Entry is one call captured by a Recorder.
type Entry = log.Entry

const (
	LevelDebug = log.LevelDebug
	LevelInfo  = log.LevelInfo
	LevelWarn  = log.LevelWarn
	LevelError = log.LevelError
)

// Errors returned by New and ParseLevel. Check with errors.Is.
var (
	ErrUnknownBackend = log.ErrUnknownBackend
	ErrUnknownLevel   = log.ErrUnknownLevel
)

// Debug prints "DEBUG: <tag>: <msg>" to standard output and returns 0.
func Debug(tag, msg string) int { return log.D(tag, msg) }

// Info prints "INFO: <tag>: <msg>" to standard output and returns 0.
func Info(tag, msg string) int { return log.I(tag, msg) }

// Warn prints "WARN: <tag>: <msg>" to standard output and returns 0.
func Warn(tag, msg string) int { return log.W(tag, msg) }

// Error prints "ERROR: <tag>: <msg>" to standard output and returns 0.
func Error(tag, msg string) int { return log.E(tag, msg) }

// New returns the Logger for backend ("plain" or "zerolog").
func New(backend string) (Logger, error) {
	return log.NewBackend(backend)
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return log.NewRecorder()
}

// ParseLevel parses a level label or its single-letter alias.
func ParseLevel(s string) (Level, error) {
	return log.ParseLevel(s)
}

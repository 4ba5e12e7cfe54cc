package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestShim_Format(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		tag   string
		msg   string
		want  string
	}{
		{"debug", LevelDebug, "MainActivity", "onCreate called", "DEBUG: MainActivity: onCreate called\n"},
		{"info empty", LevelInfo, "", "", "INFO: : \n"},
		{"error", LevelError, "Net", "timeout after 30s", "ERROR: Net: timeout after 30s\n"},
		{"warn separators", LevelWarn, "Cache", "tag: with: colons", "WARN: Cache: tag: with: colons\n"},
		{"separator in tag", LevelInfo, "a: b", "c", "INFO: a: b: c\n"},
		{"embedded newline", LevelError, "Multi", "line one\nline two", "ERROR: Multi: line one\nline two\n"},
		{"non-ascii", LevelDebug, "Grüße", "日本語 ✓", "DEBUG: Grüße: 日本語 ✓\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := NewShimWriter(&buf)

			if got := Log(s, tt.level, tt.tag, tt.msg); got != StatusOK {
				t.Errorf("status = %d, want %d", got, StatusOK)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestShim_EntryPoints(t *testing.T) {
	var buf bytes.Buffer
	s := NewShimWriter(&buf)

	calls := []struct {
		call func(tag, msg string) int
		want string
	}{
		{s.Debug, "DEBUG: T: m"},
		{s.Info, "INFO: T: m"},
		{s.Warn, "WARN: T: m"},
		{s.Error, "ERROR: T: m"},
	}

	for _, c := range calls {
		buf.Reset()
		if got := c.call("T", "m"); got != 0 {
			t.Errorf("%s: status = %d, want 0", c.want, got)
		}
		if got := strings.TrimSuffix(buf.String(), "\n"); got != c.want {
			t.Errorf("output = %q, want %q", got, c.want)
		}
	}
}

func TestShim_CallOrder(t *testing.T) {
	var buf bytes.Buffer
	s := NewShimWriter(&buf)

	s.Info("A", "first")
	s.Error("B", "second")

	want := "INFO: A: first\nERROR: B: second\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestShim_WriteFailureIgnored(t *testing.T) {
	s := NewShimWriter(failingWriter{})

	for _, level := range Levels() {
		if got := Log(s, level, "tag", "msg"); got != StatusOK {
			t.Errorf("%s: status = %d, want %d", level, got, StatusOK)
		}
	}
}

func TestDefault(t *testing.T) {
	if Default() != Logger(std) {
		t.Error("Default() should return the package shim")
	}
}

package log

import (
	"errors"
	"testing"
)

func TestNewBackend(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
		check   func(Logger) bool
	}{
		{BackendPlain, false, func(l Logger) bool { _, ok := l.(*Shim); return ok }},
		{BackendZerolog, false, func(l Logger) bool { _, ok := l.(*ZerologAdapter); return ok }},
		{"syslog", true, nil},
		{"", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewBackend(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBackend(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownBackend) {
					t.Errorf("error = %v, want ErrUnknownBackend", err)
				}
				return
			}
			if !tt.check(l) {
				t.Errorf("NewBackend(%q) returned %T", tt.name, l)
			}
		})
	}
}

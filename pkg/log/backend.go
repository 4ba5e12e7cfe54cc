package log

import "fmt"

// Backend names accepted by NewBackend.
const (
	BackendPlain   = "plain"
	BackendZerolog = "zerolog"
)

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendPlain, BackendZerolog}
}

// NewBackend returns the stdout Logger registered under name.
func NewBackend(name string) (Logger, error) {
	switch name {
	case BackendPlain:
		return NewShim(), nil
	case BackendZerolog:
		return NewZerologAdapter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

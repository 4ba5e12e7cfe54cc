package log

import "errors"

// ErrUnknownLevel is returned by ParseLevel for input that names no level.
var ErrUnknownLevel = errors.New("logshim: unknown level")

// ErrUnknownBackend is returned by NewBackend for an unregistered name.
var ErrUnknownBackend = errors.New("logshim: unknown backend")

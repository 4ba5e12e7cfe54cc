package log

// Version of the shim's call surface and output format.
const (
	// Version is the current version of package log.
	Version = "1.0.0"

	// MinCompatibleVersion is the oldest version whose output lines are
	// byte-identical to this one.
	MinCompatibleVersion = "1.0.0"
)

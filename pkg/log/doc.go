// Package log provides a stand-in for a platform logging facility so code
// that issues leveled log calls can run in a plain Go test binary.
//
// Every call takes a tag and a message and returns a status code that is
// always [StatusOK]. The default implementation, [Shim], writes one line per
// call to standard output:
//
//	DEBUG: MainActivity: onCreate called
//
// # Usage
//
// Call the package-level entry points directly:
//
//	log.D("MainActivity", "onCreate called")
//	log.E("Net", "timeout after 30s")
//
// Or depend on the [Logger] interface and substitute a [Recorder] in tests:
//
//	rec := log.NewRecorder()
//	svc := NewService(rec)
//	svc.Run()
//	for _, e := range rec.Entries() { ... }
//
// A zerolog-backed [Logger] is available for callers that want the same
// call surface in front of a real logger:
//
//	logger := log.NewZerologAdapter()
//
// Tag and message are opaque text. Nothing is validated or escaped, so a
// message containing newlines produces multi-line output.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log

// Package pipe replays textual log records through a log.Logger.
//
// Each input line has the form
//
//	<LEVEL> <tag> <message...>
//
// where LEVEL is a label or single-letter alias accepted by log.ParseLevel
// and the message is the remainder of the line, unmodified. A tag of "-"
// is replaced by the pipe's current default tag, which a Watcher can reload
// from the config file while the pipe runs.
package pipe

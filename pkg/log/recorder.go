package log

import "sync"

// Entry is one captured call.
type Entry struct {
	Level   Level
	Tag     string
	Message string
}

// String renders the entry the way Shim prints it, without the newline.
func (e Entry) String() string {
	return Format(e.Level, e.Tag, e.Message)
}

// Recorder implements Logger by keeping every call in memory, in call order.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Debug(tag, msg string) int { return r.record(LevelDebug, tag, msg) }
func (r *Recorder) Info(tag, msg string) int  { return r.record(LevelInfo, tag, msg) }
func (r *Recorder) Warn(tag, msg string) int  { return r.record(LevelWarn, tag, msg) }
func (r *Recorder) Error(tag, msg string) int { return r.record(LevelError, tag, msg) }

func (r *Recorder) record(level Level, tag, msg string) int {
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Level: level, Tag: tag, Message: msg})
	r.mu.Unlock()
	return StatusOK
}

// Entries returns a copy of the captured calls.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lines returns the captured calls rendered with Format.
func (r *Recorder) Lines() []string {
	entries := r.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

// Len returns the number of captured calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset drops all captured calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

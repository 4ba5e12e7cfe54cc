package pipe

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bft-labs/logshim/internal/cliconfig"
)

// DefaultDebounceDelay coalesces bursts of editor writes into one reload.
const DefaultDebounceDelay = 100 * time.Millisecond

// Watcher reloads the pipe's default tag when the config file changes.
type Watcher struct {
	path          string
	pipe          *Pipe
	diag          zerolog.Logger
	debounceDelay time.Duration

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a watcher for the TOML config at path.
func NewWatcher(path string, p *Pipe, diag zerolog.Logger) *Watcher {
	return &Watcher{
		path:          path,
		pipe:          p,
		diag:          diag,
		debounceDelay: DefaultDebounceDelay,
	}
}

// Run watches the config file's directory until ctx is done. Watching the
// directory rather than the file survives editors that replace on save.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.diag.Warn().Err(err).Msg("config watcher")
		}
	}
}

// Reload reads the config file and applies its tag. On failure the current
// tag is kept.
func (w *Watcher) Reload() error {
	fc, err := cliconfig.LoadFileConfig(w.path)
	if err != nil {
		w.diag.Warn().Err(err).Str("path", w.path).Msg("config reload failed")
		return err
	}
	if fc.Tag == "" || fc.Tag == w.pipe.Tag() {
		return nil
	}
	w.diag.Info().Str("tag", fc.Tag).Msg("default tag reloaded")
	w.pipe.SetTag(fc.Tag)
	return nil
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		_ = w.Reload()
	})
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
}

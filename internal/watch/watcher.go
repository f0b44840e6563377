// Package watch reports changes to the persisted settings file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cristianoliveira/peekshell/internal/jsonstore"
	"github.com/cristianoliveira/peekshell/internal/logging"
	"github.com/cristianoliveira/peekshell/internal/settings"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses bursts of file events into one reload.
const DefaultDebounce = 500 * time.Millisecond

// LoadFunc reads the current settings.
type LoadFunc func() (*settings.Settings, error)

// ChangeFunc receives the reloaded settings, or the error reading them.
type ChangeFunc func(s *settings.Settings, err error)

// SettingsWatcher watches the directory holding settings.json. Watching the
// directory rather than the file survives the atomic rename used on write.
type SettingsWatcher struct {
	path     string
	load     LoadFunc
	onChange ChangeFunc
	debounce time.Duration
	log      logging.Logger
}

// Options configures a SettingsWatcher.
type Options struct {
	Path     string
	Load     LoadFunc
	OnChange ChangeFunc
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration
	Logger   logging.Logger
}

// New validates opts and returns a watcher.
func New(opts Options) (*SettingsWatcher, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("watch: settings path is empty")
	}
	if opts.Load == nil || opts.OnChange == nil {
		return nil, fmt.Errorf("watch: load and change callbacks are required")
	}
	abs, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", opts.Path, err)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = logging.GetGlobal()
	}
	return &SettingsWatcher{
		path:     abs,
		load:     opts.Load,
		onChange: opts.OnChange,
		debounce: opts.Debounce,
		log:      opts.Logger.With("component", "watch"),
	}, nil
}

// Run blocks until ctx is cancelled, invoking OnChange after each debounced
// burst of writes to the settings file. The directory is created if missing.
// ready, if non-nil, is closed once the watch is registered.
func (w *SettingsWatcher) Run(ctx context.Context, ready chan<- struct{}) error {
	dir := filepath.Dir(w.path)
	if err := jsonstore.EnsureDir(dir); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	w.log.Info("watching settings", "path", w.path)
	if ready != nil {
		close(ready)
	}

	name := filepath.Base(w.path)
	// Timers never deliver stale values after Stop or Reset (Go 1.23+).
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.log.Debug("settings event", "op", event.Op.String())
			timer.Reset(w.debounce)
		case <-timer.C:
			s, err := w.load()
			if err != nil {
				w.log.Warn("settings reload failed", "error", err)
			}
			w.onChange(s, err)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", "error", err)
		}
	}
}

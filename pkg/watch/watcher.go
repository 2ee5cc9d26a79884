package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents a change to the watched tape file.
type ChangeEvent struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches a single tape file and emits one debounced event per burst
// of writes. Editors often replace a file instead of writing it in place, so
// the parent directory is watched and events are filtered by name.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a Watcher for the file at path.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
	}, nil
}

// Path is the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Run is the main event loop. It reads fsnotify events for the watched file,
// debounces rapid edits, and sends the last observed change to out.
// It blocks until ctx is cancelled or the fsnotify watcher is closed.
func (w *Watcher) Run(ctx context.Context, out chan<- ChangeEvent) error {
	var pending fsnotify.Op
	timer := time.NewTimer(w.debounce)
	timer.Stop() // don't fire until we have events

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.accept(ev) {
				pending = ev.Op
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("fsnotify error", "err", err)

		case <-timer.C:
			if pending == 0 {
				continue
			}
			ev := ChangeEvent{Path: w.path, Op: pending}
			pending = 0

			select {
			case out <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Close shuts down the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// accept returns true if the event is for the watched file and carries a relevant op.
func (w *Watcher) accept(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

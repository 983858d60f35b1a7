// Package watch observes the schedule file on disk and triggers reloads, so
// changes made by another process (or another machine syncing the file) show
// up in a running session.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/dayplan-labs/dayplan-cli/internal/logger"
)

// reloadEvery caps how often file events may trigger a reload. Editors and
// the store's atomic rename emit bursts of events for one logical change.
const reloadEvery = 500 * time.Millisecond

// Watcher watches a single schedule file for changes.
type Watcher struct {
	filePath string
	limiter  *rate.Limiter
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a watcher for filePath.
// The watch is placed on the parent directory: the JSON store replaces the
// file by rename, which silently drops a watch placed on the file itself.
func NewWatcher(filePath string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	dir := filepath.Dir(filePath)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	return &Watcher{
		filePath: filepath.Clean(filePath),
		limiter:  rate.NewLimiter(rate.Every(reloadEvery), 1),
		watcher:  fsw,
	}, nil
}

// Run invokes onChange every time the schedule file is written, created or
// renamed into place, until ctx is cancelled or the watcher is closed.
// Returns nil on clean shutdown.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			w.drain()
			logger.Debug("schedule file changed (%s), reloading", event.Op)
			onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("schedule watch error: %v", err)
		}
	}
}

// Close stops the watcher. Run returns after Close.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// relevant reports whether event is a content change to the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.filePath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// drain discards events queued behind the one being handled, so a burst from
// a single save triggers a single reload. The reload reads the file's final
// state, which makes dropping the intermediate events safe.
func (w *Watcher) drain() {
	for {
		select {
		case <-w.watcher.Events:
		default:
			return
		}
	}
}

package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	m "cutgen.dev/pkg/cutgen/internal/model"
)

// DefaultWatchDebounce is how long a path must stay quiet before a change is
// reported.
const DefaultWatchDebounce = 300 * time.Millisecond

// minWatchTick bounds how often pending changes are polled.
const minWatchTick = 10 * time.Millisecond

// SourceWatcher reports changes below a set of directory trees.
type SourceWatcher interface {
	// Watch blocks until ctx is done, calling onChange with the sorted set of
	// changed paths accepted by filter after each quiet period.
	Watch(ctx context.Context, roots []m.Path, filter func(m.Path) bool, onChange func([]m.Path)) error
}

// FSNotifyWatcher implements SourceWatcher on top of fsnotify. fsnotify is
// not recursive, so every directory below a root is added and directories
// created later are added as they appear.
type FSNotifyWatcher struct {
	debounce time.Duration
}

// NewFSNotifyWatcher creates a watcher with the given debounce period; a
// non-positive value selects DefaultWatchDebounce.
func NewFSNotifyWatcher(debounce time.Duration) *FSNotifyWatcher {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	return &FSNotifyWatcher{debounce: debounce}
}

// tickInterval is a third of the debounce period, never below minWatchTick.
func (w *FSNotifyWatcher) tickInterval() time.Duration {
	return max(w.debounce/3, minWatchTick)
}

// Watch runs the event loop until ctx is cancelled.
func (w *FSNotifyWatcher) Watch(ctx context.Context, roots []m.Path, filter func(m.Path) bool, onChange func([]m.Path)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Warn("close watcher", "error", err)
		}
	}()

	for _, root := range roots {
		addTree(watcher, string(root))
	}

	pending := make(map[m.Path]time.Time)

	ticker := time.NewTicker(w.tickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&fsnotify.Create != 0 {
				addTree(watcher, event.Name)
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			path := m.Path(event.Name)
			if filter != nil && !filter(path) {
				continue
			}

			slog.Debug("source changed", "path", path, "op", event.Op.String())
			pending[path] = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("watch error", "error", err)

		case now := <-ticker.C:
			if ready := drainQuiet(pending, now, w.debounce); len(ready) > 0 {
				onChange(ready)
			}
		}
	}
}

// drainQuiet removes and returns, sorted, the pending paths that have not
// changed for at least quiet.
func drainQuiet(pending map[m.Path]time.Time, now time.Time, quiet time.Duration) []m.Path {
	var ready []m.Path

	for path, last := range pending {
		if now.Sub(last) >= quiet {
			ready = append(ready, path)
			delete(pending, path)
		}
	}

	sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })

	return ready
}

func addTree(watcher *fsnotify.Watcher, root string) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug("skip unwatchable path", "path", path, "error", err)
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if err := watcher.Add(path); err != nil {
			slog.Warn("watch directory", "path", path, "error", err)
		}

		return nil
	})
	if err != nil {
		slog.Warn("walk watch root", "root", root, "error", err)
	}
}

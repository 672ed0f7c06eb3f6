package runner

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andyballingall/curvecheck/internal/fs"
)

const debounceDuration = 100 * time.Millisecond

// WatchEvent lists the documents that changed since the previous event.
type WatchEvent struct {
	Paths []string
}

// Watcher monitors document files and directories for changes.
type Watcher struct {
	logger     *slog.Logger
	extensions []string
	Ready      chan struct{}

	files map[string]bool // explicitly watched files
	dirs  []string        // recursively watched directories

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a Watcher for documents with the given extensions.
func NewWatcher(logger *slog.Logger, extensions []string) *Watcher {
	return &Watcher{
		logger:     logger.With("component", "watcher"),
		extensions: extensions,
		Ready:      make(chan struct{}),
		files:      make(map[string]bool),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch starts monitoring roots, which may be files or directories. It calls the
// callback with the changed documents whenever a burst of changes settles. It
// blocks until the context is cancelled. The callback runs on the calling
// goroutine, so calls never overlap and none is made after Watch returns.
func (w *Watcher) Watch(ctx context.Context, roots []string, callback func(WatchEvent)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range roots {
		if err = w.addRoot(watcher, root); err != nil {
			return err
		}
	}

	w.logger.Info("Watching for changes", "roots", roots)
	if w.Ready != nil {
		close(w.Ready)
	}

	var (
		timer   *time.Timer
		settled <-chan time.Time
		pending = make(map[string]bool)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors:
			w.logger.Error("Watcher error", "error", err)
		case <-settled:
			settled = nil
			paths := slices.Sorted(maps.Keys(pending))
			clear(pending)
			if len(paths) > 0 {
				callback(WatchEvent{Paths: paths})
			}
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if path, relevant := w.handleEvent(watcher, event); relevant {
				pending[path] = true
				if timer == nil {
					timer = time.NewTimer(debounceDuration)
				} else {
					timer.Reset(debounceDuration)
				}
				settled = timer.C
			}
		}
	}
}

func (w *Watcher) addRoot(watcher *fsnotify.Watcher, root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return &fs.PathNotFoundError{Path: root}
	}
	if !info.IsDir() {
		// Editors often replace files rather than write them, so watch the parent.
		w.files[abs] = true
		return watcher.Add(filepath.Dir(abs))
	}
	w.dirs = append(w.dirs, abs)
	return w.addRecursive(watcher, abs)
}

// handleEvent processes a single fsnotify event. If it's a new directory, it adds it to the watcher.
// If it's a change to a watched document, it returns the document's path.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return "", false
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if w.inWatchedDir(event.Name) && !fs.IsHidden(event.Name) {
				if err := w.addRecursive(watcher, event.Name); err != nil {
					w.logger.Error("Failed to watch new directory", "path", event.Name, "error", err)
				}
			}
			return "", false
		}
	}

	return event.Name, w.isWatched(event.Name)
}

// addRecursive adds the given path and all its subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if fs.IsHidden(path) && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

// isWatched reports whether path is an explicitly watched file, or a document
// inside a watched directory.
func (w *Watcher) isWatched(path string) bool {
	if w.files[path] {
		return true
	}
	return fs.HasExtension(path, w.extensions) && !fs.IsHidden(path) && w.inWatchedDir(path)
}

func (w *Watcher) inWatchedDir(path string) bool {
	for _, dir := range w.dirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

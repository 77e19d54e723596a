// Package watch re-extracts documents as they change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/logger"
)

// ChangeType classifies a file change.
type ChangeType int

const (
	// ChangeCreated is a new file.
	ChangeCreated ChangeType = iota
	// ChangeUpdated is a modified file.
	ChangeUpdated
	// ChangeRemoved is a deleted or renamed file.
	ChangeRemoved
)

// String returns the change name.
func (c ChangeType) String() string {
	switch c {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change is a file change observed under the watched root.
type Change struct {
	Path string
	Type ChangeType
}

// Handler processes a change. Returning an error wrapping
// domain.ErrResourceExhausted pauses the watcher for DefaultBackoff.
type Handler func(ctx context.Context, change Change) error

// Watcher watches a directory tree and reports file changes.
type Watcher struct {
	root    string
	fsw     *fsnotify.Watcher
	limiter *RateLimiter
}

// New creates a watcher over root and its non-hidden subdirectories.
func New(root string, cfg RateLimitConfig) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat watch root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		root:    root,
		fsw:     fsw,
		limiter: NewRateLimiter(cfg),
	}
	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Root returns the watched directory.
func (w *Watcher) Root() string {
	return w.root
}

// Close stops the underlying file watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run delivers changes to handler until ctx is done or the watcher is closed.
// Handler errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, handler Handler) error {
	logger.Info("Watching %s", w.root)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			change := w.handleEvent(event)
			if change == nil {
				continue
			}
			if !w.limiter.Allow() {
				logger.Debug("Throttling %s", change.Path)
				if err := w.limiter.Wait(ctx); err != nil {
					return err
				}
			}
			logger.Debug("File %s: %s", change.Type, change.Path)
			if err := handler(ctx, *change); err != nil {
				logger.Warn("Handling %s: %v", change.Path, err)
				if errors.Is(err, domain.ErrResourceExhausted) {
					w.limiter.Backoff(DefaultBackoff)
				}
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// handleEvent converts an fsnotify event to a change, or nil when the
// event is not of interest. New directories are added to the watch.
func (w *Watcher) handleEvent(event fsnotify.Event) *Change {
	if isHidden(event.Name) {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &Change{Path: event.Name, Type: ChangeRemoved}
	case event.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				logger.Warn("Watching new directory %s: %v", event.Name, err)
			}
			return nil
		}
		return &Change{Path: event.Name, Type: ChangeCreated}
	case event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil || info.IsDir() {
			return nil
		}
		return &Change{Path: event.Name, Type: ChangeUpdated}
	default:
		// Chmod only.
		return nil
	}
}

// addTree adds dir and its non-hidden subdirectories to the watch.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && isHidden(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// Package watch re-runs the dump conversion whenever the dump tree changes
// on disk, coalescing bursts of filesystem events into single rebuilds.
package watch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher observes a dump root and every directory beneath it.
type Watcher struct {
	logger   *zap.Logger
	root     string
	debounce time.Duration
	rebuild  func() error

	watcher *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once
}

// New constructs a Watcher over the dump tree rooted at root. rebuild runs
// once per settled burst of changes; its errors are logged, not fatal, so a
// half-saved dump never kills the watch loop.
//
// Precondition: logger and rebuild must be non-nil; root must exist.
// Postcondition: every directory under root is on the watch set, or an error
// is returned and nothing is left running.
func New(logger *zap.Logger, root string, debounce time.Duration, rebuild func() error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}
	w := &Watcher{
		logger:   logger,
		root:     root,
		debounce: debounce,
		rebuild:  rebuild,
		watcher:  fsw,
		closeCh:  make(chan struct{}),
	}
	if err := w.addTree(); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Start runs the watch loop. It blocks until Stop is called, satisfying the
// server lifecycle contract.
func (w *Watcher) Start() error {
	w.run()
	return nil
}

// Stop terminates the watch loop and releases the filesystem watcher.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.closeCh)
		_ = w.watcher.Close()
	})
}

func (w *Watcher) run() {
	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.logger.Debug("dump changed",
				zap.String("path", event.Name), zap.Stringer("op", event.Op))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			if err := w.rebuild(); err != nil {
				w.logger.Error("rebuild failed, previous output left intact", zap.Error(err))
			}
			// Directories created or removed during the burst change the
			// watch set.
			w.refreshTree()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("filesystem watcher error", zap.Error(err))

		case <-w.closeCh:
			return
		}
	}
}

// addTree puts root and every directory beneath it on the watch set.
func (w *Watcher) addTree() error {
	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

// refreshTree re-walks the root after a rebuild. Adding an already-watched
// directory is a no-op; directories that vanished mid-walk only warn.
func (w *Watcher) refreshTree() {
	if err := w.addTree(); err != nil {
		w.logger.Warn("refreshing watch set", zap.Error(err))
	}
}

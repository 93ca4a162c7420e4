// Package watcher provides a debounced file watcher for the serve
// command's dev mode: editor saves often produce bursts of fsnotify
// events for the same file, and subscribers want one notification per
// burst.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kindling-dev/kindling/internal/logging"
)

// DefaultDebounce groups events arriving within this window.
const DefaultDebounce = 250 * time.Millisecond

// ChangeHandler is invoked once per debounced change of the watched
// file.
type ChangeHandler func(path string)

// ConfigWatcher watches a single file (the project descriptor) and
// notifies its handler on change.
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	handler  ChangeHandler
	logger   logging.Logger

	mu     sync.Mutex
	closed bool
}

// New creates a watcher for path. The handler runs on the watcher
// goroutine; it must not block for long.
func New(path string, handler ChangeHandler, logger logging.Logger) (*ConfigWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	// Watch the containing directory rather than the file itself:
	// editors that write via rename would otherwise drop the watch.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &ConfigWatcher{
		watcher:  fsWatcher,
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		handler:  handler,
		logger:   logger.WithComponent("watcher"),
	}, nil
}

// Start processes events until the context is cancelled or Close is
// called.
func (w *ConfigWatcher) Start(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.Close()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.logger.Debug(ctx, "watched file changed", "path", w.path)
			w.handler(w.path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, err, "watch error", "path", w.path)
		}
	}
}

// Close stops the underlying watcher. Safe to call more than once.
func (w *ConfigWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	return w.watcher.Close()
}

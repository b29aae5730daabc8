// Package watcher watches dataset directories for question JSON files and
// triggers corpus reloads with debouncing.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 400 * time.Millisecond

// DatasetWatcher watches directories of question dataset files and invokes
// onReload for each changed .json file, debounced per path.
type DatasetWatcher struct {
	roots    []string
	onReload func(path string)
	debounce time.Duration
	logger   *zap.Logger

	watcher     *fsnotify.Watcher
	mu          sync.Mutex
	debounceMap map[string]*time.Timer
	done        chan struct{}
	started     bool
	stopOnce    sync.Once
}

// Option configures a DatasetWatcher.
type Option func(*DatasetWatcher)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(w *DatasetWatcher) { w.logger = l }
}

// WithDebounce overrides the per-path debounce window.
func WithDebounce(d time.Duration) Option {
	return func(w *DatasetWatcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher over the given root directories. onReload is called
// for every changed dataset file once its debounce window elapses.
func New(roots []string, onReload func(path string), opts ...Option) *DatasetWatcher {
	w := &DatasetWatcher{
		roots:       roots,
		onReload:    onReload,
		debounce:    defaultDebounce,
		logger:      zap.NewNop(),
		debounceMap: make(map[string]*time.Timer),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. It runs until ctx is cancelled or Stop is called.
func (w *DatasetWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	w.watcher = watcher
	w.started = true
	w.mu.Unlock()

	w.logger.Debug("dataset watcher starting", zap.Strings("roots", w.roots))
	for _, root := range w.roots {
		if err := w.addRoot(root); err != nil {
			_ = watcher.Close()
			return err
		}
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *DatasetWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.watcher != nil {
			_ = w.watcher.Close()
		}
		for _, t := range w.debounceMap {
			t.Stop()
		}
		w.mu.Unlock()
	})
}

// addRoot registers root and all its subdirectories with the fsnotify watcher.
func (w *DatasetWatcher) addRoot(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *DatasetWatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.logger.Debug("dataset watcher error", zap.Error(err))
			}
		}
	}
}

func (w *DatasetWatcher) handleEvent(ev fsnotify.Event) {
	switch {
	case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			// New dataset subdirectory: watch it too.
			if err := w.watcher.Add(ev.Name); err != nil {
				w.logger.Debug("failed to watch new directory", zap.String("path", ev.Name), zap.Error(err))
			}
			return
		}
		if isDatasetFile(ev.Name) {
			w.debounceReload(ev.Name)
		}
	case ev.Op&fsnotify.Remove != 0:
		w.cancelDebounce(ev.Name)
	}
}

func isDatasetFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func (w *DatasetWatcher) debounceReload(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.debounceMap[path]; ok {
		t.Stop()
	}
	w.debounceMap[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.debounceMap, path)
		w.mu.Unlock()
		w.logger.Debug("reloading dataset (debounced)", zap.String("path", path))
		if w.onReload != nil {
			w.onReload(path)
		}
	})
}

func (w *DatasetWatcher) cancelDebounce(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.debounceMap[path]; ok {
		t.Stop()
		delete(w.debounceMap, path)
	}
}

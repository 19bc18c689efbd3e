package atomize

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// DefaultDebounce groups editor save bursts into a single conversion
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions configures a Watcher
type WatchOptions struct {
	Includes []string      // Glob patterns relative to the watched root (default DefaultIncludes)
	Debounce time.Duration // Quiet period before onChange fires (default DefaultDebounce)
}

// Watcher re-runs a callback whenever an input file under a root changes.
// Events for the same file within the debounce window collapse into one call.
type Watcher struct {
	watcher  *fsnotify.Watcher
	root     string
	gi       *ignore.GitIgnore
	options  WatchOptions
	onChange func(path string)
	logger   *zap.Logger

	timers map[string]*time.Timer
	mu     sync.Mutex
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for root. Call Run to start processing events.
func NewWatcher(root string, options WatchOptions, onChange func(path string), logger *zap.Logger) (*Watcher, error) {
	if len(options.Includes) == 0 {
		options.Includes = DefaultIncludes
	}
	if options.Debounce <= 0 {
		options.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		root:     root,
		gi:       loadGitIgnore(root),
		options:  options,
		onChange: onChange,
		logger:   logger,
		timers:   make(map[string]*time.Timer),
	}

	if err := w.addTree(); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// addTree registers root and every directory below it that is not ignored
func (w *Watcher) addTree() error {
	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && w.ignoredDir(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) ignoredDir(path string) bool {
	switch filepath.Base(path) {
	case ".git", "node_modules", "dist", "build":
		return true
	}
	return w.gi != nil && w.matchesIgnore(path)
}

func (w *Watcher) matchesIgnore(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	return w.gi.MatchesPath(filepath.ToSlash(rel))
}

// Run processes events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.close()

	w.logger.Info("watching for changes", zap.String("root", w.root))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Create):
		// New directories need their own watch
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !w.ignoredDir(event.Name) {
				if err := w.watcher.Add(event.Name); err != nil {
					w.logger.Warn("failed to watch directory", zap.String("path", event.Name), zap.Error(err))
				}
			}
			return
		}
		w.schedule(event.Name)
	case event.Has(fsnotify.Write):
		w.schedule(event.Name)
	}
}

// Matches reports whether path is an input file covered by the include patterns
func (w *Watcher) Matches(path string) bool {
	if _, err := FormatFromPath(path); err != nil {
		return false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if w.gi != nil && w.gi.MatchesPath(rel) {
		return false
	}
	for _, pattern := range w.options.Includes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// schedule debounces onChange for path
func (w *Watcher) schedule(path string) {
	if !w.Matches(path) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.timers[path]; exists {
		if timer.Stop() {
			w.wg.Done()
		}
	}

	w.wg.Add(1)
	w.timers[path] = time.AfterFunc(w.options.Debounce, func() {
		defer w.wg.Done()

		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		w.logger.Debug("input changed", zap.String("file", path))
		w.onChange(path)
	})
}

// close cancels pending timers, waits for running callbacks and closes the watcher
func (w *Watcher) close() {
	w.mu.Lock()
	for path, timer := range w.timers {
		if timer.Stop() {
			w.wg.Done()
		}
		delete(w.timers, path)
	}
	w.mu.Unlock()

	w.wg.Wait()

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("closing file watcher", zap.Error(err))
	}
}

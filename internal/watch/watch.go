// Package watch re-runs a callback when watched files change.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/logfields"
)

// DefaultDebounce is the quiet period before a change triggers a rebuild.
const DefaultDebounce = 300 * time.Millisecond

// RebuildFunc regenerates output after a change.
type RebuildFunc func(ctx context.Context) error

// Watcher watches a fixed set of files. Parent directories are watched so
// that editors replacing a file on save are still noticed.
type Watcher struct {
	files    map[string]struct{}
	dirs     []string
	debounce time.Duration
	logger   *slog.Logger
}

// New creates a Watcher for paths. A non-positive debounce uses DefaultDebounce.
func New(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.ValidationError("no files to watch").Build()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	w := &Watcher{files: make(map[string]struct{}, len(paths)), debounce: debounce, logger: logger}
	seenDirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "resolve watched path").
				WithContext("path", p).
				Build()
		}
		w.files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if !seenDirs[dir] {
			seenDirs[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	return w, nil
}

// Run blocks until ctx is canceled, calling rebuild once per burst of
// changes. Rebuilds never overlap; a change during a rebuild schedules one
// more. Rebuild errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, rebuild RebuildFunc) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "create file watcher").Build()
	}
	defer func() { _ = fw.Close() }()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "watch directory").
				WithContext("path", dir).
				Build()
		}
	}

	rebuildReq, trigger, stop := newDebouncer(w.debounce)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-rebuildReq:
				w.logger.Info("Change detected; regenerating site")
				if err := rebuild(ctx); err != nil {
					w.logger.Warn("Regeneration failed", logfields.Error(err))
				}
			}
		}
	}()
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				w.logger.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
				trigger()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

// newDebouncer returns a channel that receives once per burst of trigger
// calls separated by less than d.
func newDebouncer(d time.Duration) (<-chan struct{}, func(), func()) {
	var mu sync.Mutex
	var timer *time.Timer
	req := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, func() {
			select {
			case req <- struct{}{}:
			default:
			}
		})
	}
	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return req, trigger, stop
}

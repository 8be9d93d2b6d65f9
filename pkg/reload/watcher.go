package reload

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Watcher rebuilds the holder's matcher whenever a keyword file changes.
type Watcher struct {
	holder   *Holder
	build    Builder
	files    map[string]bool
	logger   *zap.Logger
	debounce time.Duration

	// OnReload, when set, is called after every rebuild attempt.
	OnReload func(err error)

	fw       *fsnotify.Watcher
	done     chan struct{}
	finished chan struct{}
	mu       sync.Mutex
	stopped  bool
}

// NewWatcher creates a watcher for files. Nothing is watched until Start.
func NewWatcher(holder *Holder, build Builder, files []string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	watched := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		watched[abs] = true
	}

	return &Watcher{
		holder:   holder,
		build:    build,
		files:    watched,
		logger:   logger,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}, nil
}

// SetDebounce overrides DefaultDebounce. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start begins watching. Parent directories are watched rather than the
// files themselves so that editors that replace files on save are seen.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w.mu.Lock()
	w.fw = fw
	w.mu.Unlock()

	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.finished)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			w.logger.Debug("keyword file changed",
				zap.String("file", event.Name),
				zap.String("op", event.Op.String()))

			// Restart the debounce window
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
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			return

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	err := w.holder.Rebuild(w.build)
	if err != nil {
		w.logger.Error("failed to rebuild keyword matcher, keeping previous keywords", zap.Error(err))
	} else {
		w.logger.Info("keyword matcher rebuilt", zap.Int("keywords", w.holder.Load().Len()))
	}
	if w.OnReload != nil {
		w.OnReload(err)
	}
}

// Stop ends watching and waits for the event loop to exit.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped || w.fw == nil {
		w.stopped = true
		return nil
	}
	w.stopped = true

	close(w.done)
	err := w.fw.Close()
	<-w.finished
	return err
}

package source

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/tangleview/tangle/pkg/knowledge"
)

// reloadDebounce coalesces the event bursts editors produce on save.
const reloadDebounce = 250 * time.Millisecond

// Watcher watches a snapshot file and re-loads it on change. Reloads
// are debounced and rate limited; the latest snapshot is delivered on
// the Snapshots channel, replacing any undelivered one.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	limiter *rate.Limiter

	mu       sync.Mutex
	debounce *time.Timer

	snaps    chan knowledge.Snapshot
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher for the given source file. The directory
// is watched too, since editors and sync tools replace files by rename.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		logger.Warn("watching source directory", zap.Error(err))
	}

	return &Watcher{
		path:    path,
		watcher: fw,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(2), 1),
		snaps:   make(chan knowledge.Snapshot, 1),
		stopCh:  make(chan struct{}),
	}, nil
}

// Start begins watching for source changes.
func (w *Watcher) Start() {
	go w.watchLoop()
	w.logger.Info("source watcher started", zap.String("path", w.path))
}

// Stop stops watching. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
		w.logger.Info("source watcher stopped")
	})
}

// Snapshots delivers reloaded snapshots. Only the most recent one is
// kept when the consumer falls behind.
func (w *Watcher) Snapshots() <-chan knowledge.Snapshot {
	return w.snaps
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.stopCh:
			w.mu.Lock()
			if w.debounce != nil {
				w.debounce.Stop()
			}
			w.mu.Unlock()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.scheduleReload(reloadDebounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("source watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) scheduleReload(after time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(after, w.reload)
}

func (w *Watcher) reload() {
	select {
	case <-w.stopCh:
		return
	default:
	}

	// When a rewrite storm outruns the limiter, push the reload out to
	// when a token frees up instead of dropping the final state.
	res := w.limiter.Reserve()
	if delay := res.Delay(); delay > 0 {
		res.Cancel()
		w.scheduleReload(delay)
		return
	}

	snap, err := Load(w.path)
	if err != nil {
		w.logger.Error("reloading source", zap.String("path", w.path), zap.Error(err))
		return
	}

	select {
	case <-w.snaps:
	default:
	}
	select {
	case w.snaps <- snap:
		w.logger.Info("source reloaded",
			zap.String("path", w.path),
			zap.Int("nodes", len(snap.Nodes)),
			zap.Int("edges", len(snap.Edges)))
	case <-w.stopCh:
	}
}

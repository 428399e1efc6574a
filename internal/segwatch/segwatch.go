// Package segwatch reloads a segments file whenever it changes on disk.
package segwatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cristianoliveira/segbar/internal/logging"
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is reloaded.
const DefaultDebounce = 200 * time.Millisecond

// Update is the result of one reload.
type Update struct {
	Segments []*segment.Segment
	Err      error
}

// Watcher watches one segments file.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	log      logging.Logger

	mu    sync.Mutex
	timer *time.Timer

	updates chan Update
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// New watches path. Editors often replace files, so the parent directory is watched.
func New(path string, debounce time.Duration) (*Watcher, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("segwatch: stat %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("segwatch: create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("segwatch: watch %s: %w", filepath.Dir(path), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		fsw:      fsw,
		log:      logging.With("component", "segwatch", "path", path),
		updates:  make(chan Update, 1),
		done:     make(chan struct{}),
	}, nil
}

// Updates delivers reloaded segments. It is closed by Close.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Start processes file events until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.processEvents(ctx)
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.mu.Lock()
		w.stopTimer()
		w.mu.Unlock()
		w.wg.Wait()
		close(w.updates)
	})
	return err
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

// schedule reloads the file once it has been quiet for the debounce period.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopTimer()
	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		w.reload()
	})
}

// stopTimer cancels a pending reload. Callers hold w.mu.
func (w *Watcher) stopTimer() {
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.timer = nil
}

func (w *Watcher) reload() {
	update := Update{}
	f, err := os.Open(w.path)
	if err != nil {
		update.Err = fmt.Errorf("segwatch: open %s: %w", w.path, err)
	} else {
		update.Segments, update.Err = segment.Decode(f)
		_ = f.Close()
	}
	if update.Err != nil {
		w.log.Warn("reload failed", "error", update.Err)
	} else {
		w.log.Info("segments reloaded", "count", len(update.Segments))
	}

	// Only the latest reload matters
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- update:
	case <-w.done:
	}
}

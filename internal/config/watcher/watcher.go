// Package watcher reports changes to a configuration file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a temp file and renaming it over the
// original are still seen. Bursts of events are debounced into one
// notification.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/reelkeys/internal/logging"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("watcher: closed")

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota + 1
	// OpCreate indicates the file was created.
	OpCreate
	// OpRemove indicates the file was deleted.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event represents a debounced change to the watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string
	// Op is the last operation seen in the burst.
	Op Operation
	// Time is when the burst settled.
	Time time.Time
}

// Handler is called when the watched file changes.
type Handler func(event Event)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the file must be quiet before a change is reported.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(w *Watcher) {
		w.logger = l
	}
}

// Watcher monitors one file for changes.
type Watcher struct {
	mu sync.Mutex

	path     string
	fsw      *fsnotify.Watcher
	handler  Handler
	debounce time.Duration
	logger   *logging.Logger

	timer   *time.Timer
	pending Operation

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New starts watching path and calls handler after each settled change.
// The file does not need to exist yet; its directory does.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		handler:  handler,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = logging.OrDiscard(w.logger).WithComponent("config.watcher")

	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Pending notifications are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if op := convertOp(ev.Op); op != 0 {
				w.schedule(op)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error: %v", err)
		}
	}
}

// schedule records op and restarts the debounce timer.
func (w *Watcher) schedule(op Operation) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.pending = op
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed || w.pending == 0 {
		w.mu.Unlock()
		return
	}
	ev := Event{Path: w.path, Op: w.pending, Time: time.Now()}
	w.pending = 0
	w.mu.Unlock()

	w.logger.Debug("config %s: %s", ev.Op, ev.Path)
	if w.handler != nil {
		w.handler(ev)
	}
}

// convertOp maps an fsnotify operation, preferring the most significant
// bit when several are set.
func convertOp(op fsnotify.Op) Operation {
	switch {
	case op.Has(fsnotify.Remove):
		return OpRemove
	case op.Has(fsnotify.Rename):
		return OpRename
	case op.Has(fsnotify.Create):
		return OpCreate
	case op.Has(fsnotify.Write):
		return OpWrite
	default:
		return 0
	}
}

package hotkey

import (
	"sync"

	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/input/listener"
	"github.com/dshills/reelkeys/internal/logging"
	"github.com/dshills/reelkeys/internal/player"
)

// Listener names used when registering with the input source.
const (
	EscapeListenerName = "hotkey.escape"
	HotkeyListenerName = "hotkey.keys"
)

// Source is the host keyboard input stream.
type Source interface {
	AddListener(name string, fn listener.Func) string
	RemoveListener(id string) bool
}

// Option configures Hotkeys.
type Option func(*Hotkeys)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(h *Hotkeys) {
		h.logger = l
	}
}

// WithActiveElement sets the provider consulted by the focus filter.
func WithActiveElement(p ActiveElementProvider) Option {
	return func(h *Hotkeys) {
		h.elements = p
	}
}

// WithCapturer sets the screenshot service.
func WithCapturer(c Capturer) Option {
	return func(h *Hotkeys) {
		h.capturer = c
	}
}

// WithObserver registers an observer on the dispatcher.
func WithObserver(fn Observer) Option {
	return func(h *Hotkeys) {
		h.observers = append(h.observers, fn)
	}
}

// registration tracks one listener registered with the source.
type registration struct {
	id     string
	active bool
}

// Hotkeys binds the hotkey engine to a player and an input source.
//
// It owns two registrations: the escape watcher, always present while the
// engine is alive, and the focus-gated hotkey listener, present only while
// hotkeys are enabled.
type Hotkeys struct {
	mu sync.Mutex

	player player.Player
	source Source

	logger    *logging.Logger
	elements  ActiveElementProvider
	capturer  Capturer
	observers []Observer

	filter     *Filter
	dispatcher *Dispatcher
	escape     *EscapeWatcher

	escapeReg registration
	hotkeyReg registration
	destroyed bool
}

// New builds the engine for p and registers its listeners with src.
// The escape watcher is always registered; the hotkey listener only when
// p.Options().Hotkey is set.
func New(p player.Player, src Source, opts ...Option) *Hotkeys {
	h := &Hotkeys{
		player: p,
		source: src,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = logging.OrDiscard(h.logger).WithComponent("hotkey")

	h.filter = NewFilter(p, h.elements)
	h.dispatcher = NewDispatcher(p, h.capturer, h.logger)
	for _, fn := range h.observers {
		h.dispatcher.AddObserver(fn)
	}
	h.escape = NewEscapeWatcher(p, h.dispatcher.Metrics())

	h.mu.Lock()
	defer h.mu.Unlock()

	h.escapeReg = registration{
		id:     src.AddListener(EscapeListenerName, h.escape.Handle),
		active: true,
	}
	if p.Options().Hotkey {
		h.registerHotkeysLocked()
	}
	return h
}

// handleKey is the focus-gated listener.
func (h *Hotkeys) handleKey(ev key.Event) bool {
	if !h.filter.Eligible() {
		h.dispatcher.Metrics().RecordIgnored()
		return false
	}
	return h.dispatcher.Dispatch(ev)
}

func (h *Hotkeys) registerHotkeysLocked() {
	if h.hotkeyReg.active {
		return
	}
	h.hotkeyReg = registration{
		id:     h.source.AddListener(HotkeyListenerName, h.handleKey),
		active: true,
	}
	h.logger.Debug("hotkey listener registered")
}

func (h *Hotkeys) unregisterHotkeysLocked() {
	if !h.hotkeyReg.active {
		return
	}
	h.source.RemoveListener(h.hotkeyReg.id)
	h.hotkeyReg = registration{}
	h.logger.Debug("hotkey listener unregistered")
}

// SetEnabled registers or unregisters the hotkey listener at runtime, e.g.
// after a configuration reload. The escape watcher is unaffected.
func (h *Hotkeys) SetEnabled(enabled bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.destroyed {
		return ErrDestroyed
	}
	if enabled {
		h.registerHotkeysLocked()
	} else {
		h.unregisterHotkeysLocked()
	}
	return nil
}

// Enabled reports whether the hotkey listener is registered.
func (h *Hotkeys) Enabled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hotkeyReg.active
}

// Destroy unregisters every listener. Calling it again does nothing.
func (h *Hotkeys) Destroy() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.destroyed {
		return
	}
	h.unregisterHotkeysLocked()
	if h.escapeReg.active {
		h.source.RemoveListener(h.escapeReg.id)
		h.escapeReg = registration{}
	}
	h.destroyed = true
}

// Dispatcher returns the rule dispatcher.
func (h *Hotkeys) Dispatcher() *Dispatcher {
	return h.dispatcher
}

// Metrics returns a snapshot of the engine statistics.
func (h *Hotkeys) Metrics() MetricsSnapshot {
	return h.dispatcher.Metrics().Snapshot()
}

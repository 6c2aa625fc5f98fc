package hotkey

import (
	"errors"
	"testing"

	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/input/listener"
	"github.com/dshills/reelkeys/internal/player"
)

func TestNewRegistersListeners(t *testing.T) {
	fp := newFakePlayer()
	src := newFakeSource()
	h := New(fp, src)

	if !src.has(EscapeListenerName) {
		t.Error("escape listener not registered")
	}
	if !src.has(HotkeyListenerName) {
		t.Error("hotkey listener not registered")
	}
	if !h.Enabled() {
		t.Error("Enabled() = false, want true")
	}
}

func TestNewHotkeyDisabled(t *testing.T) {
	fp := newFakePlayer()
	fp.opts.Hotkey = false
	src := newFakeSource()
	h := New(fp, src)

	if !src.has(EscapeListenerName) {
		t.Error("escape listener must be registered even with hotkeys off")
	}
	if src.has(HotkeyListenerName) {
		t.Error("hotkey listener registered with hotkeys off")
	}
	if h.Enabled() {
		t.Error("Enabled() = true, want false")
	}

	if src.emit(press("<Space>")) {
		t.Error("space suppressed with hotkeys off")
	}
	if fp.toggles != 0 {
		t.Error("space toggled playback with hotkeys off")
	}

	fp.fullscreen[player.ScopeWeb] = true
	src.emit(press("<Esc>"))
	if fp.fullscreen[player.ScopeWeb] {
		t.Error("escape should still leave web fullscreen with hotkeys off")
	}
}

func TestHotkeysDispatchThroughSource(t *testing.T) {
	fp := newFakePlayer()
	src := newFakeSource()
	New(fp, src)

	if !src.emit(press("<Space>")) {
		t.Error("space not suppressed")
	}
	if fp.toggles != 1 {
		t.Errorf("toggles = %d, want 1", fp.toggles)
	}
	if src.emit(press("q")) {
		t.Error("unbound key suppressed")
	}
}

func TestHotkeysFocusGate(t *testing.T) {
	fp := newFakePlayer()
	fp.focused = false
	src := newFakeSource()
	h := New(fp, src)

	for _, spec := range []string{"<Space>", "a", "d", "<C-x>", "7", "m"} {
		if src.emit(press(spec)) {
			t.Errorf("%q suppressed while unfocused", spec)
		}
	}
	if fp.mutations() != 0 || fp.muted {
		t.Error("player changed while unfocused")
	}
	if s := h.Metrics(); s.Ignored != 6 {
		t.Errorf("Ignored = %d, want 6", s.Ignored)
	}
}

func TestHotkeysTextFieldGate(t *testing.T) {
	fp := newFakePlayer()
	src := newFakeSource()
	typing := true
	New(fp, src, WithActiveElement(ActiveElementFunc(func() (Element, bool) {
		return Element{Tag: "input"}, typing
	})))

	if src.emit(press("<Space>")) {
		t.Error("space suppressed while typing")
	}
	if fp.toggles != 0 {
		t.Error("space toggled playback while typing")
	}

	typing = false
	if !src.emit(press("<Space>")) {
		t.Error("space not suppressed after leaving the text field")
	}
}

func TestHotkeysSetEnabled(t *testing.T) {
	fp := newFakePlayer()
	src := newFakeSource()
	h := New(fp, src)

	if err := h.SetEnabled(false); err != nil {
		t.Fatalf("SetEnabled(false) error = %v", err)
	}
	if src.has(HotkeyListenerName) {
		t.Error("hotkey listener still registered")
	}
	if !src.has(EscapeListenerName) {
		t.Error("escape listener removed by SetEnabled")
	}
	if h.Enabled() {
		t.Error("Enabled() = true after disable")
	}

	// Repeated calls are no-ops.
	if err := h.SetEnabled(false); err != nil {
		t.Fatalf("second SetEnabled(false) error = %v", err)
	}
	if err := h.SetEnabled(true); err != nil {
		t.Fatalf("SetEnabled(true) error = %v", err)
	}
	if err := h.SetEnabled(true); err != nil {
		t.Fatalf("second SetEnabled(true) error = %v", err)
	}

	count := 0
	for _, name := range src.names {
		if name == HotkeyListenerName {
			count++
		}
	}
	if count != 2 {
		t.Errorf("hotkey registrations = %d, want 2", count)
	}
	if len(src.listeners) != 2 {
		t.Errorf("live listeners = %d, want 2", len(src.listeners))
	}
}

func TestHotkeysDestroy(t *testing.T) {
	fp := newFakePlayer()
	src := newFakeSource()
	h := New(fp, src)

	h.Destroy()
	if len(src.listeners) != 0 {
		t.Errorf("listeners after Destroy = %d, want 0", len(src.listeners))
	}
	if len(src.removed) != 2 {
		t.Errorf("removed = %v, want both listeners", src.removed)
	}

	h.Destroy()
	if len(src.removed) != 2 {
		t.Errorf("second Destroy removed more listeners: %v", src.removed)
	}

	if err := h.SetEnabled(true); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetEnabled after Destroy error = %v, want ErrDestroyed", err)
	}
	if src.has(HotkeyListenerName) {
		t.Error("SetEnabled after Destroy registered a listener")
	}
}

func TestHotkeysDestroyWithHotkeysOff(t *testing.T) {
	fp := newFakePlayer()
	fp.opts.Hotkey = false
	src := newFakeSource()
	h := New(fp, src)

	h.Destroy()
	if len(src.listeners) != 0 {
		t.Errorf("listeners after Destroy = %d, want 0", len(src.listeners))
	}
	if len(src.removed) != 1 || src.removed[0] != EscapeListenerName {
		t.Errorf("removed = %v, want [%s]", src.removed, EscapeListenerName)
	}
}

func TestHotkeysWithObserverAndCapturer(t *testing.T) {
	fp := newFakePlayer()
	src := newFakeSource()
	c := &fakeCapturer{}
	var rules []string
	New(fp, src,
		WithCapturer(c),
		WithObserver(func(_ key.Event, rule string, _ Action) {
			rules = append(rules, rule)
		}),
	)

	src.emit(press("S"))
	src.emit(press("m"))

	if c.calls != 1 {
		t.Errorf("captures = %d, want 1", c.calls)
	}
	if len(rules) != 2 || rules[0] != "shift-s" || rules[1] != "m" {
		t.Errorf("observed rules = %v, want [shift-s m]", rules)
	}
}

func TestHotkeysWithStream(t *testing.T) {
	fp := newFakePlayer()
	fp.fullscreen[player.ScopeWeb] = true
	stream := listener.NewStream()
	h := New(fp, stream)

	if stream.Len() != 2 {
		t.Fatalf("stream listeners = %d, want 2", stream.Len())
	}

	// Escape is seen by the watcher but no hotkey rule claims it.
	if stream.Emit(press("<Esc>")) {
		t.Error("escape prevented")
	}
	if fp.fullscreen[player.ScopeWeb] {
		t.Error("web fullscreen not cancelled")
	}

	if !stream.Emit(press("<Right>")) {
		t.Error("right arrow not prevented")
	}

	h.Destroy()
	if stream.Len() != 0 {
		t.Errorf("stream listeners after Destroy = %d, want 0", stream.Len())
	}
}

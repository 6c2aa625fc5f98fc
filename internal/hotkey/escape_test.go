package hotkey

import (
	"testing"

	"github.com/dshills/reelkeys/internal/player"
)

func TestEscapeLeavesWebFullscreen(t *testing.T) {
	fp := newFakePlayer()
	fp.fullscreen[player.ScopeWeb] = true
	m := NewMetrics()
	w := NewEscapeWatcher(fp, m)

	if w.Handle(press("<Esc>")) {
		t.Error("escape watcher must not prevent default")
	}
	if fp.fullscreen[player.ScopeWeb] {
		t.Error("web fullscreen still active")
	}
	if len(fp.cancels) != 1 || fp.cancels[0] != player.ScopeWeb {
		t.Errorf("cancels = %v, want [web]", fp.cancels)
	}
	if s := m.Snapshot(); s.Escapes != 1 {
		t.Errorf("Escapes = %d, want 1", s.Escapes)
	}
}

func TestEscapeIgnoresBrowserFullscreen(t *testing.T) {
	fp := newFakePlayer()
	fp.fullscreen[player.ScopeBrowser] = true
	w := NewEscapeWatcher(fp, nil)

	if w.Handle(press("<Esc>")) {
		t.Error("escape watcher must not prevent default")
	}
	if !fp.fullscreen[player.ScopeBrowser] {
		t.Error("browser fullscreen should be left to the host")
	}
	if len(fp.cancels) != 0 {
		t.Errorf("cancels = %v, want none", fp.cancels)
	}
}

func TestEscapeIgnoresFocusAndModifiers(t *testing.T) {
	fp := newFakePlayer()
	fp.focused = false
	fp.opts.Hotkey = false
	fp.fullscreen[player.ScopeWeb] = true
	w := NewEscapeWatcher(fp, nil)

	w.Handle(press("<S-Esc>"))
	if fp.fullscreen[player.ScopeWeb] {
		t.Error("Shift+Escape should still leave web fullscreen")
	}
}

func TestEscapeOtherKeys(t *testing.T) {
	fp := newFakePlayer()
	fp.fullscreen[player.ScopeWeb] = true
	w := NewEscapeWatcher(fp, nil)

	for _, spec := range []string{"w", "<CR>", "q", "<Space>"} {
		if w.Handle(press(spec)) {
			t.Errorf("Handle(%q) = true", spec)
		}
	}
	if !fp.fullscreen[player.ScopeWeb] {
		t.Error("non-escape key left web fullscreen")
	}
}

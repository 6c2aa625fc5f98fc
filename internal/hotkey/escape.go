package hotkey

import (
	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/player"
)

// EscapeWatcher leaves in-page fullscreen when Escape is pressed.
// It ignores focus and the hotkey switch, and never touches native
// fullscreen, which the host environment exits on its own.
type EscapeWatcher struct {
	player  player.Player
	metrics *Metrics
}

// NewEscapeWatcher creates a watcher for p. metrics may be nil.
func NewEscapeWatcher(p player.Player, metrics *Metrics) *EscapeWatcher {
	return &EscapeWatcher{player: p, metrics: metrics}
}

// Handle processes one keydown. It never prevents the host's default
// handling, so Escape still reaches the host (e.g. to close a prompt).
func (w *EscapeWatcher) Handle(ev key.Event) bool {
	if !ev.IsEscape() {
		return false
	}
	fs := w.player.FullScreen()
	if fs.IsFullScreen(player.ScopeWeb) {
		fs.Cancel(player.ScopeWeb)
		if w.metrics != nil {
			w.metrics.RecordEscape()
		}
	}
	return false
}

package app

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/dshills/reelkeys/internal/backend"
	"github.com/dshills/reelkeys/internal/hotkey"
	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/player"
)

// noticeTTL is how long a notice stays on the status line.
const noticeTTL = 2 * time.Second

const helpText = "space play  ←/→ 5s  a/d 5s  ↑/↓ vol  m mute  +/- speed  0-9 %  f/w full  S shot  : goto  q quit"

// statusLine tracks what the bottom lines of the screen show.
type statusLine struct {
	mu       sync.Mutex
	now      func() time.Time
	msg      string
	msgAt    time.Time
	lastRule string
	lastAct  hotkey.Action
}

func newStatusLine() *statusLine {
	return &statusLine{now: time.Now}
}

// notice is the player's notice callback.
func (s *statusLine) notice(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msg = msg
	s.msgAt = s.now()
}

// action is a hotkey.Observer.
func (s *statusLine) action(_ key.Event, rule string, a hotkey.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRule = rule
	s.lastAct = a
}

// current returns the visible notice and the last dispatched action.
func (s *statusLine) current() (msg, last string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.msg != "" && s.now().Sub(s.msgAt) < noticeTTL {
		msg = s.msg
	}
	if s.lastRule != "" {
		last = s.lastRule + " → " + s.lastAct.String()
	}
	return msg, last
}

// formatClock formats seconds as H:MM:SS or M:SS.
func formatClock(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "--:--"
	}
	total := int(seconds)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// formatState renders the player line.
func formatState(st player.State) string {
	var b strings.Builder
	if st.Playing {
		b.WriteString("▶ ")
	} else {
		b.WriteString("‖ ")
	}
	b.WriteString(formatClock(st.CurrentTime))
	b.WriteString(" / ")
	if st.Live {
		b.WriteString("LIVE")
	} else if player.KnownDuration(st.Duration) {
		b.WriteString(formatClock(st.Duration))
	} else {
		b.WriteString("--:--")
	}
	fmt.Fprintf(&b, "  %gx  vol %d%%", st.PlaybackRate, int(math.Round(st.Volume*100)))
	if st.Muted {
		b.WriteString(" [muted]")
	}
	if st.Browser {
		b.WriteString(" [fullscreen]")
	}
	if st.Web {
		b.WriteString(" [web]")
	}
	if !st.Focused {
		b.WriteString(" [unfocused]")
	}
	return b.String()
}

// progressBar renders a bar of the given width for the playback position.
func progressBar(st player.State, width int) string {
	if width <= 2 {
		return ""
	}
	inner := width - 2
	filled := 0
	if player.KnownDuration(st.Duration) {
		filled = int(math.Round(float64(inner) * math.Min(1, st.CurrentTime/st.Duration)))
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", inner-filled) + "]"
}

// render draws the whole screen.
func (app *Application) render(b backend.Backend) {
	st := app.sim.State()
	msg, last := app.status.current()
	w, h := b.Size()

	b.Clear()
	b.DrawText(0, 0, "reelkeys", backend.StyleStatus)
	b.DrawText(10, 0, formatState(st), backend.StyleNormal)
	if h > 1 {
		b.DrawText(0, 1, progressBar(st, w), backend.StyleDim)
	}
	if h > 3 && last != "" {
		b.DrawText(0, h-3, last, backend.StyleDim)
	}
	if h > 2 && msg != "" {
		b.DrawText(0, h-2, msg, backend.StyleNotice)
	}

	if app.prompt.IsOpen() {
		text := ":" + app.prompt.Text()
		b.DrawText(0, h-1, text, backend.StylePrompt)
		b.ShowCursor(len([]rune(text)), h-1)
	} else {
		b.DrawText(0, h-1, helpText, backend.StyleDim)
		b.HideCursor()
	}
	b.Show()
}

package backend

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ErrQueueFull is returned when an interrupt cannot be queued.
var ErrQueueFull = errors.New("backend: event queue full")

// Terminal implements Backend using tcell.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	styles map[Style]tcell.Style
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a simulation
// screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	base := tcell.StyleDefault
	return &Terminal{
		screen: screen,
		styles: map[Style]tcell.Style{
			StyleNormal: base,
			StyleDim:    base.Dim(true),
			StyleStatus: base.Reverse(true),
			StyleNotice: base.Bold(true).Foreground(tcell.ColorYellow),
			StylePrompt: base.Foreground(tcell.ColorAqua),
		},
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableFocus()
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) DrawText(x, y int, text string, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	if y < 0 || y >= height {
		return
	}
	st := t.styles[style]
	for _, r := range text {
		if x >= width {
			break
		}
		if x >= 0 {
			t.screen.SetContent(x, y, r, nil, st)
		}
		x++
	}
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent blocks without holding the lock so drawing can continue from
// other goroutines.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out := convertEvent(ev); out.Type != EventNone {
			return out
		}
	}
}

func (t *Terminal) Interrupt(data any) error {
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(data)); err != nil {
		return ErrQueueFull
	}
	return nil
}

// convertEvent converts a tcell event. Unhandled events map to EventNone.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Key: k}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: e.Focused}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}

	default:
		return Event{Type: EventNone}
	}
}

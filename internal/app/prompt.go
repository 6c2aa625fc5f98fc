package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/dshills/reelkeys/internal/hotkey"
	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/player"
)

// Prompt is the ":" goto line. While open it is the active text element,
// so the hotkey filter lets every key through to it.
type Prompt struct {
	mu   sync.Mutex
	open bool
	text []rune
}

// NewPrompt creates a closed prompt.
func NewPrompt() *Prompt {
	return &Prompt{}
}

// Open shows the prompt with empty text.
func (p *Prompt) Open() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = true
	p.text = p.text[:0]
}

// Close hides the prompt.
func (p *Prompt) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
}

// IsOpen reports whether the prompt is shown.
func (p *Prompt) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// Text returns the typed text.
func (p *Prompt) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return string(p.text)
}

// ActiveElement implements hotkey.ActiveElementProvider.
func (p *Prompt) ActiveElement() (hotkey.Element, bool) {
	if !p.IsOpen() {
		return hotkey.Element{}, false
	}
	return hotkey.Element{Tag: "input"}, true
}

// Handle edits the prompt with ev. Enter closes the prompt and returns the
// text with submitted set; Escape closes it without submitting.
func (p *Prompt) Handle(ev key.Event) (text string, submitted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return "", false
	}
	switch ev.Key {
	case key.KeyEscape:
		p.open = false
	case key.KeyEnter:
		p.open = false
		return string(p.text), true
	case key.KeyBackspace:
		if n := len(p.text); n > 0 {
			p.text = p.text[:n-1]
		}
	case key.KeyRune:
		m := ev.Modifiers
		if ev.Rune != 0 && !m.HasCtrl() && !m.HasAlt() && !m.HasMeta() {
			p.text = append(p.text, ev.Rune)
		}
	}
	return "", false
}

// ParseTarget converts goto text into a media time in seconds. It accepts
// plain seconds ("95", "12.5"), clock times ("1:35", "1:02:03") and
// percentages of the duration ("40%").
func ParseTarget(text string, duration float64) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrBadTarget
	}

	if pct, ok := strings.CutSuffix(text, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil || math.IsNaN(v) || v < 0 || v > 100 {
			return 0, fmt.Errorf("%w: %q", ErrBadTarget, text)
		}
		if !player.KnownDuration(duration) {
			return 0, fmt.Errorf("%w: duration unknown", ErrBadTarget)
		}
		return duration * v / 100, nil
	}

	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrBadTarget, text)
	}
	var total float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, fmt.Errorf("%w: %q", ErrBadTarget, text)
		}
		// Leading fields are whole; minutes and seconds stay under 60.
		if i < len(parts)-1 && v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %q", ErrBadTarget, text)
		}
		if i > 0 && v >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrBadTarget, text)
		}
		total = total*60 + v
	}
	return total, nil
}

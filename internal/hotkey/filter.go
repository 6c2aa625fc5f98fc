package hotkey

import (
	"strings"

	"github.com/dshills/reelkeys/internal/player"
)

// Element describes the element that currently owns text input in the host.
type Element struct {
	// Tag is the element kind, e.g. "input", "textarea", "div".
	Tag string
	// ContentEditable is the editable attribute value. It only counts when
	// HasContentEditable is set.
	ContentEditable    string
	HasContentEditable bool
}

// IsTextEditable reports whether typing into the element edits text.
func (e Element) IsTextEditable() bool {
	switch strings.ToLower(e.Tag) {
	case "input", "textarea":
		return true
	}
	if !e.HasContentEditable {
		return false
	}
	return e.ContentEditable == "" || strings.EqualFold(e.ContentEditable, "true")
}

// ActiveElementProvider reports the host's active element.
type ActiveElementProvider interface {
	// ActiveElement returns the focused element; ok is false when no element
	// has focus.
	ActiveElement() (el Element, ok bool)
}

// ActiveElementFunc adapts a function to ActiveElementProvider.
type ActiveElementFunc func() (Element, bool)

// ActiveElement implements ActiveElementProvider.
func (f ActiveElementFunc) ActiveElement() (Element, bool) {
	return f()
}

// noActiveElement is used when the host has no notion of an active element.
var noActiveElement = ActiveElementFunc(func() (Element, bool) { return Element{}, false })

// Filter decides whether key events may be interpreted as hotkeys.
type Filter struct {
	player   player.Player
	elements ActiveElementProvider
}

// NewFilter creates a filter for p. A nil provider means no element ever
// holds text focus.
func NewFilter(p player.Player, elements ActiveElementProvider) *Filter {
	if elements == nil {
		elements = noActiveElement
	}
	return &Filter{player: p, elements: elements}
}

// Eligible reports whether the player owns keyboard focus and no text
// field is taking the keystrokes.
func (f *Filter) Eligible() bool {
	if !f.player.Focused() {
		return false
	}
	if el, ok := f.elements.ActiveElement(); ok && el.IsTextEditable() {
		return false
	}
	return true
}

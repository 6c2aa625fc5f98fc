package key

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Location identifies which physical area of the keyboard produced a key.
// Values follow the DOM KeyboardEvent.location numbering.
type Location uint8

const (
	// LocationStandard is the main keyboard area.
	LocationStandard Location = 0
	// LocationLeft is the left-hand copy of a duplicated key (e.g. left Shift).
	LocationLeft Location = 1
	// LocationRight is the right-hand copy of a duplicated key.
	LocationRight Location = 2
	// LocationNumpad is the numeric keypad.
	LocationNumpad Location = 3
)

// String returns the location name.
func (l Location) String() string {
	switch l {
	case LocationStandard:
		return "standard"
	case LocationLeft:
		return "left"
	case LocationRight:
		return "right"
	case LocationNumpad:
		return "numpad"
	default:
		return fmt.Sprintf("Location(%d)", uint8(l))
	}
}

// Event represents a single keydown.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Location distinguishes keypad keys from their main-keyboard twins.
	Location Location

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Code returns the numeric key code of the event, or 0 when the key has no
// code on a US layout.
func (e Event) Code() int {
	if e.Key == KeyRune {
		return runeCode(e.Rune)
	}
	return e.Key.Code()
}

// Label returns the key label the way a browser reports KeyboardEvent.key:
// the character itself for character keys, a name such as "ArrowLeft" or
// "Escape" otherwise.
func (e Event) Label() string {
	if e.Key == KeyRune {
		if e.Rune == 0 {
			return "Unidentified"
		}
		return string(e.Rune)
	}
	return e.Key.label()
}

// IsEscape returns true if this is the Escape key, regardless of modifiers.
func (e Event) IsEscape() bool {
	return e.Code() == CodeEscape
}

// IsNumpad returns true if the key was pressed on the numeric keypad.
func (e Event) IsNumpad() bool {
	return e.Location == LocationNumpad
}

// WithLocation returns a copy of the event with the given location.
func (e Event) WithLocation(loc Location) Event {
	e.Location = loc
	return e
}

// WithModifier returns a copy with the specified modifier added.
func (e Event) WithModifier(mod Modifier) Event {
	e.Modifiers = e.Modifiers.With(mod)
	return e
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers &&
		e.Location == other.Location
}

// String returns a canonical Vim-style representation that Parse accepts.
// Examples: "a", "<C-x>", "<C-S-x>", "<CR>", "<KPEnter>", "<Space>"
func (e Event) String() string {
	var keyName string
	switch {
	case e.Key == KeyRune && e.Rune == ' ', e.Key == KeySpace:
		keyName = "Space"
	case e.Key == KeyRune:
		keyName = string(e.Rune)
	case e.Key == KeyEnter:
		keyName = "CR"
	case e.Key == KeyEscape:
		keyName = "Esc"
	case e.Key == KeyBackspace:
		keyName = "BS"
	case e.Key == KeyDelete:
		keyName = "Del"
	default:
		keyName = e.Key.String()
	}
	if e.IsNumpad() {
		switch {
		case e.Key == KeyEnter:
			keyName = "KPEnter"
		case e.IsRune():
			keyName = "KP" + keyName
		}
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "D")
	}
	if e.Modifiers.HasShift() {
		parts = append(parts, "S")
	}

	bare := len(parts) == 0 || (e.Modifiers == ModShift && unicode.IsUpper(e.Rune))
	if bare && e.IsRune() && e.Rune != ' ' && !e.IsNumpad() {
		return keyName
	}
	parts = append(parts, keyName)
	return "<" + strings.Join(parts, "-") + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s, Location: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String(), e.Location.String())
}

package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// Numeric key codes as reported by browser keydown events.
const (
	CodeBackspace = 8
	CodeTab       = 9
	CodeEnter     = 13
	CodeEscape    = 27
	CodeSpace     = 32
	CodePageUp    = 33
	CodePageDown  = 34
	CodeEnd       = 35
	CodeHome      = 36
	CodeLeft      = 37
	CodeUp        = 38
	CodeRight     = 39
	CodeDown      = 40
	CodeDelete    = 46
	CodeF1        = 112
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeySpace:     "Space",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyRune:      "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k.IsFunctionKey() {
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// Code returns the numeric key code for a special key, or 0 for KeyRune
// and KeyNone. Use Event.Code for character keys.
func (k Key) Code() int {
	switch k {
	case KeyBackspace:
		return CodeBackspace
	case KeyTab:
		return CodeTab
	case KeyEnter:
		return CodeEnter
	case KeyEscape:
		return CodeEscape
	case KeySpace:
		return CodeSpace
	case KeyPageUp:
		return CodePageUp
	case KeyPageDown:
		return CodePageDown
	case KeyEnd:
		return CodeEnd
	case KeyHome:
		return CodeHome
	case KeyLeft:
		return CodeLeft
	case KeyUp:
		return CodeUp
	case KeyRight:
		return CodeRight
	case KeyDown:
		return CodeDown
	case KeyDelete:
		return CodeDelete
	}
	if k.IsFunctionKey() {
		return CodeF1 + int(k-KeyF1)
	}
	return 0
}

// punctCodes maps punctuation runes to the code of the physical key that
// produces them on a US layout.
var punctCodes = map[rune]int{
	';': 186, ':': 186,
	'=': 187, '+': 187,
	',': 188, '<': 188,
	'-': 189, '_': 189,
	'.': 190, '>': 190,
	'/': 191, '?': 191,
	'`': 192, '~': 192,
	'[': 219, '{': 219,
	'\\': 220, '|': 220,
	']': 221, '}': 221,
	'\'': 222, '"': 222,
}

// runeCode returns the key code for a character.
func runeCode(r rune) int {
	switch {
	case r == ' ':
		return CodeSpace
	case r >= '0' && r <= '9':
		return int(r)
	case r < unicode.MaxASCII && unicode.IsLetter(r):
		return int(unicode.ToUpper(r))
	}
	return punctCodes[r]
}

// label returns the key label browsers report for a special key.
func (k Key) label() string {
	switch k {
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeySpace:
		return " "
	case KeyNone:
		return "Unidentified"
	}
	return k.String()
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"none":       KeyNone,
	"escape":     KeyEscape,
	"esc":        KeyEscape,
	"enter":      KeyEnter,
	"return":     KeyEnter,
	"cr":         KeyEnter,
	"tab":        KeyTab,
	"backspace":  KeyBackspace,
	"bs":         KeyBackspace,
	"delete":     KeyDelete,
	"del":        KeyDelete,
	"home":       KeyHome,
	"end":        KeyEnd,
	"pageup":     KeyPageUp,
	"pgup":       KeyPageUp,
	"pagedown":   KeyPageDown,
	"pgdn":       KeyPageDown,
	"space":      KeySpace,
	"up":         KeyUp,
	"arrowup":    KeyUp,
	"down":       KeyDown,
	"arrowdown":  KeyDown,
	"left":       KeyLeft,
	"arrowleft":  KeyLeft,
	"right":      KeyRight,
	"arrowright": KeyRight,
	"f1":         KeyF1,
	"f2":         KeyF2,
	"f3":         KeyF3,
	"f4":         KeyF4,
	"f5":         KeyF5,
	"f6":         KeyF6,
	"f7":         KeyF7,
	"f8":         KeyF8,
	"f9":         KeyF9,
	"f10":        KeyF10,
	"f11":        KeyF11,
	"f12":        KeyF12,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}

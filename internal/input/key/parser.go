package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "7", "+"
//   - Special keys: "Enter", "Escape", "Space", "Left", "ArrowLeft"
//   - Keypad keys: "KPEnter", "KP7"
//   - With modifiers: "Ctrl+X", "Ctrl+Shift+X", "Shift+S"
//   - Vim-style: "<C-x>", "<C-S-x>", "<CR>", "<Esc>", "<KPEnter>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// A lone "+" is the plus key, not a separator.
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// parseVimStyle parses Vim-style notation like "C-x", "C-S-x", "CR", "Esc".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	// "<C-->" names the minus key with Ctrl held.
	var keyPart string
	var modPart string
	if strings.HasSuffix(inner, "--") {
		keyPart = "-"
		modPart = strings.TrimSuffix(inner, "--")
	} else if i := strings.LastIndex(inner, "-"); i > 0 && i < len(inner)-1 {
		keyPart = inner[i+1:]
		modPart = inner[:i]
	} else {
		keyPart = inner
	}

	var mods Modifier
	if modPart != "" {
		for _, p := range strings.Split(modPart, "-") {
			switch strings.ToLower(strings.TrimSpace(p)) {
			case "c":
				mods = mods.With(ModCtrl)
			case "a":
				mods = mods.With(ModAlt)
			case "s":
				mods = mods.With(ModShift)
			case "m", "d":
				mods = mods.With(ModMeta)
			default:
				return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
			}
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+X" style notation.
func parseModifierStyle(spec string) (Event, error) {
	keyPart := ""
	modPart := spec
	// "Ctrl++" names the plus key with Ctrl held.
	if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		modPart = strings.TrimSuffix(spec, "++")
	} else {
		i := strings.LastIndex(spec, "+")
		keyPart = spec[i+1:]
		modPart = spec[:i]
	}

	var mods Modifier
	for _, p := range strings.Split(modPart, "+") {
		mod, ok := ParseModifier(p)
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	lowerKey := strings.ToLower(keyPart)
	switch lowerKey {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "kpenter":
		return NewSpecialEvent(KeyEnter, mods).WithLocation(LocationNumpad), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	}

	if key := KeyFromName(lowerKey); key != KeyNone {
		return NewSpecialEvent(key, mods), nil
	}

	loc := LocationStandard
	if len(keyPart) == 3 && strings.HasPrefix(lowerKey, "kp") {
		keyPart = keyPart[2:]
		loc = LocationNumpad
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	// A bare uppercase letter implies Shift; with explicit modifiers the
	// letter case follows Shift. Shift on a digit row key yields a symbol,
	// so a shifted digit names no key a browser can report.
	r := runes[0]
	if mods.HasShift() && r >= '0' && r <= '9' {
		return Event{}, fmt.Errorf("%w: shifted digit %q", ErrInvalidSpec, keyPart)
	}
	switch {
	case mods == ModNone && unicode.IsUpper(r):
		mods = ModShift
	case mods.HasShift() && unicode.IsLetter(r):
		r = unicode.ToUpper(r)
	case mods != ModNone && unicode.IsLetter(r):
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods).WithLocation(loc), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code and tests.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// ParseScript parses a whitespace-separated list of key specifications.
func ParseScript(script string) ([]Event, error) {
	fields := strings.Fields(script)
	events := make([]Event, 0, len(fields))
	for i, f := range fields {
		ev, err := Parse(f)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

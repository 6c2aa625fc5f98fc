package backend

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/reelkeys/internal/input/key"
)

// specialKeys maps tcell keys to key.Key.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) key.Modifier {
	return key.FromFlags(m&tcell.ModCtrl != 0, m&tcell.ModShift != 0, m&tcell.ModAlt != 0, m&tcell.ModMeta != 0)
}

// convertKey converts a tcell key press into a key event. Terminals report
// Ctrl+letter as a control character and do not report Shift for capital
// letters, so both are normalized to what a browser keydown would carry.
// Terminals cannot tell keypad Enter from the main Enter key. tcell folds a
// Ctrl+capital rune into the lower-case control key, so that form of
// Ctrl+Shift arrives without Shift.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())

	if k, ok := specialKeys[e.Key()]; ok {
		return key.NewSpecialEvent(k, mods), true
	}

	switch k := e.Key(); {
	case k == tcell.KeyRune:
		r := e.Rune()
		if unicode.IsUpper(r) {
			mods = mods.With(key.ModShift)
		}
		if mods.HasCtrl() && unicode.IsLetter(r) {
			if mods.HasShift() {
				r = unicode.ToUpper(r)
			} else {
				r = unicode.ToLower(r)
			}
		}
		return key.NewRuneEvent(r, mods), true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := rune('a' + (k - tcell.KeyCtrlA))
		mods = mods.With(key.ModCtrl)
		if mods.HasShift() {
			r = unicode.ToUpper(r)
		}
		return key.NewRuneEvent(r, mods), true

	case k == tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl)), true
	}

	return key.Event{}, false
}

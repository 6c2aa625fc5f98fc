package key

import "strings"

// Modifier is the set of modifier flags a keydown carries, mirroring the
// ctrlKey, shiftKey, altKey and metaKey fields of a browser KeyboardEvent.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << 0
	ModShift Modifier = 1 << 1
	// ModAlt and ModMeta are carried through but no hotkey rule reads them.
	ModAlt  Modifier = 1 << 2
	ModMeta Modifier = 1 << 3
)

// FromFlags builds a Modifier from the four KeyboardEvent flags.
func FromFlags(ctrl, shift, alt, meta bool) Modifier {
	var m Modifier
	for _, f := range []struct {
		on  bool
		mod Modifier
	}{{ctrl, ModCtrl}, {shift, ModShift}, {alt, ModAlt}, {meta, ModMeta}} {
		if f.on {
			m |= f.mod
		}
	}
	return m
}

// Has reports whether every flag in mod is set.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

func (m Modifier) HasCtrl() bool  { return m.Has(ModCtrl) }
func (m Modifier) HasShift() bool { return m.Has(ModShift) }
func (m Modifier) HasAlt() bool   { return m.Has(ModAlt) }
func (m Modifier) HasMeta() bool  { return m.Has(ModMeta) }

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// modifierNames are the KeyboardEvent.key names of the modifier keys, in
// flag order.
var modifierNames = [...]struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Control"},
	{ModShift, "Shift"},
	{ModAlt, "Alt"},
	{ModMeta, "Meta"},
}

// String joins the held modifiers with "+", e.g. "Control+Shift".
func (m Modifier) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseModifier parses a modifier name as written in key scripts. It
// accepts the KeyboardEvent names and "Ctrl", case-insensitively.
func ParseModifier(name string) (Modifier, bool) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "ctrl") {
		return ModCtrl, true
	}
	for _, n := range modifierNames {
		if strings.EqualFold(name, n.name) {
			return n.mod, true
		}
	}
	return ModNone, false
}

package hotkey

import (
	"strings"

	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/player"
)

// Rule pairs a predicate over a key event with the action it produces.
type Rule struct {
	// Name identifies the rule in logs and metrics.
	Name string
	// Match reports whether the rule claims the event.
	Match func(ev key.Event) bool
	// Resolve builds the action for a claimed event. It may consult the
	// player and return None when a guard fails.
	Resolve func(ev key.Event, p player.Player) Action
}

// lowerLabel returns the lower-cased key label.
func lowerLabel(ev key.Event) string {
	return strings.ToLower(ev.Label())
}

func ctrlOnlyLetter(letter string) func(key.Event) bool {
	return func(ev key.Event) bool {
		return ev.Modifiers.HasCtrl() && !ev.Modifiers.HasShift() && lowerLabel(ev) == letter
	}
}

func codeIs(code int) func(key.Event) bool {
	return func(ev key.Event) bool {
		return ev.Code() == code
	}
}

func labelIn(labels ...string) func(key.Event) bool {
	return func(ev key.Event) bool {
		l := lowerLabel(ev)
		for _, want := range labels {
			if l == want {
				return true
			}
		}
		return false
	}
}

func fixed(a Action) func(key.Event, player.Player) Action {
	return func(key.Event, player.Player) Action { return a }
}

// DefaultRules returns the hotkey table in priority order.
func DefaultRules() []Rule {
	return []Rule{
		// Modifier combinations come first so Ctrl+X never reaches a
		// plain-letter rule.
		{
			Name:    "ctrl-x",
			Match:   ctrlOnlyLetter("x"),
			Resolve: fixed(ChangeSpeed(SpeedStep)),
		},
		{
			Name:    "ctrl-z",
			Match:   ctrlOnlyLetter("z"),
			Resolve: fixed(ChangeSpeed(-SpeedStep)),
		},
		{
			Name: "ctrl-shift",
			Match: func(ev key.Event) bool {
				return ev.Modifiers.HasCtrl() && ev.Modifiers.HasShift()
			},
			Resolve: fixed(ResetSpeed()),
		},
		{
			Name: "shift-s",
			Match: func(ev key.Event) bool {
				return ev.Modifiers.HasShift() && lowerLabel(ev) == "s"
			},
			Resolve: fixed(TakeScreenshot()),
		},

		// Key codes.
		{
			Name:    "space",
			Match:   codeIs(key.CodeSpace),
			Resolve: fixed(TogglePlayback()),
		},
		{
			Name:    "left",
			Match:   codeIs(key.CodeLeft),
			Resolve: fixed(SeekRelative(-SeekStep)),
		},
		{
			Name:    "right",
			Match:   codeIs(key.CodeRight),
			Resolve: fixed(SeekRelative(SeekStep)),
		},
		{
			Name:    "up",
			Match:   codeIs(key.CodeUp),
			Resolve: fixed(VolumeRelative(VolumeStep)),
		},
		{
			Name:    "down",
			Match:   codeIs(key.CodeDown),
			Resolve: fixed(VolumeRelative(-VolumeStep)),
		},
		{
			Name: "keypad-enter",
			Match: func(ev key.Event) bool {
				return ev.Code() == key.CodeEnter && ev.IsNumpad()
			},
			Resolve: fixed(ResetSpeed()),
		},

		// Key labels.
		{
			Name:  "a",
			Match: labelIn("a"),
			Resolve: func(_ key.Event, p player.Player) Action {
				return backwardAction(p.Video().CurrentTime())
			},
		},
		{
			Name:  "d",
			Match: labelIn("d"),
			Resolve: func(_ key.Event, p player.Player) Action {
				v := p.Video()
				return forwardAction(v.CurrentTime(), v.Duration())
			},
		},
		{
			Name:    "f",
			Match:   labelIn("f"),
			Resolve: fixed(ToggleFullscreen(player.ScopeBrowser)),
		},
		{
			Name:    "w",
			Match:   labelIn("w"),
			Resolve: fixed(ToggleFullscreen(player.ScopeWeb)),
		},
		{
			Name:    "m",
			Match:   labelIn("m"),
			Resolve: fixed(ToggleMute()),
		},
		{
			Name:    "plus",
			Match:   labelIn("+", "="),
			Resolve: fixed(ChangeSpeed(SpeedStep)),
		},
		{
			Name:    "minus",
			Match:   labelIn("-"),
			Resolve: fixed(ChangeSpeed(-SpeedStep)),
		},
		{
			Name: "digit",
			Match: func(ev key.Event) bool {
				l := ev.Label()
				return len(l) == 1 && l[0] >= '0' && l[0] <= '9'
			},
			Resolve: func(ev key.Event, p player.Player) Action {
				if !player.KnownDuration(p.Video().Duration()) {
					return None
				}
				return SeekPercent(int(ev.Label()[0]-'0') * PercentStep)
			},
		},
	}
}

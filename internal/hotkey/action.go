package hotkey

import (
	"fmt"

	"github.com/dshills/reelkeys/internal/player"
)

// Kind identifies what an Action does.
type Kind uint8

const (
	// ActionNone does nothing. A rule that matches but whose guard fails
	// resolves to ActionNone.
	ActionNone Kind = iota
	// ActionTogglePlayback switches between play and pause.
	ActionTogglePlayback
	// ActionSeekRelative moves the position by Value seconds.
	ActionSeekRelative
	// ActionSeekAbsolute moves the position to Value seconds.
	ActionSeekAbsolute
	// ActionSeekPercent moves the position to Value percent of the duration.
	ActionSeekPercent
	// ActionChangeSpeed adds Value to the playback rate.
	ActionChangeSpeed
	// ActionResetSpeed sets the playback rate to 1.
	ActionResetSpeed
	// ActionVolumeRelative adds Value to the volume.
	ActionVolumeRelative
	// ActionToggleMute flips the muted flag.
	ActionToggleMute
	// ActionToggleFullscreen enters or leaves fullscreen for Scope.
	ActionToggleFullscreen
	// ActionTakeScreenshot captures the current frame.
	ActionTakeScreenshot
)

var kindNames = [...]string{
	ActionNone:             "none",
	ActionTogglePlayback:   "toggle-playback",
	ActionSeekRelative:     "seek-relative",
	ActionSeekAbsolute:     "seek-absolute",
	ActionSeekPercent:      "seek-percent",
	ActionChangeSpeed:      "change-speed",
	ActionResetSpeed:       "reset-speed",
	ActionVolumeRelative:   "volume-relative",
	ActionToggleMute:       "toggle-mute",
	ActionToggleFullscreen: "toggle-fullscreen",
	ActionTakeScreenshot:   "take-screenshot",
}

// String returns the kebab-case action name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsSeek reports whether the kind moves the playback position.
// Seek actions are suppressed for live streams.
func (k Kind) IsSeek() bool {
	return k == ActionSeekRelative || k == ActionSeekAbsolute || k == ActionSeekPercent
}

// Action is a single player command resolved from a key event.
type Action struct {
	Kind Kind
	// Value is seconds for seeks, percent for SeekPercent, and the delta
	// for speed and volume changes.
	Value float64
	// Scope is the fullscreen scope for ToggleFullscreen.
	Scope player.Scope
}

// None is the empty action.
var None = Action{}

// TogglePlayback returns a play/pause action.
func TogglePlayback() Action { return Action{Kind: ActionTogglePlayback} }

// SeekRelative returns an action moving the position by seconds.
func SeekRelative(seconds float64) Action {
	return Action{Kind: ActionSeekRelative, Value: seconds}
}

// SeekAbsolute returns an action moving the position to seconds.
func SeekAbsolute(seconds float64) Action {
	return Action{Kind: ActionSeekAbsolute, Value: seconds}
}

// SeekPercent returns an action moving to percent of the duration.
func SeekPercent(percent int) Action {
	return Action{Kind: ActionSeekPercent, Value: float64(percent)}
}

// ChangeSpeed returns an action adding delta to the playback rate.
func ChangeSpeed(delta float64) Action {
	return Action{Kind: ActionChangeSpeed, Value: delta}
}

// ResetSpeed returns an action restoring normal speed.
func ResetSpeed() Action { return Action{Kind: ActionResetSpeed} }

// VolumeRelative returns an action adding delta to the volume.
func VolumeRelative(delta float64) Action {
	return Action{Kind: ActionVolumeRelative, Value: delta}
}

// ToggleMute returns a mute toggle action.
func ToggleMute() Action { return Action{Kind: ActionToggleMute} }

// ToggleFullscreen returns a fullscreen toggle for scope.
func ToggleFullscreen(scope player.Scope) Action {
	return Action{Kind: ActionToggleFullscreen, Scope: scope}
}

// TakeScreenshot returns a frame capture action.
func TakeScreenshot() Action { return Action{Kind: ActionTakeScreenshot} }

// String returns a compact description such as "seek-relative(-5)".
func (a Action) String() string {
	switch a.Kind {
	case ActionSeekRelative, ActionSeekAbsolute, ActionChangeSpeed, ActionVolumeRelative:
		return fmt.Sprintf("%s(%g)", a.Kind, a.Value)
	case ActionSeekPercent:
		return fmt.Sprintf("%s(%g%%)", a.Kind, a.Value)
	case ActionToggleFullscreen:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Scope)
	default:
		return a.Kind.String()
	}
}

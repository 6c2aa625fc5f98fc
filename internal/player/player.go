// Package player defines the capabilities the hotkey engine needs from the
// host media player, plus Sim, an in-memory player used by the demo app.
package player

import (
	"image"
	"math"
)

// Scope selects which fullscreen mode an operation applies to.
type Scope int

const (
	// ScopeBrowser is native, OS-level fullscreen.
	ScopeBrowser Scope = iota
	// ScopeWeb is in-page fullscreen: the player fills the host window.
	ScopeWeb
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeBrowser:
		return "browser"
	case ScopeWeb:
		return "web"
	default:
		return "unknown"
	}
}

// Options is the subset of player configuration read by the hotkey engine.
type Options struct {
	// Hotkey enables the focus-gated hotkey listener.
	Hotkey bool
	// Live marks a live stream; all seeking is disabled.
	Live bool
}

// Video exposes the state of the underlying media element.
type Video interface {
	CurrentTime() float64
	// Duration returns the media length in seconds. Zero, NaN or Inf
	// means the duration is not known.
	Duration() float64
	PlaybackRate() float64
	Muted() bool
	SetMuted(muted bool)
	// Size returns the native resolution of the video.
	Size() (width, height int)
	// Frame returns the frame currently on screen.
	Frame() (image.Image, error)
}

// Controller is the player's control bar.
type Controller interface {
	// SetAutoHide restarts the controls auto-hide timer.
	SetAutoHide()
}

// FullScreen toggles the two fullscreen scopes independently.
type FullScreen interface {
	IsFullScreen(scope Scope) bool
	Request(scope Scope)
	Cancel(scope Scope)
}

// Player is the capability contract between the hotkey engine and the host.
// Implementations own all state; the engine only reads it and calls the
// mutating methods below. All calls are assumed to succeed.
type Player interface {
	// Toggle switches between playing and paused.
	Toggle()
	// Seek jumps to t seconds. userInitiated asks the host to show its own
	// seek feedback.
	Seek(t float64, userInitiated bool)
	// Volume returns the current volume in [0, 1].
	Volume() float64
	// SetVolume applies v and returns the volume now in effect.
	SetVolume(v float64) float64
	// Speed sets the playback rate.
	Speed(rate float64)
	// Notice shows a short message to the user.
	Notice(msg string)
	// Focused reports whether the player owns keyboard focus.
	Focused() bool
	Options() Options

	Video() Video
	Controller() Controller
	FullScreen() FullScreen
}

// KnownDuration reports whether d is a usable media duration.
func KnownDuration(d float64) bool {
	return d > 0 && !math.IsInf(d, 0) && !math.IsNaN(d)
}

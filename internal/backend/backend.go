// Package backend provides the terminal the demo player draws to and reads
// keys from.
package backend

import "github.com/dshills/reelkeys/internal/input/key"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventFocus
	EventInterrupt
	// EventClosed is returned once the backend has shut down.
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Focused is set for EventFocus.
	Focused bool

	// Data carries the payload of EventInterrupt.
	Data any
}

// Style selects how a line of text is drawn.
type Style int

const (
	StyleNormal Style = iota
	StyleDim
	StyleStatus
	StyleNotice
	StylePrompt
)

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init initializes the backend for use.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	// A pending PollEvent returns EventClosed.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// Clear clears the entire screen.
	Clear()

	// DrawText draws text starting at x, y, clipped to the screen width.
	DrawText(x, y int, text string, style Style)

	// Show flushes pending drawing to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	PollEvent() Event

	// Interrupt wakes PollEvent with an EventInterrupt carrying data.
	// It is safe to call from any goroutine.
	Interrupt(data any) error
}

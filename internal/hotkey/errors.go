package hotkey

import "errors"

// Hotkey errors.
var (
	// ErrDestroyed indicates the hotkey engine has been torn down.
	ErrDestroyed = errors.New("hotkey: destroyed")

	// ErrNoCapturer indicates a screenshot was requested without a capture service.
	ErrNoCapturer = errors.New("hotkey: no capture service configured")
)

package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrLive indicates a goto target was rejected on a live stream.
	ErrLive = errors.New("cannot seek a live stream")

	// ErrBadTarget indicates the goto prompt text is not a time.
	ErrBadTarget = errors.New("invalid time")
)

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

package lua

import "errors"

var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs past its deadline.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNotFunction is returned when calling a global that is not a function.
	ErrNotFunction = errors.New("lua global is not a function")
)

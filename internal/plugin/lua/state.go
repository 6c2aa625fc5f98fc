package lua

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultExecutionTimeout bounds every script call.
const DefaultExecutionTimeout = 100 * time.Millisecond

// State wraps a sandboxed gopher-lua state.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes every
// call made through State.
type State struct {
	mu sync.Mutex

	L       *lua.LState
	timeout time.Duration
	closed  bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the deadline applied to each call. Zero
// disables it.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.timeout = d
	}
}

// NewState creates a new sandboxed Lua state.
func NewState(opts ...StateOption) *State {
	s := &State{timeout: DefaultExecutionTimeout}
	for _, opt := range opts {
		opt(s)
	}

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(s.L)
	return s
}

// openSafeLibraries opens only libraries without file or process access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	// Each opener leaves its module table on the stack.
	L.SetTop(0)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoFile executes a Lua file.
func (s *State) DoFile(path string) error {
	return s.run(func(L *lua.LState) error {
		fn, err := L.LoadFile(path)
		if err != nil {
			return err
		}
		L.Push(fn)
		return L.PCall(0, lua.MultRet, nil)
	})
}

// DoString executes a Lua chunk.
func (s *State) DoString(code string) error {
	return s.run(func(L *lua.LState) error {
		return L.DoString(code)
	})
}

// Call calls a global Lua function and returns its results.
func (s *State) Call(name string, args ...lua.LValue) ([]lua.LValue, error) {
	var results []lua.LValue
	err := s.run(func(L *lua.LState) error {
		fn, ok := L.GetGlobal(name).(*lua.LFunction)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFunction, name)
		}

		top := L.GetTop()
		L.Push(fn)
		for _, arg := range args {
			L.Push(arg)
		}
		if err := L.PCall(len(args), lua.MultRet, nil); err != nil {
			L.SetTop(top)
			return err
		}

		n := L.GetTop() - top
		results = make([]lua.LValue, n)
		for i := 0; i < n; i++ {
			results[i] = L.Get(top + i + 1)
		}
		L.Pop(n)
		return nil
	})
	return results, err
}

// NewTable creates an empty table with preallocated array and hash parts.
func (s *State) NewTable(narr, nrec int) *lua.LTable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.L.CreateTable(narr, nrec)
}

// HasFunction reports whether the global name is a function.
func (s *State) HasFunction(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	_, ok := s.L.GetGlobal(name).(*lua.LFunction)
	return ok
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// RegisterModule installs a global table of Go functions.
func (s *State) RegisterModule(name string, funcs map[string]lua.LGFunction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.L.SetGlobal(name, s.L.SetFuncs(s.L.NewTable(), funcs))
}

// Close releases the Lua state. Calling it again does nothing.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}

// run executes fn under the lock with the execution deadline applied.
func (s *State) run(fn func(L *lua.LState) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	err = fn(s.L)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
	}
	return err
}

// Package listener implements the host keyboard input stream that hotkey
// listeners register against.
//
// Every registered listener sees every event in registration order, the way
// DOM keydown listeners do. A listener reports whether it consumed the key;
// Emit folds those answers into a single "default prevented" flag the host
// uses to decide whether to run its own handling for the key.
package listener

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/reelkeys/internal/input/key"
)

// Func handles one keydown. It returns true to prevent the host's default
// handling of the key.
type Func func(ev key.Event) bool

// entry is a registered listener.
type entry struct {
	id   string
	name string
	fn   Func
}

// Stream is a registry of keydown listeners.
// It is safe for concurrent use; listeners are invoked outside the lock so
// they may add or remove listeners themselves.
type Stream struct {
	mu        sync.RWMutex
	listeners []entry
	emitted   uint64
	prevented uint64
}

// NewStream creates an empty input stream.
func NewStream() *Stream {
	return &Stream{}
}

// AddListener registers fn and returns an ID for RemoveListener.
// The name is informational and shows up in Names.
func (s *Stream) AddListener(name string, fn Func) string {
	if fn == nil {
		return ""
	}

	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, entry{id: id, name: name, fn: fn})
	return id
}

// RemoveListener unregisters the listener with the given ID.
// Returns false if no such listener is registered.
func (s *Stream) RemoveListener(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.listeners {
		if e.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Emit delivers ev to every listener registered at the time of the call and
// reports whether any of them prevented the default handling.
func (s *Stream) Emit(ev key.Event) bool {
	s.mu.RLock()
	snapshot := make([]entry, len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.RUnlock()

	prevented := false
	for _, e := range snapshot {
		if e.fn(ev) {
			prevented = true
		}
	}

	s.mu.Lock()
	s.emitted++
	if prevented {
		s.prevented++
	}
	s.mu.Unlock()

	return prevented
}

// Len returns the number of registered listeners.
func (s *Stream) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// Names returns the names of registered listeners in registration order.
func (s *Stream) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.listeners))
	for i, e := range s.listeners {
		names[i] = e.name
	}
	return names
}

// Stats reports how many events were emitted and how many had their default
// handling prevented.
func (s *Stream) Stats() (emitted, prevented uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.emitted, s.prevented
}

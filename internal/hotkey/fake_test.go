package hotkey

import (
	"errors"
	"fmt"
	"image"

	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/input/listener"
	"github.com/dshills/reelkeys/internal/player"
)

// seekCall records one Seek invocation.
type seekCall struct {
	t             float64
	userInitiated bool
}

// fakePlayer records every call made through the capability contract.
// Seek does not clamp, so tests see exactly what the engine asked for.
type fakePlayer struct {
	opts     player.Options
	focused  bool
	current  float64
	duration float64
	rate     float64
	volume   float64
	muted    bool

	toggles    int
	seeks      []seekCall
	speeds     []float64
	volumes    []float64
	notices    []string
	autoHides  int
	fullscreen map[player.Scope]bool
	requests   []player.Scope
	cancels    []player.Scope
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{
		opts:       player.Options{Hotkey: true},
		focused:    true,
		duration:   100,
		rate:       1,
		volume:     0.5,
		fullscreen: make(map[player.Scope]bool),
	}
}

func (f *fakePlayer) Toggle() { f.toggles++ }

func (f *fakePlayer) Seek(t float64, userInitiated bool) {
	f.seeks = append(f.seeks, seekCall{t: t, userInitiated: userInitiated})
	f.current = t
}

func (f *fakePlayer) Volume() float64 { return f.volume }

func (f *fakePlayer) SetVolume(v float64) float64 {
	f.volumes = append(f.volumes, v)
	f.volume = v
	return v
}

func (f *fakePlayer) Speed(rate float64) {
	f.speeds = append(f.speeds, rate)
	f.rate = rate
}

func (f *fakePlayer) Notice(msg string) { f.notices = append(f.notices, msg) }
func (f *fakePlayer) Focused() bool { return f.focused }
func (f *fakePlayer) Options() player.Options { return f.opts }
func (f *fakePlayer) Video() player.Video { return f }
func (f *fakePlayer) Controller() player.Controller { return f }
func (f *fakePlayer) FullScreen() player.FullScreen { return f }
func (f *fakePlayer) CurrentTime() float64 { return f.current }
func (f *fakePlayer) Duration() float64 { return f.duration }
func (f *fakePlayer) PlaybackRate() float64 { return f.rate }
func (f *fakePlayer) Muted() bool { return f.muted }
func (f *fakePlayer) SetMuted(m bool) { f.muted = m }
func (f *fakePlayer) Size() (int, int) { return 16, 9 }
func (f *fakePlayer) Frame() (image.Image, error) { return image.NewRGBA(image.Rect(0, 0, 16, 9)), nil }
func (f *fakePlayer) SetAutoHide() { f.autoHides++ }
func (f *fakePlayer) IsFullScreen(s player.Scope) bool { return f.fullscreen[s] }

func (f *fakePlayer) Request(s player.Scope) {
	f.requests = append(f.requests, s)
	f.fullscreen[s] = true
}

func (f *fakePlayer) Cancel(s player.Scope) {
	f.cancels = append(f.cancels, s)
	f.fullscreen[s] = false
}

// mutations counts calls that change player state.
func (f *fakePlayer) mutations() int {
	return f.toggles + len(f.seeks) + len(f.speeds) + len(f.volumes) + len(f.requests) + len(f.cancels)
}

// fakeCapturer counts captures and can fail.
type fakeCapturer struct {
	calls int
	err   error
}

func (c *fakeCapturer) Capture() error {
	c.calls++
	return c.err
}

var errCaptureFailed = errors.New("capture failed")

// fakeSource is a minimal listener registry.
type fakeSource struct {
	next      int
	listeners map[string]listener.Func
	names     map[string]string
	removed   []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		listeners: make(map[string]listener.Func),
		names:     make(map[string]string),
	}
}

func (s *fakeSource) AddListener(name string, fn listener.Func) string {
	s.next++
	id := fmt.Sprintf("%s#%d", name, s.next)
	s.listeners[id] = fn
	s.names[id] = name
	return id
}

func (s *fakeSource) RemoveListener(id string) bool {
	if _, ok := s.listeners[id]; !ok {
		return false
	}
	delete(s.listeners, id)
	s.removed = append(s.removed, s.names[id])
	return true
}

func (s *fakeSource) has(name string) bool {
	for id := range s.listeners {
		if s.names[id] == name {
			return true
		}
	}
	return false
}

// emit delivers ev to every listener and reports whether any prevented it.
func (s *fakeSource) emit(ev key.Event) bool {
	prevented := false
	for _, fn := range s.listeners {
		if fn(ev) {
			prevented = true
		}
	}
	return prevented
}

// press parses a key spec for tests.
func press(spec string) key.Event {
	return key.MustParse(spec)
}

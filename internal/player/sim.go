package player

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"sync"
	"time"
)

// maxNotices bounds the notice history kept by Sim.
const maxNotices = 32

// SimConfig configures a simulated player.
type SimConfig struct {
	Options  Options
	Duration float64
	Volume   float64
	Width    int
	Height   int
	// OnNotice, if set, is called for every notice outside the lock.
	OnNotice func(msg string)
}

// DefaultSimConfig returns a ten minute 640x360 clip with hotkeys on.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Options:  Options{Hotkey: true},
		Duration: 600,
		Volume:   0.7,
		Width:    640,
		Height:   360,
	}
}

// State is a point-in-time snapshot of a Sim.
type State struct {
	Playing      bool
	CurrentTime  float64
	Duration     float64
	PlaybackRate float64
	Volume       float64
	Muted        bool
	Focused      bool
	Live         bool
	Browser      bool
	Web          bool
	LastNotice   string
}

// Sim is an in-memory player. It implements Player, Video, Controller and
// FullScreen, and is safe for concurrent use.
type Sim struct {
	mu sync.Mutex

	opts     Options
	focused  bool
	playing  bool
	current  float64
	duration float64
	rate     float64
	volume   float64
	muted    bool
	width    int
	height   int

	fullscreen map[Scope]bool
	notices    []string
	autoHides  int
	onNotice   func(string)
}

// NewSim creates a simulated player with focus, paused at 0.
func NewSim(cfg SimConfig) *Sim {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 360
	}
	return &Sim{
		opts:       cfg.Options,
		focused:    true,
		duration:   cfg.Duration,
		rate:       1,
		volume:     clamp01(cfg.Volume),
		width:      cfg.Width,
		height:     cfg.Height,
		fullscreen: make(map[Scope]bool),
		onNotice:   cfg.OnNotice,
	}
}

// Toggle implements Player.
func (s *Sim) Toggle() {
	s.mu.Lock()
	s.playing = !s.playing
	playing := s.playing
	s.mu.Unlock()

	if playing {
		s.Notice("Play")
	} else {
		s.Notice("Pause")
	}
}

// Seek implements Player. The position is clamped to the media bounds.
func (s *Sim) Seek(t float64, userInitiated bool) {
	s.mu.Lock()
	if t < 0 {
		t = 0
	}
	if KnownDuration(s.duration) && t > s.duration {
		t = s.duration
	}
	delta := t - s.current
	s.current = t
	s.mu.Unlock()

	if userInitiated {
		if delta >= 0 {
			s.Notice(formatSeek("FF", delta))
		} else {
			s.Notice(formatSeek("REW", -delta))
		}
	}
}

// Volume implements Player.
func (s *Sim) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SetVolume implements Player. The volume is clamped to [0, 1].
func (s *Sim) SetVolume(v float64) float64 {
	s.mu.Lock()
	s.volume = clamp01(v)
	v = s.volume
	s.mu.Unlock()

	s.Notice("Volume: " + strconv.Itoa(int(math.Round(v*100))) + "%")
	return v
}

// Speed implements Player.
func (s *Sim) Speed(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rate = rate
}

// Notice implements Player.
func (s *Sim) Notice(msg string) {
	s.mu.Lock()
	s.notices = append(s.notices, msg)
	if len(s.notices) > maxNotices {
		s.notices = s.notices[len(s.notices)-maxNotices:]
	}
	fn := s.onNotice
	s.mu.Unlock()

	if fn != nil {
		fn(msg)
	}
}

// Focused implements Player.
func (s *Sim) Focused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused
}

// SetFocused records whether the player owns keyboard focus.
func (s *Sim) SetFocused(focused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = focused
}

// Options implements Player.
func (s *Sim) Options() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// SetOptions replaces the player options.
func (s *Sim) SetOptions(opts Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = opts
}

// Video implements Player.
func (s *Sim) Video() Video { return s }

// Controller implements Player.
func (s *Sim) Controller() Controller { return s }

// FullScreen implements Player.
func (s *Sim) FullScreen() FullScreen { return s }

// CurrentTime implements Video.
func (s *Sim) CurrentTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Duration implements Video.
func (s *Sim) Duration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// PlaybackRate implements Video.
func (s *Sim) PlaybackRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

// Muted implements Video.
func (s *Sim) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// SetMuted implements Video.
func (s *Sim) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
}

// Size implements Video.
func (s *Sim) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Frame implements Video. It renders a test pattern whose hue and progress
// bar follow the playback position.
func (s *Sim) Frame() (image.Image, error) {
	s.mu.Lock()
	w, h := s.width, s.height
	pos := s.current
	dur := s.duration
	s.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	shift := uint8(int(pos*10) % 256)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x*255/w) + shift,
				G: uint8(y * 255 / h),
				B: 255 - shift,
				A: 255,
			})
		}
	}

	if KnownDuration(dur) {
		barEnd := int(float64(w) * math.Min(pos/dur, 1))
		for y := h - h/20; y < h; y++ {
			for x := 0; x < barEnd; x++ {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	return img, nil
}

// SetAutoHide implements Controller.
func (s *Sim) SetAutoHide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoHides++
}

// AutoHideResets returns how many times SetAutoHide was called.
func (s *Sim) AutoHideResets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoHides
}

// IsFullScreen implements FullScreen.
func (s *Sim) IsFullScreen(scope Scope) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen[scope]
}

// Request implements FullScreen.
func (s *Sim) Request(scope Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullscreen[scope] = true
}

// Cancel implements FullScreen.
func (s *Sim) Cancel(scope Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullscreen[scope] = false
}

// Tick advances playback by wall-clock time d scaled by the playback rate.
// Playback pauses at the end of the media.
func (s *Sim) Tick(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.playing {
		return
	}
	s.current += d.Seconds() * s.rate
	if KnownDuration(s.duration) && s.current >= s.duration {
		s.current = s.duration
		s.playing = false
	}
}

// Notices returns the most recent notices, oldest first.
func (s *Sim) Notices() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.notices))
	copy(out, s.notices)
	return out
}

// State returns a snapshot of the player.
func (s *Sim) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Playing:      s.playing,
		CurrentTime:  s.current,
		Duration:     s.duration,
		PlaybackRate: s.rate,
		Volume:       s.volume,
		Muted:        s.muted,
		Focused:      s.focused,
		Live:         s.opts.Live,
		Browser:      s.fullscreen[ScopeBrowser],
		Web:          s.fullscreen[ScopeWeb],
	}
	if n := len(s.notices); n > 0 {
		st.LastNotice = s.notices[n-1]
	}
	return st
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func formatSeek(prefix string, seconds float64) string {
	return prefix + " " + strconv.Itoa(int(math.Round(seconds))) + "s"
}

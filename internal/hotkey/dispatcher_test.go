package hotkey

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/logging"
	"github.com/dshills/reelkeys/internal/player"
)

func TestDispatchSpeedUpThreeTimes(t *testing.T) {
	fp := newFakePlayer()
	d := NewDispatcher(fp, nil, nil)

	for i := 0; i < 3; i++ {
		if !d.Dispatch(press("<C-x>")) {
			t.Fatalf("press %d not suppressed", i+1)
		}
	}
	if fp.rate != 1.15 {
		t.Errorf("rate = %v, want 1.15", fp.rate)
	}
	want := []float64{1.05, 1.1, 1.15}
	if len(fp.speeds) != len(want) {
		t.Fatalf("speeds = %v, want %v", fp.speeds, want)
	}
	for i := range want {
		if fp.speeds[i] != want[i] {
			t.Errorf("speeds[%d] = %v, want %v", i, fp.speeds[i], want[i])
		}
	}
}

func TestDispatchSpeedBounds(t *testing.T) {
	fp := newFakePlayer()
	d := NewDispatcher(fp, nil, nil)

	for i := 0; i < 40; i++ {
		d.Dispatch(press("+"))
	}
	if fp.rate != MaxRate {
		t.Errorf("rate after many increments = %v, want %v", fp.rate, MaxRate)
	}
	for i := 0; i < 60; i++ {
		d.Dispatch(press("-"))
	}
	if fp.rate != MinRate {
		t.Errorf("rate after many decrements = %v, want %v", fp.rate, MinRate)
	}
}

func TestDispatchRewindNearStart(t *testing.T) {
	fp := newFakePlayer()
	fp.current = 3
	d := NewDispatcher(fp, nil, nil)

	d.Dispatch(press("a"))
	if len(fp.seeks) != 1 {
		t.Fatalf("seeks = %v, want one", fp.seeks)
	}
	if got := fp.seeks[0]; got.t != 0 || !got.userInitiated {
		t.Errorf("seek = %+v, want {0 true}", got)
	}
	if fp.autoHides != 1 {
		t.Errorf("autoHides = %d, want 1", fp.autoHides)
	}
}

func TestDispatchForwardNearEnd(t *testing.T) {
	fp := newFakePlayer()
	fp.current = 97
	fp.duration = 100
	d := NewDispatcher(fp, nil, nil)

	d.Dispatch(press("d"))
	if len(fp.seeks) != 1 || fp.seeks[0].t != 99 {
		t.Errorf("seeks = %+v, want [{99 true}]", fp.seeks)
	}
}

func TestDispatchArrowSeeks(t *testing.T) {
	fp := newFakePlayer()
	fp.current = 2
	d := NewDispatcher(fp, nil, nil)

	d.Dispatch(press("<Left>"))
	if got := fp.seeks[len(fp.seeks)-1].t; got != 0 {
		t.Errorf("left from 2 = %v, want 0", got)
	}

	fp.current = 98
	d.Dispatch(press("<Right>"))
	if got := fp.seeks[len(fp.seeks)-1].t; got != 103 {
		t.Errorf("right from 98 = %v, want 103", got)
	}
	if fp.autoHides != 2 {
		t.Errorf("autoHides = %d, want 2", fp.autoHides)
	}
}

func TestDispatchPercentSeek(t *testing.T) {
	fp := newFakePlayer()
	fp.duration = 200
	d := NewDispatcher(fp, nil, nil)

	d.Dispatch(press("7"))
	if len(fp.seeks) != 1 {
		t.Fatalf("seeks = %v, want one", fp.seeks)
	}
	if got := fp.seeks[0]; got.t != 140 || got.userInitiated {
		t.Errorf("seek = %+v, want {140 false}", got)
	}
	if len(fp.notices) != 1 || fp.notices[0] != "Seek: 70%" {
		t.Errorf("notices = %v, want [Seek: 70%%]", fp.notices)
	}
	if fp.autoHides != 0 {
		t.Errorf("autoHides = %d, want 0", fp.autoHides)
	}
}

func TestDispatchPercentUnknownDuration(t *testing.T) {
	fp := newFakePlayer()
	fp.duration = math.NaN()
	d := NewDispatcher(fp, nil, nil)

	if !d.Dispatch(press("5")) {
		t.Error("digit should be suppressed even without a duration")
	}
	if len(fp.seeks) != 0 || len(fp.notices) != 0 {
		t.Errorf("seeks = %v notices = %v, want none", fp.seeks, fp.notices)
	}

	s := d.Metrics().Snapshot()
	if s.Guarded != 1 {
		t.Errorf("Guarded = %d, want 1", s.Guarded)
	}
	if n := s.Actions[ActionSeekPercent]; n != 0 {
		t.Errorf("seek-percent count = %d, want 0", n)
	}
}

func TestDispatchVolume(t *testing.T) {
	fp := newFakePlayer()
	fp.volume = 0.95
	d := NewDispatcher(fp, nil, nil)

	d.Dispatch(press("<Up>"))
	if fp.volume != 1 {
		t.Errorf("volume = %v, want 1", fp.volume)
	}

	fp.volume = 0.05
	d.Dispatch(press("<Down>"))
	if fp.volume != 0 {
		t.Errorf("volume = %v, want 0", fp.volume)
	}
}

func TestDispatchMute(t *testing.T) {
	fp := newFakePlayer()
	d := NewDispatcher(fp, nil, nil)

	d.Dispatch(press("m"))
	if !fp.muted {
		t.Error("expected muted")
	}
	d.Dispatch(press("m"))
	if fp.muted {
		t.Error("expected unmuted")
	}
	want := []string{"Muted", "Unmuted"}
	if strings.Join(fp.notices, ",") != strings.Join(want, ",") {
		t.Errorf("notices = %v, want %v", fp.notices, want)
	}
}

func TestDispatchFullscreenToggle(t *testing.T) {
	fp := newFakePlayer()
	d := NewDispatcher(fp, nil, nil)

	d.Dispatch(press("f"))
	if !fp.fullscreen[player.ScopeBrowser] {
		t.Error("f should enter browser fullscreen")
	}
	d.Dispatch(press("f"))
	if fp.fullscreen[player.ScopeBrowser] {
		t.Error("second f should leave browser fullscreen")
	}

	d.Dispatch(press("w"))
	if !fp.fullscreen[player.ScopeWeb] {
		t.Error("w should enter web fullscreen")
	}
	if len(fp.requests) != 2 || len(fp.cancels) != 1 {
		t.Errorf("requests = %v cancels = %v", fp.requests, fp.cancels)
	}
}

func TestDispatchTogglePlayback(t *testing.T) {
	fp := newFakePlayer()
	d := NewDispatcher(fp, nil, nil)

	d.Dispatch(press("<Space>"))
	d.Dispatch(press("<Space>"))
	if fp.toggles != 2 {
		t.Errorf("toggles = %d, want 2", fp.toggles)
	}
}

func TestDispatchResetSpeedKeypadOnly(t *testing.T) {
	fp := newFakePlayer()
	fp.rate = 1.5
	d := NewDispatcher(fp, nil, nil)

	if d.Dispatch(press("<CR>")) {
		t.Error("main Enter should not be suppressed")
	}
	if fp.rate != 1.5 {
		t.Errorf("rate = %v after main Enter, want 1.5", fp.rate)
	}

	if !d.Dispatch(press("<KPEnter>")) {
		t.Error("keypad Enter should be suppressed")
	}
	if fp.rate != NormalRate {
		t.Errorf("rate = %v after keypad Enter, want 1", fp.rate)
	}
}

func TestDispatchLiveSuppressesSeeks(t *testing.T) {
	fp := newFakePlayer()
	fp.opts.Live = true
	fp.current = 50
	d := NewDispatcher(fp, nil, nil)

	for _, spec := range []string{"a", "d", "<Left>", "<Right>", "0", "5", "9"} {
		if !d.Dispatch(press(spec)) {
			t.Errorf("Dispatch(%q) = false, want suppressed", spec)
		}
	}
	if len(fp.seeks) != 0 {
		t.Errorf("seeks = %v, want none while live", fp.seeks)
	}
	if len(fp.notices) != 0 {
		t.Errorf("notices = %v, want none while live", fp.notices)
	}

	d.Dispatch(press("<Space>"))
	if fp.toggles != 1 {
		t.Errorf("toggles = %d, want playback to work while live", fp.toggles)
	}

	s := d.Metrics().Snapshot()
	if s.Guarded != 7 {
		t.Errorf("Guarded = %d, want 7", s.Guarded)
	}
}

func TestDispatchAtMostOneMutation(t *testing.T) {
	specs := []string{
		"<C-x>", "<C-z>", "<C-S-x>", "<Space>", "<Left>", "<Right>", "<Up>", "<Down>",
		"<KPEnter>", "a", "d", "f", "w", "+", "=", "-", "0", "3", "9",
	}
	for _, spec := range specs {
		fp := newFakePlayer()
		fp.current = 40
		NewDispatcher(fp, nil, nil).Dispatch(press(spec))
		if n := fp.mutations(); n > 1 {
			t.Errorf("%q caused %d mutations, want at most 1", spec, n)
		}
	}
}

func TestDispatchUnmatchedLeavesPlayerAlone(t *testing.T) {
	fp := newFakePlayer()
	d := NewDispatcher(fp, nil, nil)

	if d.Dispatch(press("q")) {
		t.Error("unmatched key should not be suppressed")
	}
	if fp.mutations() != 0 || len(fp.notices) != 0 {
		t.Error("unmatched key changed player state")
	}
	if s := d.Metrics().Snapshot(); s.Unmatched != 1 {
		t.Errorf("Unmatched = %d, want 1", s.Unmatched)
	}
}

func TestDispatchScreenshot(t *testing.T) {
	fp := newFakePlayer()
	c := &fakeCapturer{}
	d := NewDispatcher(fp, c, nil)

	if !d.Dispatch(press("S")) {
		t.Error("Shift+S should be suppressed")
	}
	if c.calls != 1 {
		t.Errorf("captures = %d, want 1", c.calls)
	}
}

func TestDispatchScreenshotFailureLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})
	c := &fakeCapturer{err: errCaptureFailed}
	d := NewDispatcher(newFakePlayer(), c, logger)

	if !d.Dispatch(press("S")) {
		t.Error("Shift+S should be suppressed even when capture fails")
	}
	if !strings.Contains(buf.String(), "capture failed") {
		t.Errorf("log = %q, want capture error", buf.String())
	}
}

func TestDispatchScreenshotWithoutCapturer(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})
	d := NewDispatcher(newFakePlayer(), nil, logger)

	d.Dispatch(press("S"))
	if !strings.Contains(buf.String(), ErrNoCapturer.Error()) {
		t.Errorf("log = %q, want %q", buf.String(), ErrNoCapturer)
	}
}

func TestDispatchObservers(t *testing.T) {
	fp := newFakePlayer()
	d := NewDispatcher(fp, nil, nil)

	type seen struct {
		label string
		rule  string
		a     Action
	}
	var got []seen
	d.AddObserver(func(ev key.Event, rule string, a Action) {
		got = append(got, seen{ev.Label(), rule, a})
	})
	d.AddObserver(nil)

	d.Dispatch(press("m"))
	d.Dispatch(press("q"))

	if len(got) != 1 {
		t.Fatalf("observer calls = %d, want 1", len(got))
	}
	if got[0].rule != "m" || got[0].a != ToggleMute() {
		t.Errorf("observed %+v", got[0])
	}
}

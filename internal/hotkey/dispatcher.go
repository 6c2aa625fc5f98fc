package hotkey

import (
	"fmt"
	"math"

	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/logging"
	"github.com/dshills/reelkeys/internal/player"
)

// Capturer takes a screenshot of the current frame.
type Capturer interface {
	Capture() error
}

// Observer is notified after a rule matched and its action ran.
// The action is None when a guard suppressed it.
type Observer func(ev key.Event, rule string, a Action)

// Dispatcher resolves key events against an ordered rule table and
// executes the winning action.
type Dispatcher struct {
	player    player.Player
	rules     []Rule
	capturer  Capturer
	logger    *logging.Logger
	metrics   *Metrics
	observers []Observer
}

// NewDispatcher creates a dispatcher over the default rule table.
// capturer may be nil, in which case screenshots are logged and skipped.
func NewDispatcher(p player.Player, capturer Capturer, logger *logging.Logger) *Dispatcher {
	return &Dispatcher{
		player:   p,
		rules:    DefaultRules(),
		capturer: capturer,
		logger:   logging.OrDiscard(logger).WithComponent("hotkey"),
		metrics:  NewMetrics(),
	}
}

// AddObserver registers fn to run after every matched event.
func (d *Dispatcher) AddObserver(fn Observer) {
	if fn != nil {
		d.observers = append(d.observers, fn)
	}
}

// Metrics returns the dispatcher's statistics collector.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Resolve finds the first rule matching ev and returns its name and action.
// ok is false when no rule matches. Seek actions resolve to None while the
// player is live.
func (d *Dispatcher) Resolve(ev key.Event) (rule string, a Action, ok bool) {
	for i := range d.rules {
		r := &d.rules[i]
		if !r.Match(ev) {
			continue
		}
		a = r.Resolve(ev, d.player)
		if a.Kind.IsSeek() && d.player.Options().Live {
			a = None
		}
		return r.Name, a, true
	}
	return "", None, false
}

// Dispatch resolves and executes ev. It returns true when a rule matched,
// meaning the host must not apply its default handling of the key.
func (d *Dispatcher) Dispatch(ev key.Event) bool {
	rule, a, ok := d.Resolve(ev)
	if !ok {
		d.metrics.RecordUnmatched()
		return false
	}

	d.logger.WithFields(map[string]any{"key": ev.String(), "rule": rule}).Debug("matched %s", a)
	d.Execute(a)
	d.metrics.RecordMatch(rule, a)

	for _, fn := range d.observers {
		fn(ev, rule, a)
	}
	return true
}

// Execute applies a to the player. Each action performs at most one player
// mutation.
func (d *Dispatcher) Execute(a Action) {
	p := d.player
	v := p.Video()

	switch a.Kind {
	case ActionNone:
		// guarded out

	case ActionTogglePlayback:
		p.Toggle()

	case ActionSeekRelative:
		p.Seek(RelativeTarget(v.CurrentTime(), a.Value), true)
		p.Controller().SetAutoHide()

	case ActionSeekAbsolute:
		p.Seek(math.Max(0, a.Value), true)
		p.Controller().SetAutoHide()

	case ActionSeekPercent:
		t, ok := PercentTime(v.Duration(), a.Value)
		if !ok {
			return
		}
		p.Seek(t, false)
		p.Notice(fmt.Sprintf("Seek: %g%%", a.Value))

	case ActionChangeSpeed:
		p.Speed(NextRate(v.PlaybackRate(), a.Value))

	case ActionResetSpeed:
		p.Speed(NormalRate)

	case ActionVolumeRelative:
		p.SetVolume(NextVolume(p.Volume(), a.Value))

	case ActionToggleMute:
		muted := !v.Muted()
		v.SetMuted(muted)
		if muted {
			p.Notice("Muted")
		} else {
			p.Notice("Unmuted")
		}

	case ActionToggleFullscreen:
		fs := p.FullScreen()
		if fs.IsFullScreen(a.Scope) {
			fs.Cancel(a.Scope)
		} else {
			fs.Request(a.Scope)
		}

	case ActionTakeScreenshot:
		if d.capturer == nil {
			d.logger.Warn("screenshot skipped: %v", ErrNoCapturer)
			return
		}
		if err := d.capturer.Capture(); err != nil {
			d.logger.Warn("screenshot failed: %v", err)
		}

	default:
		d.logger.Warn("unknown action %s", a)
	}
}

package app

import (
	"context"
	"errors"
	"time"

	"github.com/dshills/reelkeys/internal/backend"
	"github.com/dshills/reelkeys/internal/input/key"
)

// tickInterval is how often playback time advances in the event loop.
const tickInterval = 100 * time.Millisecond

// Interrupt payloads posted to the backend.
type (
	tickSignal     struct{}
	redrawSignal   struct{}
	shutdownSignal struct{}
)

// Run drives the interactive loop on b until the user quits, the backend
// closes or Shutdown is called.
func (app *Application) Run(b backend.Backend) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.mu.Lock()
	app.backend = b
	app.lastTick = time.Now()
	app.mu.Unlock()
	defer func() {
		app.mu.Lock()
		app.backend = nil
		app.mu.Unlock()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.ticker(ctx, b)

	app.render(b)
	for {
		select {
		case <-app.done:
			return nil
		default:
		}

		if err := app.handleBackendEvent(b.PollEvent()); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		app.render(b)
	}
}

// ticker posts tick interrupts until ctx is done.
func (app *Application) ticker(ctx context.Context, b backend.Backend) {
	t := time.NewTicker(tickInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			// A full queue drops the tick; the next one covers the gap.
			_ = b.Interrupt(tickSignal{})
		}
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.HandleKey(ev.Key)
	case backend.EventFocus:
		app.sim.SetFocused(ev.Focused)
	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Data)
	case backend.EventClosed:
		return ErrQuit
	}
	return nil
}

func (app *Application) handleInterrupt(data any) error {
	switch data.(type) {
	case tickSignal:
		app.mu.Lock()
		now := time.Now()
		elapsed := now.Sub(app.lastTick)
		app.lastTick = now
		app.mu.Unlock()
		app.sim.Tick(elapsed)
	case shutdownSignal:
		return ErrQuit
	}
	return nil
}

// HandleKey delivers one keydown to the input stream, then applies the
// host's default handling when no listener prevented it.
func (app *Application) HandleKey(ev key.Event) error {
	if app.stream.Emit(ev) {
		return nil
	}
	return app.defaultKey(ev)
}

// defaultKey is the host's own key handling: the goto prompt while it is
// open, otherwise ":" to open it and q or Ctrl+C to quit.
func (app *Application) defaultKey(ev key.Event) error {
	if app.prompt.IsOpen() {
		text, submitted := app.prompt.Handle(ev)
		if submitted {
			app.gotoTarget(text)
		}
		return nil
	}

	m := ev.Modifiers
	switch {
	case ev.IsRune() && ev.Rune == ':' && !m.HasCtrl():
		app.prompt.Open()
	case ev.IsRune() && ev.Rune == 'q' && m == key.ModNone:
		return ErrQuit
	case ev.IsRune() && ev.Rune == 'c' && m == key.ModCtrl:
		return ErrQuit
	}
	return nil
}

// gotoTarget seeks to the time typed into the prompt.
func (app *Application) gotoTarget(text string) {
	if err := app.Goto(text); err != nil {
		app.logger.Debug("goto %q: %v", text, err)
		if errors.Is(err, ErrLive) {
			app.sim.Notice("Live stream")
		} else {
			app.sim.Notice("Bad time: " + text)
		}
	}
}

// Goto seeks the player to a prompt target such as "1:30" or "40%".
func (app *Application) Goto(text string) error {
	if app.sim.Options().Live {
		return ErrLive
	}
	t, err := ParseTarget(text, app.sim.Duration())
	if err != nil {
		return err
	}
	app.sim.Seek(t, true)
	app.sim.SetAutoHide()
	return nil
}

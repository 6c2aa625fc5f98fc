package app

import (
	"errors"

	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/player"
)

// RunScript feeds events through the same path as the interactive loop,
// without a backend, and returns the resulting player state. A quit key
// stops the script early. Pending captures finish before it returns.
func (app *Application) RunScript(events []key.Event) (player.State, error) {
	for i, ev := range events {
		if err := app.HandleKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Debug("script quit after %d of %d keys", i+1, len(events))
				break
			}
			return app.sim.State(), err
		}
	}
	app.capture.Wait()
	return app.sim.State(), nil
}

// RunScriptString parses a whitespace-separated key script such as
// "<Space> <Right> 5 Ctrl+X" and runs it.
func (app *Application) RunScriptString(script string) (player.State, error) {
	events, err := key.ParseScript(script)
	if err != nil {
		return app.sim.State(), err
	}
	return app.RunScript(events)
}

package app

import (
	"strings"

	"github.com/dshills/reelkeys/internal/config"
	"github.com/dshills/reelkeys/internal/config/watcher"
	"github.com/dshills/reelkeys/internal/logging"
)

// onConfigChange is the watcher handler.
func (app *Application) onConfigChange(ev watcher.Event) {
	if _, err := app.Reload(); err != nil {
		app.logger.WithField("op", ev.Op.String()).Warn("config reload failed: %v", err)
	}
}

// Reload reads the configuration again and applies what can change at
// runtime. It returns the changed setting paths. On error the running
// configuration is kept.
func (app *Application) Reload() ([]string, error) {
	next, err := app.loadConfig()
	if err != nil {
		return nil, err
	}

	app.mu.Lock()
	prev := app.config
	app.config = next
	app.mu.Unlock()

	changed := prev.Diff(next)
	if len(changed) == 0 {
		return nil, nil
	}

	var restart []string
	for _, path := range changed {
		switch path {
		case config.PathHotkey, config.PathLive:
			// handled below
		case config.PathLogLevel:
			app.logger.SetLevel(logging.ParseLevel(next.Logging.Level))
		default:
			restart = append(restart, path)
		}
	}

	app.sim.SetOptions(playerOptions(next))
	if err := app.hotkeys.SetEnabled(next.Player.Hotkey); err != nil {
		return changed, err
	}

	app.logger.Info("config reloaded: %s", strings.Join(changed, ", "))
	if len(restart) > 0 {
		app.logger.Warn("restart required for: %s", strings.Join(restart, ", "))
	}
	app.sim.Notice("Config reloaded")
	if b := app.currentBackend(); b != nil {
		_ = b.Interrupt(redrawSignal{})
	}
	return changed, nil
}

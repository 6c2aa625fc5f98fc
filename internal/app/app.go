// Package app wires the hotkey engine to a simulated player, a terminal
// backend and the configuration system, and runs the demo event loop.
package app

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/reelkeys/internal/backend"
	"github.com/dshills/reelkeys/internal/capture"
	"github.com/dshills/reelkeys/internal/config"
	"github.com/dshills/reelkeys/internal/config/watcher"
	"github.com/dshills/reelkeys/internal/hotkey"
	"github.com/dshills/reelkeys/internal/input/listener"
	"github.com/dshills/reelkeys/internal/logging"
	"github.com/dshills/reelkeys/internal/player"
	"github.com/dshills/reelkeys/internal/plugin/lua"
)

// Options configures the application. Non-zero fields override the
// loaded configuration, including after a reload.
type Options struct {
	// ConfigPath is the TOML or YAML configuration file.
	ConfigPath string

	// Watch reloads ConfigPath when it changes.
	Watch bool

	// LogLevel overrides logging.level.
	LogLevel string

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// Live forces player.live on.
	Live bool

	// Duration overrides player.duration.
	Duration float64

	// OutDir overrides capture.dir.
	OutDir string

	// ConfigOptions are passed to every config.Load call.
	ConfigOptions []config.Option
}

// Application owns the player, the engine and their supporting services.
type Application struct {
	mu      sync.Mutex
	opts    Options
	config  *config.Config
	backend backend.Backend

	logger   *logging.Logger
	sim      *player.Sim
	stream   *listener.Stream
	hotkeys  *hotkey.Hotkeys
	capture  *capture.Service
	observer *lua.Observer
	watcher  *watcher.Watcher
	prompt   *Prompt
	status   *statusLine

	running   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
	lastTick  time.Time
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:   opts,
		done:   make(chan struct{}),
		prompt: NewPrompt(),
		status: newStatusLine(),
	}
	if err := app.bootstrap(); err != nil {
		app.Shutdown()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := app.loadConfig()
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logger
	app.logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Output: app.opts.LogOutput,
		Prefix: "reelkeys",
	})

	// 3. Player
	app.sim = player.NewSim(player.SimConfig{
		Options:  playerOptions(cfg),
		Duration: cfg.Player.Duration,
		Volume:   cfg.Player.Volume,
		Width:    640,
		Height:   360,
		OnNotice: app.status.notice,
	})

	// 4. Input stream and capture
	app.stream = listener.NewStream()
	app.capture = capture.New(app.sim, capture.DirDownloader{Dir: cfg.Capture.Dir}, app.logger)

	// 5. Observer script
	hotkeyOpts := []hotkey.Option{
		hotkey.WithLogger(app.logger),
		hotkey.WithActiveElement(app.prompt),
		hotkey.WithCapturer(app.capture),
		hotkey.WithObserver(app.status.action),
	}
	if cfg.Plugin.Script != "" {
		obs, err := lua.NewObserver(app.sim, cfg.Plugin.Script, app.logger)
		if err != nil {
			return &InitError{Component: "plugin", Err: err}
		}
		app.observer = obs
		hotkeyOpts = append(hotkeyOpts, hotkey.WithObserver(obs.Observe()))
	}

	// 6. Hotkey engine
	app.hotkeys = hotkey.New(app.sim, app.stream, hotkeyOpts...)

	// 7. Config watcher. A missing directory only disables reloading.
	if app.opts.Watch && app.opts.ConfigPath != "" {
		w, err := watcher.New(app.opts.ConfigPath, app.onConfigChange, watcher.WithLogger(app.logger))
		if err != nil {
			app.logger.Warn("config watch disabled: %v", err)
		} else {
			app.watcher = w
		}
	}

	app.logger.WithFields(map[string]any{
		"hotkey": cfg.Player.Hotkey,
		"live":   cfg.Player.Live,
		"config": cfg.Source,
	}).Debug("application started")
	return nil
}

// loadConfig loads the configuration and applies the option overrides.
func (app *Application) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(app.opts.ConfigPath, app.opts.ConfigOptions...)
	if err != nil {
		return nil, err
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.Live {
		cfg.Player.Live = true
	}
	if app.opts.Duration > 0 {
		cfg.Player.Duration = app.opts.Duration
	}
	if app.opts.OutDir != "" {
		cfg.Capture.Dir = app.opts.OutDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func playerOptions(cfg *config.Config) player.Options {
	return player.Options{Hotkey: cfg.Player.Hotkey, Live: cfg.Player.Live}
}

// Shutdown releases every component. It is safe to call more than once and
// wakes a running event loop.
func (app *Application) Shutdown() {
	app.closeOnce.Do(func() {
		close(app.done)

		if b := app.currentBackend(); b != nil {
			_ = b.Interrupt(shutdownSignal{})
		}
		if app.watcher != nil {
			_ = app.watcher.Close()
		}
		if app.hotkeys != nil {
			app.hotkeys.Destroy()
		}
		if app.capture != nil {
			app.capture.Wait()
		}
		if app.observer != nil {
			_ = app.observer.Close()
		}
	})
}

// IsRunning reports whether the event loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.config
}

// Player returns the simulated player.
func (app *Application) Player() *player.Sim {
	return app.sim
}

// Hotkeys returns the hotkey engine.
func (app *Application) Hotkeys() *hotkey.Hotkeys {
	return app.hotkeys
}

// Stream returns the keyboard input stream.
func (app *Application) Stream() *listener.Stream {
	return app.stream
}

// Prompt returns the goto prompt.
func (app *Application) Prompt() *Prompt {
	return app.prompt
}

// Capture returns the screenshot service.
func (app *Application) Capture() *capture.Service {
	return app.capture
}

// Observer returns the script observer (may be nil).
func (app *Application) Observer() *lua.Observer {
	return app.observer
}

func (app *Application) currentBackend() backend.Backend {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.backend
}

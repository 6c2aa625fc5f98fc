package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/dshills/reelkeys/internal/config/loader"
	"github.com/dshills/reelkeys/internal/logging"
)

// Setting paths.
const (
	PathHotkey     = "player.hotkey"
	PathLive       = "player.live"
	PathVolume     = "player.volume"
	PathDuration   = "player.duration"
	PathCaptureDir = "capture.dir"
	PathLogLevel   = "logging.level"
	PathScript     = "plugin.script"
)

// PlayerConfig holds the player options read by the hotkey engine and the
// simulated media.
type PlayerConfig struct {
	Hotkey   bool
	Live     bool
	Volume   float64
	Duration float64
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir string
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string
}

// PluginConfig holds the optional observer script.
type PluginConfig struct {
	Script string
}

// Config is the merged application configuration.
type Config struct {
	Player  PlayerConfig
	Capture CaptureConfig
	Logging LoggingConfig
	Plugin  PluginConfig

	// Source is the file the configuration was read from, if any.
	Source string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			Hotkey:   true,
			Volume:   0.7,
			Duration: 600,
		},
		Capture: CaptureConfig{Dir: "."},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Map returns the configuration as a nested settings map.
func (c *Config) Map() map[string]any {
	m := make(map[string]any)
	loader.SetByPath(m, PathHotkey, c.Player.Hotkey)
	loader.SetByPath(m, PathLive, c.Player.Live)
	loader.SetByPath(m, PathVolume, c.Player.Volume)
	loader.SetByPath(m, PathDuration, c.Player.Duration)
	loader.SetByPath(m, PathCaptureDir, c.Capture.Dir)
	loader.SetByPath(m, PathLogLevel, c.Logging.Level)
	loader.SetByPath(m, PathScript, c.Plugin.Script)
	return m
}

// Option configures Load.
type Option func(*options)

type options struct {
	fs        loader.FileSystem
	envPrefix string
	env       bool
}

// WithFS reads config files from fs instead of the OS.
func WithFS(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutEnv skips the environment layer.
func WithoutEnv() Option {
	return func(o *options) {
		o.env = false
	}
}

// Load builds the configuration from defaults, the file at path (skipped
// when path is empty or the file does not exist) and the environment.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
		env:       true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := Default().Map()
	source := ""

	if path != "" {
		fl, err := loader.ForPath(o.fs, path)
		if err != nil {
			return nil, err
		}
		file, err := fl.Load()
		if err != nil {
			return nil, err
		}
		if file != nil {
			merged = loader.DeepMerge(merged, file)
			source = path
		}
	}

	if o.env {
		env, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, env)
	}

	c, err := FromMap(merged)
	if err != nil {
		return nil, err
	}
	c.Source = source
	return c, nil
}

// FromMap decodes and validates a merged settings map. Missing settings keep
// their defaults.
func FromMap(m map[string]any) (*Config, error) {
	c := Default()
	d := decoder{data: m}

	d.boolAt(PathHotkey, &c.Player.Hotkey)
	d.boolAt(PathLive, &c.Player.Live)
	d.floatAt(PathVolume, &c.Player.Volume)
	d.floatAt(PathDuration, &c.Player.Duration)
	d.stringAt(PathCaptureDir, &c.Capture.Dir)
	d.stringAt(PathLogLevel, &c.Logging.Level)
	d.stringAt(PathScript, &c.Plugin.Script)

	if err := errors.Join(d.errs...); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if math.IsNaN(c.Player.Volume) || c.Player.Volume < 0 || c.Player.Volume > 1 {
		errs = append(errs, &ValidationError{Path: PathVolume, Value: c.Player.Volume, Message: "must be between 0 and 1"})
	}
	if math.IsNaN(c.Player.Duration) || c.Player.Duration < 0 {
		errs = append(errs, &ValidationError{Path: PathDuration, Value: c.Player.Duration, Message: "must not be negative"})
	}
	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, &ValidationError{Path: PathLogLevel, Value: c.Logging.Level, Message: "must be debug, info, warn or error"})
	}
	return errors.Join(errs...)
}

// Diff returns the setting paths whose values differ between c and other.
func (c *Config) Diff(other *Config) []string {
	var changed []string
	a, b := c.Map(), other.Map()
	for _, path := range []string{PathHotkey, PathLive, PathVolume, PathDuration, PathCaptureDir, PathLogLevel, PathScript} {
		va, _ := loader.GetByPath(a, path)
		vb, _ := loader.GetByPath(b, path)
		if va != vb {
			changed = append(changed, path)
		}
	}
	return changed
}

// decoder reads typed values from a settings map, collecting type errors.
type decoder struct {
	data map[string]any
	errs []error
}

func (d *decoder) lookup(path string) (any, bool) {
	v, ok := loader.GetByPath(d.data, path)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (d *decoder) mismatch(path, expected string, v any) {
	d.errs = append(d.errs, &TypeError{Path: path, Expected: expected, Actual: fmt.Sprintf("%T", v)})
}

func (d *decoder) boolAt(path string, dst *bool) {
	v, ok := d.lookup(path)
	if !ok {
		return
	}
	switch t := v.(type) {
	case bool:
		*dst = t
	case int64:
		if t != 0 && t != 1 {
			d.mismatch(path, "boolean", v)
			return
		}
		*dst = t == 1
	default:
		d.mismatch(path, "boolean", v)
	}
}

func (d *decoder) floatAt(path string, dst *float64) {
	v, ok := d.lookup(path)
	if !ok {
		return
	}
	switch t := v.(type) {
	case float64:
		*dst = t
	case int64:
		*dst = float64(t)
	case int:
		*dst = float64(t)
	default:
		d.mismatch(path, "number", v)
	}
}

func (d *decoder) stringAt(path string, dst *string) {
	v, ok := d.lookup(path)
	if !ok {
		return
	}
	s, ok := v.(string)
	if !ok {
		d.mismatch(path, "string", v)
		return
	}
	*dst = s
}

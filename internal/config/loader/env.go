package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of environment variables read by NewEnvLoader.
const DefaultEnvPrefix = "REELKEYS_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // e.g. "REELKEYS_"
	mapping map[string]string // env var -> config path
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
	}
}

// defaultEnvMapping returns the short aliases for common settings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL":   "logging.level",
		prefix + "HOTKEY":      "player.hotkey",
		prefix + "LIVE":        "player.live",
		prefix + "CAPTURE_DIR": "capture.dir",
		prefix + "SCRIPT":      "plugin.script",
	}
}

// Load reads environment variables and returns a configuration map.
// Empty values are kept as empty strings.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, path := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			SetByPath(config, path, parseValue(val))
		}
	}

	// Unmapped variables follow PREFIX_SECTION_SETTING_NAME.
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}
		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}
		path := l.envToPath(name)
		if path == "" {
			continue
		}
		SetByPath(config, path, parseValue(value))
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// envToPath converts REELKEYS_CAPTURE_OUT_DIR to capture.outDir. Variables
// without a setting part map to "".
func (l *EnvLoader) envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}

	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if part != "" {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return strings.ToLower(parts[0]) + "." + setting
}

// parseValue converts an environment string into a bool, integer or float
// where it parses as one.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// Package config loads reelkeys settings.
//
// Settings are assembled from layers in increasing precedence: built-in
// defaults, an optional TOML or YAML file, and REELKEYS_* environment
// variables. The merged map is decoded into a typed Config and validated.
//
//	[player]
//	hotkey = true
//	live = false
//	volume = 0.7
//	duration = 600
//
//	[capture]
//	dir = "screenshots"
//
//	[logging]
//	level = "info"
//
//	[plugin]
//	script = "observer.lua"
package config

// Package loader reads configuration sources into nested maps.
//
// Files are parsed by format (TOML or YAML, chosen by extension) and
// environment variables are mapped onto dotted setting paths. The caller
// merges the resulting maps in precedence order with DeepMerge.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for a config file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist.
	Load() (map[string]any, error)
}

// FileLoader is the interface for loaders that read from files.
type FileLoader interface {
	Loader
	// LoadFrom reads configuration from a specific path.
	LoadFrom(path string) (map[string]any, error)
	// LoadFromReader reads configuration from a reader.
	LoadFromReader(r io.Reader) (map[string]any, error)
}

// FileSystem is the subset of file operations the loaders need.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}

// Format identifies a config file syntax.
type Format int

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf returns the format implied by the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// ForPath returns a loader for path based on its extension.
func ForPath(fsys FileSystem, path string) (FileLoader, error) {
	if fsys == nil {
		fsys = DefaultFS()
	}
	switch FormatOf(path) {
	case FormatTOML:
		return NewTOMLLoaderWithFS(fsys, path), nil
	case FormatYAML:
		return NewYAMLLoaderWithFS(fsys, path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// readFile reads path, mapping a missing file to nil data and no error.
func readFile(fsys FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

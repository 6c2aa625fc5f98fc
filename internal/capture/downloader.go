package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Downloader delivers an encoded capture to the user.
type Downloader interface {
	Download(name string, data []byte) error
}

// DownloaderFunc adapts a function to Downloader.
type DownloaderFunc func(name string, data []byte) error

// Download implements Downloader.
func (f DownloaderFunc) Download(name string, data []byte) error {
	return f(name, data)
}

// DirDownloader writes captures into a directory, creating it on first use.
type DirDownloader struct {
	Dir string
}

// Download writes data to Dir/name. The file is written under a temporary
// name and renamed so readers never see a partial image.
func (d DirDownloader) Download(name string, data []byte) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create capture dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".capture-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write capture: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close capture: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename capture: %w", err)
	}
	return nil
}

package capture

import "errors"

var (
	// ErrNoFrame is returned when the video has no decodable frame.
	ErrNoFrame = errors.New("capture: no video frame")
	// ErrInvalidName is returned when a downloader is given an unusable file name.
	ErrInvalidName = errors.New("capture: invalid file name")
)

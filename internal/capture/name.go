package capture

import (
	"fmt"
	"math"
)

// Timestamp formats a playback position as HH-MM-SS. Fractions are
// dropped; negative and non-finite positions format as zero.
func Timestamp(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	s := int64(math.Floor(seconds))
	return fmt.Sprintf("%02d-%02d-%02d", s/3600, s%3600/60, s%60)
}

// Filename returns the download name for a capture taken at seconds.
func Filename(seconds float64) string {
	return "screenshot_" + Timestamp(seconds) + ".png"
}

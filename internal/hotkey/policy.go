package hotkey

import (
	"math"

	"github.com/dshills/reelkeys/internal/player"
)

// Playback policy constants.
const (
	MinRate    = 0.25
	MaxRate    = 2.0
	NormalRate = 1.0

	// SpeedStep is the rate change for one speed key press.
	SpeedStep = 0.05
	// SeekStep is the distance in seconds of one relative seek.
	SeekStep = 5.0
	// VolumeStep is the volume change for one arrow press.
	VolumeStep = 0.1
	// PercentStep is the share of the duration one digit stands for.
	PercentStep = 10
)

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NextRate applies delta to rate, clamps the result to [MinRate, MaxRate]
// and rounds it to two decimals. Pushing past a bound leaves the rate at
// that bound.
func NextRate(rate, delta float64) float64 {
	return round2(math.Max(MinRate, math.Min(MaxRate, rate+delta)))
}

// PercentTime maps percent of duration to a position in seconds, clamped
// to [0, duration]. ok is false when the duration is not known.
func PercentTime(duration, percent float64) (t float64, ok bool) {
	if !player.KnownDuration(duration) {
		return 0, false
	}
	t = duration * percent / 100
	return math.Max(0, math.Min(duration, t)), true
}

// NextVolume applies delta to volume and clamps the result to [0, 1].
func NextVolume(volume, delta float64) float64 {
	return math.Max(0, math.Min(1, volume+delta))
}

// RelativeTarget returns current+delta, never below zero. There is no upper
// bound; the host clamps positions past the end.
func RelativeTarget(current, delta float64) float64 {
	return math.Max(0, current+delta)
}

// backwardAction is the letter-key rewind: a plain step back, or an
// absolute seek to the start when less than one step has played.
func backwardAction(current float64) Action {
	if current < SeekStep {
		return SeekAbsolute(0)
	}
	return SeekRelative(-SeekStep)
}

// forwardAction is the letter-key fast forward. When a step would reach or
// pass the end it lands one second before the end instead. Without a known
// duration it does nothing.
func forwardAction(current, duration float64) Action {
	if !player.KnownDuration(duration) {
		return None
	}
	if current+SeekStep >= duration {
		return SeekAbsolute(math.Max(0, duration-1))
	}
	return SeekRelative(SeekStep)
}

package hotkey

import (
	"math"
	"testing"
)

func TestNextRateClampsAndRounds(t *testing.T) {
	tests := []struct {
		rate, delta float64
		want        float64
	}{
		{1.0, 0.05, 1.05},
		{1.0, -0.05, 0.95},
		{1.97, 0.05, 2.0},
		{2.0, 0.05, 2.0},
		{0.27, -0.05, 0.25},
		{0.25, -0.05, 0.25},
		{1.1, 0.05, 1.15},
		{5, 0, 2.0},
		{0.123, 0, 0.25},
	}

	for _, tt := range tests {
		if got := NextRate(tt.rate, tt.delta); got != tt.want {
			t.Errorf("NextRate(%v, %v) = %v, want %v", tt.rate, tt.delta, got, tt.want)
		}
	}
}

func TestNextRateIdempotentAtBounds(t *testing.T) {
	rate := MaxRate
	for i := 0; i < 5; i++ {
		rate = NextRate(rate, SpeedStep)
	}
	if rate != MaxRate {
		t.Errorf("repeated increments at max = %v, want %v", rate, MaxRate)
	}

	rate = MinRate
	for i := 0; i < 5; i++ {
		rate = NextRate(rate, -SpeedStep)
	}
	if rate != MinRate {
		t.Errorf("repeated decrements at min = %v, want %v", rate, MinRate)
	}
}

func TestNextRateAlwaysInRange(t *testing.T) {
	for r := 0.0; r <= 3.0; r += 0.013 {
		for _, d := range []float64{-1, -SpeedStep, 0, SpeedStep, 1} {
			got := NextRate(r, d)
			if got < MinRate || got > MaxRate {
				t.Fatalf("NextRate(%v, %v) = %v out of range", r, d, got)
			}
			if got != math.Round(got*100)/100 {
				t.Fatalf("NextRate(%v, %v) = %v not rounded", r, d, got)
			}
		}
	}
}

func TestPercentTime(t *testing.T) {
	for p := 0; p <= 100; p += PercentStep {
		got, ok := PercentTime(200, float64(p))
		if !ok {
			t.Fatalf("PercentTime(200, %d) not ok", p)
		}
		if want := 200 * float64(p) / 100; got != want {
			t.Errorf("PercentTime(200, %d) = %v, want %v", p, got, want)
		}
		if got < 0 || got > 200 {
			t.Errorf("PercentTime(200, %d) = %v out of range", p, got)
		}
	}

	if _, ok := PercentTime(0, 50); ok {
		t.Error("PercentTime with unknown duration should not be ok")
	}
	if _, ok := PercentTime(math.NaN(), 50); ok {
		t.Error("PercentTime with NaN duration should not be ok")
	}
}

func TestNextVolume(t *testing.T) {
	tests := []struct {
		volume, delta float64
		want          float64
	}{
		{0.5, VolumeStep, 0.6},
		{0.95, VolumeStep, 1},
		{0.05, -VolumeStep, 0},
		{1, VolumeStep, 1},
	}

	for _, tt := range tests {
		if got := NextVolume(tt.volume, tt.delta); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NextVolume(%v, %v) = %v, want %v", tt.volume, tt.delta, got, tt.want)
		}
	}
}

func TestRelativeTarget(t *testing.T) {
	if got := RelativeTarget(3, -SeekStep); got != 0 {
		t.Errorf("RelativeTarget(3, -5) = %v, want 0", got)
	}
	if got := RelativeTarget(98, SeekStep); got != 103 {
		t.Errorf("RelativeTarget(98, 5) = %v, want 103 (no upper bound)", got)
	}
}

func TestBackwardAction(t *testing.T) {
	if got := backwardAction(3); got != SeekAbsolute(0) {
		t.Errorf("backwardAction(3) = %v, want seek-absolute(0)", got)
	}
	if got := backwardAction(5); got != SeekRelative(-5) {
		t.Errorf("backwardAction(5) = %v, want seek-relative(-5)", got)
	}
}

func TestForwardAction(t *testing.T) {
	tests := []struct {
		current, duration float64
		want              Action
	}{
		{10, 100, SeekRelative(5)},
		{97, 100, SeekAbsolute(99)},
		{95, 100, SeekAbsolute(99)},
		{94.9, 100, SeekRelative(5)},
		{0, 0.5, SeekAbsolute(0)},
		{10, 0, None},
		{10, math.Inf(1), None},
	}

	for _, tt := range tests {
		if got := forwardAction(tt.current, tt.duration); got != tt.want {
			t.Errorf("forwardAction(%v, %v) = %v, want %v", tt.current, tt.duration, got, tt.want)
		}
	}
}

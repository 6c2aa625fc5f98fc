package capture

import (
	"math"
	"testing"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00-00-00"},
		{5.99, "00-00-05"},
		{125.4, "00-02-05"},
		{3599, "00-59-59"},
		{3600, "01-00-00"},
		{45296.7, "12-34-56"},
		{-3, "00-00-00"},
		{math.NaN(), "00-00-00"},
		{math.Inf(1), "00-00-00"},
	}

	for _, tt := range tests {
		if got := Timestamp(tt.seconds); got != tt.want {
			t.Errorf("Timestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(125.4); got != "screenshot_00-02-05.png" {
		t.Errorf("Filename(125.4) = %q, want screenshot_00-02-05.png", got)
	}
}

package hotkey

import (
	"testing"

	"github.com/dshills/reelkeys/internal/player"
)

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{None, "none"},
		{TogglePlayback(), "toggle-playback"},
		{SeekRelative(-5), "seek-relative(-5)"},
		{SeekAbsolute(99), "seek-absolute(99)"},
		{SeekPercent(70), "seek-percent(70%)"},
		{ChangeSpeed(0.05), "change-speed(0.05)"},
		{ResetSpeed(), "reset-speed"},
		{VolumeRelative(-0.1), "volume-relative(-0.1)"},
		{ToggleFullscreen(player.ScopeWeb), "toggle-fullscreen(web)"},
		{TakeScreenshot(), "take-screenshot"},
		{Action{Kind: Kind(200)}, "Kind(200)"},
	}

	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindIsSeek(t *testing.T) {
	seeks := map[Kind]bool{
		ActionSeekRelative: true,
		ActionSeekAbsolute: true,
		ActionSeekPercent:  true,
	}
	for k := ActionNone; k <= ActionTakeScreenshot; k++ {
		if got := k.IsSeek(); got != seeks[k] {
			t.Errorf("%s.IsSeek() = %v, want %v", k, got, seeks[k])
		}
	}
}

package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/reelkeys/internal/input/key"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{"capital implies shift", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), "S"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "<Space>"},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), "7"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl), "<C-x>"},
		{"ctrl letter without mod flag", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModNone), "<C-z>"},
		{"ctrl shift letter", tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl|tcell.ModShift), "<C-S-X>"},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl), "<C-x>"},
		{"ctrl capital rune folds to control key", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModCtrl), "<C-x>"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "<Esc>"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "<CR>"},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "<Left>"},
		{"shift up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), "<S-Up>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			if !ok {
				t.Fatal("convertKey() not ok")
			}
			want := key.MustParse(tt.want)
			if !got.Equals(want) {
				t.Errorf("convertKey() = %s, want %s", got, want)
			}
		})
	}
}

func TestConvertKeyCodes(t *testing.T) {
	ev, _ := convertKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if ev.Code() != key.CodeLeft {
		t.Errorf("Code() = %d, want %d", ev.Code(), key.CodeLeft)
	}
	ev, _ = convertKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !ev.IsEscape() {
		t.Error("escape not recognized")
	}
}

func TestConvertMod(t *testing.T) {
	got := convertMod(tcell.ModShift | tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta)
	if !got.HasShift() || !got.HasCtrl() || !got.HasAlt() || !got.HasMeta() {
		t.Errorf("convertMod(all) = %v", got)
	}
	if convertMod(tcell.ModNone) != key.ModNone {
		t.Error("convertMod(none) != ModNone")
	}
}

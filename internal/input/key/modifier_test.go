package key

import "testing"

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod   Modifier
		check Modifier
		want  bool
	}{
		{ModNone, ModCtrl, false},
		{ModNone, ModNone, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModShift, ModShift, true},
		{ModCtrl, ModCtrl | ModShift, false},
		{ModCtrl | ModAlt, ModShift, false},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.want {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.want)
		}
	}
}

func TestFromFlags(t *testing.T) {
	tests := []struct {
		ctrl, shift, alt, meta bool
		want                   Modifier
	}{
		{false, false, false, false, ModNone},
		{true, false, false, false, ModCtrl},
		{true, true, false, false, ModCtrl | ModShift},
		{false, false, true, true, ModAlt | ModMeta},
	}

	for _, tt := range tests {
		if got := FromFlags(tt.ctrl, tt.shift, tt.alt, tt.meta); got != tt.want {
			t.Errorf("FromFlags(%v, %v, %v, %v) = %v, want %v", tt.ctrl, tt.shift, tt.alt, tt.meta, got, tt.want)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Control"},
		{ModShift | ModCtrl, "Control+Shift"},
		{ModMeta | ModAlt, "Alt+Meta"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestParseModifier(t *testing.T) {
	tests := []struct {
		name   string
		want   Modifier
		wantOK bool
	}{
		{"Ctrl", ModCtrl, true},
		{"control", ModCtrl, true},
		{"SHIFT", ModShift, true},
		{"Alt", ModAlt, true},
		{"meta", ModMeta, true},
		{"cmd", ModNone, false},
		{"", ModNone, false},
	}

	for _, tt := range tests {
		got, ok := ParseModifier(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseModifier(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

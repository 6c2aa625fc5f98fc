// Package key provides the key event model consumed by the hotkey engine.
//
// An Event carries what a host input stream reports for a single keydown:
//
//   - Key: a special key (Escape, Enter, arrows, ...) or KeyRune for characters
//   - Rune: the character for KeyRune events
//   - Modifiers: Ctrl, Shift, Alt and Meta held at the time of the press
//   - Location: whether the key sits on the main keyboard or the numeric keypad
//
// Rules match events either by numeric code (Code) or by the lower-cased key
// label (Label), mirroring the two ways browsers and terminals report keys.
//
// # Key Specifications
//
// Events can be written as specification strings, used by the headless
// script mode and in tests:
//
//   - Simple keys: "a", "A", "7", "Enter", "Escape", "Space"
//   - With modifiers: "Ctrl+X", "Ctrl+Shift+X", "Shift+S"
//   - Vim-style: "<C-x>", "<C-S-x>", "<CR>", "<Esc>"
//   - Keypad: "KPEnter", "KP7"
package key

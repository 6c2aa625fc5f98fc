// Package hotkey turns keydown events into media player commands.
//
// The engine is split into small pieces:
//
//   - Filter decides whether an event may be interpreted at all: the player
//     must own focus and the active element must not be a text field.
//   - Dispatcher walks an ordered rule table and resolves the first match
//     into an Action, then executes it against the player.
//   - The policy functions (NextRate, PercentTime, NextVolume, ...) hold the
//     numeric clamping and mapping rules.
//   - EscapeWatcher leaves in-page fullscreen on Escape, independent of focus.
//   - Hotkeys ties the pieces to a host input stream and owns the two
//     listener registrations.
//
// # Rule order
//
// Rules are evaluated top to bottom and the first match wins:
//
//  1. Ctrl+X           faster
//  2. Ctrl+Z           slower
//  3. Ctrl+Shift+any   normal speed
//  4. Shift+S          screenshot
//  5. by key code      Space, arrows, keypad Enter
//  6. by key label     a d f w m + = - 0-9
//
// A matched rule always prevents the host's default handling of the key,
// even when a guard (live stream, unknown duration) turns the action into a
// no-op. Unmatched keys are left to the host.
package hotkey

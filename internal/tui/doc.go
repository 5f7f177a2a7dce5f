// Package tui provides the Terminal User Interface for chroma.
//
// The interface is built on the Bubble Tea framework and shows the current
// five-colour palette as swatches, the active harmony scheme, and the
// harmony the palette resembles.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model: holds the palette state, UI mode and transient status
//   - View: renders swatches, header, status bar and overlays
//   - Controller: turns key presses into palette operations
//
// # Core Components
//
// Model (internal/tui/model/):
//   - Owns the palette.State snapshot and the palette.Generator
//   - Exposes the palette operations used by key handlers
//   - Buffers activity log lines from pkg/logging
//
// View (internal/tui/view/):
//   - Paints each swatch with its own colour and legible text colour
//   - Renders help and activity-log overlays
//
// Controller (internal/tui/controller/):
//   - Dispatches Bubble Tea messages
//   - Handles global keys and the hex entry field
//   - Manages the Bubble Tea program lifecycle
//
// # Keyboard Shortcuts
//
//   - space/g: Regenerate unlocked swatches
//   - tab/shift+tab: Next/previous harmony scheme (regenerates)
//   - ←/→ or 1-5: Focus a swatch
//   - l: Lock or unlock the focused swatch
//   - e/enter: Edit the focused swatch's hex value (locks it)
//   - c: Copy the focused hex value
//   - y: Copy all five hex values
//   - h/?: Toggle help
//   - L: Toggle activity log
//   - D: Toggle dark mode
//   - z: Toggle debug logging in the activity log
//   - q/ctrl+c: Quit
package tui

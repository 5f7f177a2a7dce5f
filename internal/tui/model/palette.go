package model

import (
	"strings"

	"chroma/internal/color"
	"chroma/internal/harmony"
	"chroma/internal/palette"
	"chroma/pkg/logging"
)

const paletteSubsystem = "Palette"

// Regenerate replaces every unlocked swatch.
func (m *Model) Regenerate() {
	m.Palette = m.Palette.Regenerate(m.Generator)
	logging.Debug(paletteSubsystem, "Regenerated %s palette (%d locked): %v",
		m.Palette.Scheme, m.Palette.LockedCount(), m.Palette.Hexes())
}

// SetScheme switches the harmony scheme and regenerates.
func (m *Model) SetScheme(scheme harmony.Scheme) {
	m.Palette = m.Palette.WithScheme(scheme, m.Generator)
	logging.Info(paletteSubsystem, "Scheme changed to %s", scheme)
}

// NextScheme advances to the next harmony scheme.
func (m *Model) NextScheme() {
	m.SetScheme(m.Palette.Scheme.Next())
}

// PrevScheme steps back to the previous harmony scheme.
func (m *Model) PrevScheme() {
	m.SetScheme(m.Palette.Scheme.Prev())
}

// FocusSlot focuses swatch i. Out-of-range indices are ignored.
func (m *Model) FocusSlot(i int) {
	if i >= 0 && i < palette.Size {
		m.Focused = i
	}
}

// MoveFocus moves the focus by delta, wrapping around the palette.
func (m *Model) MoveFocus(delta int) {
	m.Focused = ((m.Focused+delta)%palette.Size + palette.Size) % palette.Size
}

// FocusedSlot returns the swatch under the cursor.
func (m *Model) FocusedSlot() palette.Slot {
	return m.Palette.Slots[m.Focused]
}

// ToggleFocusedLock locks or unlocks the focused swatch and reports the
// new state.
func (m *Model) ToggleFocusedLock() bool {
	m.Palette = m.Palette.ToggleLock(m.Focused)
	locked := m.FocusedSlot().Locked
	logging.Debug(paletteSubsystem, "Slot %d locked=%v", m.Focused+1, locked)
	return locked
}

// SetFocusedHex overrides the focused swatch with hex and locks it. It
// reports whether hex parsed; a malformed value paints the swatch black.
func (m *Model) SetFocusedHex(hex string) bool {
	hex = strings.TrimSpace(hex)
	if hex != "" && !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	_, ok := color.ParseHex(hex)
	m.Palette = m.Palette.SetHex(m.Focused, hex)
	if ok {
		logging.Info(paletteSubsystem, "Slot %d set to %s", m.Focused+1, m.FocusedSlot().Hex())
	} else {
		logging.Warn(paletteSubsystem, "Slot %d: invalid hex %q, using %s", m.Focused+1, hex, color.BlackHex)
	}
	return ok
}

// Harmony classifies the current palette.
func (m *Model) Harmony() harmony.Label {
	return m.Palette.Harmony()
}

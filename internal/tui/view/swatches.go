package view

import (
	"fmt"

	"chroma/internal/color"
	"chroma/internal/harmony"
	"chroma/internal/palette"
	"chroma/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title, the active scheme and the detected
// harmony badge.
func renderHeader(m *model.Model, width int) string {
	title := TitleStyle.Render(SafeIcon(IconPalette) + "chroma")
	scheme := SchemeStyle.Render("Scheme: " + m.Palette.Scheme.Title())
	left := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", scheme)

	badge := renderHarmonyBadge(m.Harmony())
	gap := width - lipgloss.Width(left) - lipgloss.Width(badge)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, badge)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, lipgloss.NewStyle().Width(gap).Render(""), badge)
}

// renderHarmonyBadge renders "Detected: <label>".
func renderHarmonyBadge(label harmony.Label) string {
	var bg lipgloss.AdaptiveColor
	switch label {
	case harmony.LabelMonochromatic:
		bg = color.Info
	case harmony.LabelAnalogous:
		bg = color.Success
	default:
		bg = color.Warning
	}
	return BadgeStyle.Background(bg).Render("Detected: " + label.String())
}

// swatchSize returns the inner width and height of one swatch.
func swatchSize(contentWidth, availableHeight int) (int, int) {
	frame := FocusedBorderStyle.GetHorizontalFrameSize()
	w := contentWidth/palette.Size - frame
	if w < minSwatchWidth {
		w = minSwatchWidth
	}
	h := availableHeight - FocusedBorderStyle.GetVerticalFrameSize()
	if h < minSwatchHeight {
		h = minSwatchHeight
	} else if h > maxSwatchHeight {
		h = maxSwatchHeight
	}
	return w, h
}

// renderSwatches renders the five swatches side by side.
func renderSwatches(m *model.Model, contentWidth, availableHeight int) string {
	w, h := swatchSize(contentWidth, availableHeight)

	cells := make([]string, palette.Size)
	for i, slot := range m.Palette.Slots {
		cells[i] = renderSwatch(slot, i, i == m.Focused, w, h)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderSwatch(slot palette.Slot, index int, focused bool, width, height int) string {
	icon := IconUnlocked
	if slot.Locked {
		icon = IconLocked
	}

	lines := []string{
		Truncate(SafeIcon(icon)+fmt.Sprintf("%d", index+1), width),
		"",
		Truncate(slot.Hex(), width),
		Truncate(slot.Color.String(), width),
	}

	body := color.Swatch(slot.Color).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	border := UnfocusedBorderStyle
	if focused {
		border = FocusedBorderStyle
	}
	return border.Render(body)
}

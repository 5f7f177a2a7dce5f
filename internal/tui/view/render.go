package view

import (
	"chroma/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return StatusStyle.Render(m.QuittingMessage)
	}

	if m.Width == 0 || m.Height == 0 {
		return StatusStyle.Render("Initializing... (waiting for window size)")
	}

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m, m.Width, m.Height)
	default:
		return renderDashboard(m)
	}
}

func renderDashboard(m *model.Model) string {
	contentWidth := m.Width - AppStyle.GetHorizontalFrameSize()

	headerView := renderHeader(m, contentWidth)
	statusBar := renderStatusBar(m, m.Width)

	shortHelp := m.Help
	shortHelp.Width = contentWidth
	footer := HintStyle.Render(shortHelp.ShortHelpView(m.Keys.ShortHelp()))
	if m.CurrentAppMode == model.ModeHexInput {
		footer = lipgloss.JoinHorizontal(lipgloss.Center,
			InputStyle.Render(m.HexInput.View()),
			HintStyle.Render("enter apply • esc cancel"),
		)
	}

	// Header, blank line, footer and status bar.
	used := lipgloss.Height(headerView) + 1 + lipgloss.Height(footer) + lipgloss.Height(statusBar)
	swatches := renderSwatches(m, contentWidth, m.Height-used)

	body := lipgloss.JoinVertical(lipgloss.Left,
		headerView,
		"",
		swatches,
		footer,
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		AppStyle.Width(m.Width).Render(body),
		statusBar,
	)
}

func renderHelpOverlay(m *model.Model) string {
	titleView := HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	helpView := m.Help.FullHelpView(m.Keys.FullHelp())
	hint := HintStyle.Render("Press h or esc to close")

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, helpView, "", hint)
	box := OverlayStyle.Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

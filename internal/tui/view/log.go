package view

import (
	"strings"

	"chroma/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// LogOverlaySize returns the viewport size that fits the log overlay in a
// width×height terminal.
func LogOverlaySize(width, height int) (int, int) {
	titleHeight := lipgloss.Height(LogPanelTitleStyle.Render(" "))
	w := width - OverlayStyle.GetHorizontalFrameSize()
	h := height - OverlayStyle.GetVerticalFrameSize() - titleHeight
	return max(w, 0), max(h, 0)
}

func renderLogOverlay(m *model.Model, width, height int) string {
	title := LogPanelTitleStyle.Render(SafeIcon(IconScroll) + "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return OverlayStyle.
		Width(max(width-OverlayStyle.GetHorizontalBorderSize(), 0)).
		Height(max(height-OverlayStyle.GetVerticalBorderSize(), 0)).
		Render(content)
}

// PrepareLogContent colours each line by its level marker. The viewport
// handles overflow, so lines are not truncated.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return LogDebugStyle.Render(l)
	default:
		return LogInfoStyle.Render(l)
	}
}

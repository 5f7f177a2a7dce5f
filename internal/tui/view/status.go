package view

import (
	"fmt"

	"chroma/internal/palette"
	"chroma/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *model.Model, width int) string {
	bg := StatusBarDefaultBg

	leftW := int(float64(width) * 0.25)
	rightW := int(float64(width) * 0.30)
	centerW := width - leftW - rightW
	if centerW < 0 {
		centerW = 0
	}

	locked := fmt.Sprintf("%d/%d locked", m.Palette.LockedCount(), palette.Size)
	leftStr := StatusBarTextStyle.Background(bg).Width(leftW).
		Render(Truncate(SafeIcon(IconLocked)+locked, max(leftW-2, 0)))

	rightStr := StatusBarTextStyle.Background(bg).Width(rightW).Align(lipgloss.Right).
		Render(Truncate(m.ColorMode, max(rightW-2, 0)))

	var centerStr string
	if m.StatusBarMessage != "" {
		var msgStyle lipgloss.Style
		var icon string
		switch m.StatusBarMessageType {
		case model.StatusBarSuccess:
			msgStyle = StatusMessageSuccessStyle
			icon = SafeIcon(IconSparkles)
		case model.StatusBarError:
			msgStyle = StatusMessageErrorStyle
			icon = SafeIcon(IconCross)
		case model.StatusBarWarning:
			msgStyle = StatusMessageWarningStyle
			icon = SafeIcon(IconLightbulb)
		default:
			msgStyle = StatusMessageInfoStyle
			icon = SafeIcon(IconInfo)
		}
		centerStr = msgStyle.Background(bg).Width(centerW).Align(lipgloss.Center).
			Render(Truncate(icon+m.StatusBarMessage, max(centerW-2, 0)))
	} else {
		centerStr = lipgloss.NewStyle().Background(bg).Width(centerW).Render("")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftStr, centerStr, rightStr)
}

package view

import (
	"chroma/internal/color"

	"github.com/charmbracelet/lipgloss"
)

// Layout limits for the swatch row.
const (
	minSwatchWidth  = 8
	minSwatchHeight = 5
	maxSwatchHeight = 12
)

var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(color.Primary)

	SchemeStyle = lipgloss.NewStyle().
			Foreground(color.Info)

	BadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1A1A"})

	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(color.Primary)

	UnfocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.HiddenBorder())

	InputStyle = lipgloss.NewStyle().
			Foreground(color.Primary).
			Padding(0, 1)

	HintStyle = lipgloss.NewStyle().
			Foreground(color.Subtle)

	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(color.Primary).
			MarginBottom(1)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color.Border).
			Padding(0, 1)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(color.Primary)

	LogErrorStyle = lipgloss.NewStyle().Foreground(color.Error)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(color.Warning)
	LogDebugStyle = lipgloss.NewStyle().Foreground(color.Subtle)
	LogInfoStyle  = lipgloss.NewStyle()

	StatusStyle = lipgloss.NewStyle().Padding(1, 2)

	StatusBarDefaultBg = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#2A2A3A"}
	StatusBarTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E0E0E0"}).
				Padding(0, 1)

	StatusMessageSuccessStyle = StatusBarTextStyle.Foreground(color.Success)
	StatusMessageErrorStyle   = StatusBarTextStyle.Foreground(color.Error)
	StatusMessageWarningStyle = StatusBarTextStyle.Foreground(color.Warning)
	StatusMessageInfoStyle    = StatusBarTextStyle.Foreground(color.Info)
)

package controller

import (
	"fmt"
	"strings"

	"chroma/internal/tui/model"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

func copyFocusedHex(m *model.Model) tea.Cmd {
	hex := m.FocusedSlot().Hex()
	if err := clipboardWriteAll(hex); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy %s", hex)
		return m.Toast("Copy failed", model.StatusBarError)
	}
	LogInfo(controllerSubsystem, "Copied %s to clipboard", hex)
	return m.Toast(fmt.Sprintf("Color %s copied!", hex), model.StatusBarSuccess)
}

func copyPalette(m *model.Model) tea.Cmd {
	hexes := m.Palette.Hexes()
	if err := clipboardWriteAll(strings.Join(hexes, "\n")); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy palette")
		return m.Toast("Copy palette failed", model.StatusBarError)
	}
	LogInfo(controllerSubsystem, "Copied palette %v to clipboard", hexes)
	return m.Toast("Palette copied!", model.StatusBarSuccess)
}

func copyActivityLog(m *model.Model) tea.Cmd {
	if err := clipboardWriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy logs")
		return m.Toast("Copy logs failed", model.StatusBarError)
	}
	return m.Toast("Logs copied to clipboard", model.StatusBarSuccess)
}

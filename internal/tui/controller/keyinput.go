package controller

import (
	"fmt"

	"chroma/internal/color"
	"chroma/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInputMode handles keys while the hex entry field is focused.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.Type {
	case tea.KeyEsc:
		closeHexInput(m)
		return m, nil

	case tea.KeyEnter:
		value := m.HexInput.Value()
		closeHexInput(m)
		if m.SetFocusedHex(value) {
			return m, m.Toast(fmt.Sprintf("Swatch %d set to %s and locked", m.Focused+1, m.FocusedSlot().Hex()), model.StatusBarSuccess)
		}
		return m, m.Toast(fmt.Sprintf("Invalid hex %q, using %s", value, color.BlackHex), model.StatusBarWarning)
	}

	var cmd tea.Cmd
	m.HexInput, cmd = m.HexInput.Update(keyMsg)
	return m, cmd
}

func closeHexInput(m *model.Model) {
	m.HexInput.Blur()
	m.HexInput.Reset()
	m.CurrentAppMode = model.ModeMainDashboard
}

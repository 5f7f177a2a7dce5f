package controller

import (
	"fmt"

	"chroma/internal/color"
	"chroma/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgGlobal processes key presses outside the hex entry field.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMainDashboard
			return m, nil
		case key.Matches(keyMsg, m.Keys.CopyAll):
			return m, copyActivityLog(m)
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay && key.Matches(keyMsg, m.Keys.Esc) {
		m.CurrentAppMode = model.ModeMainDashboard
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		if m.CurrentAppMode == model.ModeHelpOverlay {
			m.CurrentAppMode = model.ModeMainDashboard
		} else {
			m.CurrentAppMode = model.ModeHelpOverlay
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDark):
		m.DarkMode = !m.DarkMode
		color.Initialize(m.DarkMode)
		m.RefreshColorMode()
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, m.Toast(fmt.Sprintf("Debug mode: %v", m.DebugMode), model.StatusBarInfo)

	case key.Matches(keyMsg, m.Keys.Regenerate):
		m.Regenerate()
		return m, nil

	case key.Matches(keyMsg, m.Keys.NextScheme):
		m.NextScheme()
		return m, m.Toast("Scheme: "+m.Palette.Scheme.Title(), model.StatusBarInfo)

	case key.Matches(keyMsg, m.Keys.PrevScheme):
		m.PrevScheme()
		return m, m.Toast("Scheme: "+m.Palette.Scheme.Title(), model.StatusBarInfo)

	case key.Matches(keyMsg, m.Keys.Left):
		m.MoveFocus(-1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Right):
		m.MoveFocus(1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Lock):
		if m.ToggleFocusedLock() {
			return m, m.Toast(fmt.Sprintf("Swatch %d locked", m.Focused+1), model.StatusBarInfo)
		}
		return m, m.Toast(fmt.Sprintf("Swatch %d unlocked", m.Focused+1), model.StatusBarInfo)

	case key.Matches(keyMsg, m.Keys.Edit):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHexInput
		m.HexInput.SetValue(m.FocusedSlot().Hex())
		m.HexInput.CursorEnd()
		m.HexInput.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.Keys.Copy):
		return m, copyFocusedHex(m)

	case key.Matches(keyMsg, m.Keys.CopyAll):
		return m, copyPalette(m)
	}

	// Digits jump straight to a swatch.
	if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.FocusSlot(int(s[0] - '1'))
	}
	return m, nil
}

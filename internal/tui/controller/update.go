package controller

import (
	"fmt"

	"chroma/internal/tui/model"
	"chroma/internal/tui/view"
	"chroma/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update is the entry point used by AppModel.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch routes every Bubble Tea message to its handler and
// refreshes the log overlay afterwards.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case model.NewLogEntryMsg, tea.MouseMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		if m.CurrentAppMode == model.ModeHexInput {
			return handleKeyMsgInputMode(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()
		return m, nil

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		if m.CurrentAppMode == model.ModeHexInput {
			m.HexInput, cmd = m.HexInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

func refreshLogViewport(m *model.Model) {
	widthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	if !m.ActivityLogDirty && !widthChanged {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if atBottom {
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = m.LogViewport.Width
	m.ActivityLogDirty = false
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye!"
	return m, tea.Quit
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	w, h := view.LogOverlaySize(msg.Width, msg.Height)
	m.LogViewport.Width = w
	m.LogViewport.Height = h

	refreshLogViewport(m)
	return m, nil
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}

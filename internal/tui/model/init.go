package model

import (
	"fmt"
	"time"

	"chroma/internal/config"
	"chroma/internal/palette"
	"chroma/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InitialModel constructs the initial model with a freshly generated
// palette for the configured scheme.
func InitialModel(
	cfg config.ChromaConfig,
	gen *palette.Generator,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) *Model {
	ti := textinput.New()
	ti.Placeholder = "#rrggbb"
	ti.Prompt = "Hex: "
	ti.CharLimit = 7
	ti.Width = 10

	if gen == nil {
		gen = palette.NewSeededGenerator(cfg.Palette.Seed)
	}

	timeout := cfg.UI.StatusTimeout
	if timeout <= 0 {
		timeout = DefaultStatusTimeout
	}

	m := Model{
		CurrentAppMode: ModeMainDashboard,
		DebugMode:      debugMode,
		DarkMode:       cfg.UI.IsDark(),
		Palette:        palette.New(gen, cfg.Scheme()),
		Generator:      gen,
		ActivityLog:    make([]string, 0),
		LogViewport:    viewport.New(0, 0),
		HexInput:       ti,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		StatusTimeout:  timeout,
		LogChannel:     logChannel,
	}
	m.Help.ShowAll = cfg.UI.ShowHelp
	if cfg.UI.ShowHelp {
		m.CurrentAppMode = ModeHelpOverlay
	}
	m.RefreshColorMode()

	return &m
}

// ListenForLogEntriesCmd waits for the next entry on ch.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	logging.Info("TUI", "Generated %s palette: %v", m.Palette.Scheme, m.Palette.Hexes())
	return ListenForLogEntriesCmd(m.LogChannel)
}

// RefreshColorMode updates the colour-profile description shown in the
// status bar.
func (m *Model) RefreshColorMode() {
	m.ColorMode = fmt.Sprintf("%s (Dark: %v)", lipgloss.ColorProfile().String(), m.DarkMode)
}

// SetStatusMessage updates the status bar message and schedules it to
// clear after clearAfter. A newer message cancels the pending clear of an
// older one.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// Toast shows message for the configured status timeout.
func (m *Model) Toast(message string, msgType MessageType) tea.Cmd {
	return m.SetStatusMessage(message, msgType, m.StatusTimeout)
}

// ClearStatusMessage removes the current status bar message.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's
// activity log, keeping at most MaxActivityLogLines.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

package controller

import (
	"chroma/internal/config"
	"chroma/internal/palette"
	"chroma/internal/tui/model"
	"chroma/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the palette TUI.
func NewProgram(
	cfg config.ChromaConfig,
	gen *palette.Generator,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) *tea.Program {
	m := model.InitialModel(cfg, gen, debugMode, logChannel)
	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen())
}

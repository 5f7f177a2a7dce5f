package model

import (
	"time"

	"chroma/internal/palette"
	"chroma/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMainDashboard AppMode = iota
	ModeHexInput
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMainDashboard:
		return "MainDashboard"
	case ModeHexInput:
		return "HexInput"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines  = 1000
	DefaultStatusTimeout = 2 * time.Second
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Regenerate  key.Binding
	NextScheme  key.Binding
	PrevScheme  key.Binding
	Left        key.Binding
	Right       key.Binding
	Lock        key.Binding
	Edit        key.Binding
	Copy        key.Binding
	CopyAll     key.Binding
	Esc         key.Binding
	Quit        key.Binding
	Help        key.Binding
	ToggleDark  key.Binding
	ToggleDebug key.Binding
	ToggleLog   key.Binding
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	QuittingMessage string
	DebugMode       bool
	DarkMode        bool
	ColorMode       string

	// Palette
	Palette   palette.State
	Generator *palette.Generator
	Focused   int

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewportLastWidth int
	LogViewport          viewport.Model
	HexInput             textinput.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}
	StatusTimeout        time.Duration

	// Logging
	LogChannel <-chan logging.LogEntry
}

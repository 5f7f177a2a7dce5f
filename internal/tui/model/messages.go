package model

import "chroma/pkg/logging"

// ClearStatusBarMsg clears the transient status bar message.
type ClearStatusBarMsg struct{}

// NewLogEntryMsg carries one entry from the logging TUI channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

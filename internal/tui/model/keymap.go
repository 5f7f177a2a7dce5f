package model

import "github.com/charmbracelet/bubbles/key"

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Regenerate: key.NewBinding(
			key.WithKeys(" ", "g"),
			key.WithHelp("space/g", "regenerate"),
		),
		NextScheme: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next scheme"),
		),
		PrevScheme: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous scheme"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "focus left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "focus right"),
		),
		Lock: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lock/unlock"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/enter", "edit hex"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy hex"),
		),
		CopyAll: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy palette"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug log"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.NextScheme, k.Lock, k.Edit, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap. Each inner slice is a column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.NextScheme, k.PrevScheme},
		{k.Left, k.Right, k.Lock, k.Edit},
		{k.Copy, k.CopyAll},
		{k.Help, k.ToggleLog, k.ToggleDark, k.ToggleDebug, k.Esc, k.Quit},
	}
}

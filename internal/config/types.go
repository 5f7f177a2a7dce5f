package config

import (
	"time"
)

// ChromaConfig is the top-level configuration structure for chroma.
type ChromaConfig struct {
	Palette PaletteConfig `yaml:"palette"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	MCP     MCPConfig     `yaml:"mcp"`
}

// PaletteConfig controls how palettes are generated.
type PaletteConfig struct {
	Scheme string `yaml:"scheme,omitempty"` // Initial harmony scheme
	Seed   int64  `yaml:"seed,omitempty"`   // Random seed, 0 seeds from the clock
}

// UIConfig controls the interactive terminal UI.
type UIConfig struct {
	DarkMode      *bool         `yaml:"darkMode,omitempty"`
	StatusTimeout time.Duration `yaml:"statusTimeout,omitempty"` // How long toast messages stay visible
	ShowHelp      bool          `yaml:"showHelp,omitempty"`      // Start with the full help visible
}

// IsDark reports the effective dark mode setting.
func (u UIConfig) IsDark() bool {
	return u.DarkMode == nil || *u.DarkMode
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

const (
	// MCPTransportStdio serves MCP over standard input/output.
	MCPTransportStdio = "stdio"
	// MCPTransportSSE serves MCP over HTTP Server-Sent Events.
	MCPTransportSSE = "sse"
)

// MCPConfig defines how the palette tool server is exposed.
type MCPConfig struct {
	Transport string `yaml:"transport,omitempty"`
	Host      string `yaml:"host,omitempty"`
	Port      int    `yaml:"port,omitempty"`
}

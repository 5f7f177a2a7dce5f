package config

import (
	"time"
)

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() ChromaConfig {
	dark := true
	return ChromaConfig{
		Palette: PaletteConfig{
			Scheme: "random",
		},
		UI: UIConfig{
			DarkMode:      &dark,
			StatusTimeout: 2 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		MCP: MCPConfig{
			Transport: MCPTransportStdio,
			Host:      "localhost",
			Port:      8095,
		},
	}
}

package app

import (
	"chroma/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath loads a single config file instead of the layered lookup.
	ConfigPath string

	// Flag overrides; zero values keep the file configuration.
	Scheme string
	Seed   int64

	// Loaded configuration
	ChromaConfig *config.ChromaConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// applyOverrides folds command line flags into the loaded configuration.
func (c *Config) applyOverrides() {
	if c.ChromaConfig == nil {
		return
	}
	if c.Scheme != "" {
		c.ChromaConfig.Palette.Scheme = c.Scheme
	}
	if c.Seed != 0 {
		c.ChromaConfig.Palette.Seed = c.Seed
	}
	if c.Debug {
		c.ChromaConfig.Logging.Level = "debug"
	}
}

package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"chroma/internal/config"
	"chroma/pkg/logging"
)

// Application is the main application structure that bootstraps and runs chroma
type Application struct {
	config   *Config
	services *Services
	out      io.Writer
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Stdout carries palette output; logs go to stderr until the TUI takes over.
	logging.InitForCLI(appLogLevel, os.Stderr)

	var chromaCfg config.ChromaConfig
	var err error

	if cfg.ConfigPath != "" {
		chromaCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load chroma configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load chroma configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		chromaCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load chroma configuration")
			return nil, fmt.Errorf("failed to load chroma configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.ChromaConfig = &chromaCfg
	cfg.applyOverrides()
	if err := cfg.ChromaConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logging.InitForCLI(cfg.ChromaConfig.LogLevel(), os.Stderr)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
		out:      os.Stdout,
	}, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return a.runCLIMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// runCLIMode runs the application in non-interactive CLI mode
func (a *Application) runCLIMode(ctx context.Context) error {
	return runCLIMode(ctx, a.config, a.services, a.out)
}

// runTUIMode runs the application in interactive TUI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}

package app

import (
	"context"
	"io"

	"chroma/internal/cli"
	"chroma/internal/color"
	"chroma/internal/mcpserver"
	"chroma/internal/tui/controller"
	"chroma/pkg/logging"
)

// runCLIMode prints one palette for the configured scheme and returns.
func runCLIMode(ctx context.Context, config *Config, services *Services, out io.Writer) error {
	scheme := config.ChromaConfig.Scheme()
	logging.Debug("CLI", "Running in no-TUI mode with scheme %s", scheme)

	colors := services.Generator.Colors(scheme)
	return cli.NewPrinter(out, cli.OutputFormatTable).Palette(mcpserver.NewPaletteResult(scheme, colors))
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Debug("CLI", "Starting TUI mode...")

	color.Initialize(config.ChromaConfig.UI.IsDark())

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(config.ChromaConfig.LogLevel())
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(*config.ChromaConfig, services.Generator, config.Debug, logChan)

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}

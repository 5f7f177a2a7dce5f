package cmd

import (
	"context"
	"fmt"
	"os"

	"chroma/internal/app"

	"github.com/spf13/cobra"
)

var (
	// configPath loads a single config file instead of the layered lookup.
	configPath string

	// debug enables verbose logging across the application.
	debug bool

	// noTUI prints one palette instead of starting the interactive UI.
	noTUI bool

	rootScheme string
	rootSeed   int64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chroma",
	Short: "Generate harmonious colour palettes in your terminal",
	Long: `chroma generates five-colour palettes under a harmony scheme
(analogous, monochromatic, triadic, complementary, split-complementary or
random). Lock the swatches you like, regenerate the rest, type in your own
hex values and copy the result to the clipboard.

Without a subcommand chroma starts the interactive TUI. Use --no-tui to
print a single palette instead.

Configuration:
  chroma layers ~/.config/chroma/config.yaml, ./.chroma/config.yaml, a
  ./.env file and CHROMA_* environment variables over its defaults.`,
	Args: cobra.NoArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments)
	SilenceUsage: true,
	RunE:         runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(noTUI, debug, configPath)
	cfg.Scheme = rootScheme
	cfg.Seed = rootSeed

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "chroma version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newDetectCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Load configuration from this file only")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.Flags().BoolVar(&noTUI, "no-tui", false, "Print one palette and exit instead of starting the TUI")
	rootCmd.Flags().StringVarP(&rootScheme, "scheme", "s", "", "Initial harmony scheme")
	rootCmd.Flags().Int64Var(&rootSeed, "seed", 0, "Random seed for a reproducible session (0 seeds from the clock)")
}

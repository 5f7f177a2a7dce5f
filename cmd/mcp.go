package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chroma/internal/cli"
	"chroma/internal/config"
	"chroma/internal/mcpserver"
	"chroma/internal/palette"
	"chroma/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const defaultMCPEndpoint = "http://localhost:8095/sse"

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve or call the palette tools over MCP",
		Long: `chroma exposes its palette operations as Model Context Protocol tools:

  generate_palette - generate five colours for a scheme
  detect_harmony   - classify five hex colours
  convert_color    - describe a hex colour
  text_color       - pick black or white text for an HSL background

Run 'chroma mcp serve' to expose them to an AI assistant and
'chroma mcp call' to call them against a running SSE server.`,
	}

	cmd.AddCommand(newMCPServeCmd())
	cmd.AddCommand(newMCPToolsCmd())
	cmd.AddCommand(newMCPCallCmd())
	return cmd
}

type mcpServeOptions struct {
	transport string
	host      string
	port      int
	seed      int64
}

func newMCPServeCmd() *cobra.Command {
	opts := &mcpServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the palette MCP server",
		Long: `Starts an MCP server exposing the palette tools.

With the stdio transport (default) the server speaks MCP on stdin/stdout
and logs to stderr. With --transport sse it listens on host:port and
serves the SSE endpoint at /sse.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCPServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.transport, "transport", "", "Transport to use (stdio, sse)")
	cmd.Flags().StringVar(&opts.host, "host", "", "Host to listen on for sse")
	cmd.Flags().IntVar(&opts.port, "port", 0, "Port to listen on for sse")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	return cmd
}

// mcpConfig loads the configured MCP settings and applies flag overrides.
func mcpConfig(opts *mcpServeOptions) (config.ChromaConfig, error) {
	var (
		cfg config.ChromaConfig
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadConfigFromPath(configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to load chroma configuration: %w", err)
	}

	if opts.transport != "" {
		cfg.MCP.Transport = opts.transport
	}
	if opts.host != "" {
		cfg.MCP.Host = opts.host
	}
	if opts.port != 0 {
		cfg.MCP.Port = opts.port
	}
	if opts.seed != 0 {
		cfg.Palette.Seed = opts.seed
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runMCPServe(cmd *cobra.Command, opts *mcpServeOptions) error {
	// Stdout belongs to the stdio transport.
	logging.InitForCLI(logging.LevelInfo, os.Stderr)

	cfg, err := mcpConfig(opts)
	if err != nil {
		return err
	}
	logging.InitForCLI(cfg.LogLevel(), os.Stderr)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mcpserver.NewPaletteServer(cfg.MCP, rootCmd.Version, palette.NewSeededGenerator(cfg.Palette.Seed))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Info("MCP", "Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	}
}

func newMCPToolsCmd() *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools offered by a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := cli.NewCLIClient(endpoint)
			defer client.Close()

			ctx := cmd.Context()
			if err := client.Connect(ctx); err != nil {
				return err
			}
			tools, err := client.ListTools(ctx)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"NAME", "DESCRIPTION"})
			for _, tool := range tools {
				t.AppendRow(table.Row{tool.Name, tool.Description})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", defaultMCPEndpoint, "SSE endpoint of the server")
	return cmd
}

func newMCPCallCmd() *cobra.Command {
	var (
		endpoint string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "call TOOL [key=value...]",
		Short: "Call a palette tool on a running server",
		Example: `  chroma mcp call generate_palette scheme=triadic
  chroma mcp call convert_color hex=#1980e6 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			toolArgs, err := cli.ParseToolArgs(args[1:])
			if err != nil {
				return err
			}

			client := cli.NewCLIClient(endpoint)
			defer client.Close()

			ctx := cmd.Context()
			if err := client.Connect(ctx); err != nil {
				return err
			}
			return cli.NewToolExecutor(client, cli.NewPrinter(cmd.OutOrStdout(), format)).Execute(ctx, args[0], toolArgs)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", defaultMCPEndpoint, "SSE endpoint of the server")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

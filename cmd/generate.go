package cmd

import (
	"chroma/internal/cli"
	"chroma/internal/harmony"
	"chroma/internal/mcpserver"
	"chroma/internal/palette"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	scheme string
	seed   int64
	base   string
	output string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a palette without starting the TUI",
		Long: `Generates one five-colour palette and prints it.

With --base the palette is built around the given colour instead of a
random one. --seed makes the output reproducible.`,
		Example: `  chroma generate --scheme triadic
  chroma generate -s complementary --base ff8800 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scheme, "scheme", "s", string(harmony.SchemeRandom), "Harmony scheme")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	cmd.Flags().StringVarP(&opts.base, "base", "b", "", "Base colour as hex; random if empty")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	scheme, err := harmony.ParseScheme(opts.scheme)
	if err != nil {
		return err
	}
	format, err := cli.ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	gen := palette.NewSeededGenerator(opts.seed)
	var res mcpserver.PaletteResult
	if opts.base != "" {
		rgb, err := cli.ParseHexArg(opts.base)
		if err != nil {
			return err
		}
		res = mcpserver.NewPaletteResult(scheme, gen.FromBase(rgb.HSL(), scheme))
	} else {
		res = mcpserver.NewPaletteResult(scheme, gen.Colors(scheme))
	}

	return cli.NewPrinter(cmd.OutOrStdout(), format).Palette(res)
}

package cmd

import (
	"chroma/internal/cli"
	"chroma/internal/color"
	"chroma/internal/harmony"

	"github.com/spf13/cobra"
)

func newDetectCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "detect HEX HEX HEX HEX HEX",
		Short: "Classify the harmony of five colours",
		Long: `Reports whether five colours look monochromatic, analogous or
custom / mixed, the same way the TUI badge does.`,
		Example: `  chroma detect ff0000 ff5500 ffaa00 ffff00 aaff00`,
		Args:    cobra.ExactArgs(harmony.PaletteSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}

			colors := make([]color.HSL, len(args))
			for i, arg := range args {
				rgb, err := cli.ParseHexArg(arg)
				if err != nil {
					return err
				}
				colors[i] = rgb.HSL()
			}

			return cli.NewPrinter(cmd.OutOrStdout(), format).Harmony(harmony.Detect(colors))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

package cmd

import (
	"errors"

	"chroma/internal/cli"
	"chroma/internal/mcpserver"

	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var (
		hsl    string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert [HEX]",
		Short: "Show a colour as hex, RGB and HSL",
		Long: `Converts a colour given as hex, or as HSL with --hsl, and shows
every representation together with the legible text colour.`,
		Example: `  chroma convert 1980e6
  chroma convert --hsl 210,80,50 -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}

			var info mcpserver.ColorInfo
			switch {
			case len(args) == 1 && hsl != "":
				return errors.New("give either a hex colour or --hsl, not both")
			case len(args) == 1:
				rgb, err := cli.ParseHexArg(args[0])
				if err != nil {
					return err
				}
				info = mcpserver.NewHexColorInfo(rgb)
			case hsl != "":
				c, err := cli.ParseHSLArg(hsl)
				if err != nil {
					return err
				}
				info = mcpserver.NewColorInfo(c)
			default:
				return errors.New("a hex colour or --hsl is required")
			}

			return cli.NewPrinter(cmd.OutOrStdout(), format).Color(info)
		},
	}

	cmd.Flags().StringVar(&hsl, "hsl", "", "Colour as h,s,l")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xmk/internal/app"
)

func (c *CLI) newTranslateCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Convert a captured build trace into a makefile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Translate(cmd.Context(), app.TranslateOptions{
				Input:  input,
				Output: output,
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Trace file to translate (defaults to the configured trace path)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Makefile to write (defaults to the configured makefile path)")

	return cmd
}

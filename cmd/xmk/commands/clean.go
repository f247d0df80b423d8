package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xmk/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the generated makefile and captured trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context(), app.CleanOptions{All: all})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Also remove the recorded fingerprint state")

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xmk/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build incrementally, re-capturing the trace only when needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), app.BuildOptions{Force: force})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-capture the trace even if nothing changed")

	return cmd
}

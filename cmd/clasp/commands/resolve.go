package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the workspace classpath through the instrumentation pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, _ := cmd.Flags().GetString("dir")
			return c.app.Resolve(cmd.Context(), cwd)
		},
	}
	cmd.Flags().StringP("dir", "d", ".", "Workspace directory containing clasp.yaml")
	return cmd
}

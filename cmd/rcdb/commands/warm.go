package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWarmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "warm",
		Short: "Pre-resolve arguments for every known translation unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Warm(cmd.Context())
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the translation units of the active project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, unit := range c.app.TranslationUnits() {
				cmd.Println(unit)
			}
			return nil
		},
	}
}

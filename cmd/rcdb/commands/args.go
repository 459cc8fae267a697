package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newArgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "args <file>",
		Short: "Print the compiler arguments for a translation unit",
		Long: "Print the best-known compiler arguments for the given source file, " +
			"one per line. No output means the file cannot be resolved and should " +
			"be parsed without full semantic context.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := c.app.ArgsForFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, arg := range resolved {
				cmd.Println(arg)
			}
			return nil
		},
	}
}

// Package commands implements the CLI commands for the rcdb tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rcdb/internal/app"
	"go.trai.ch/rcdb/internal/build"
)

// CLI represents the command line interface for rcdb.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rcdb",
		Short:         "Resolve compiler arguments for R/C++ translation units",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newArgsCmd())
	rootCmd.AddCommand(c.newUnitsCmd())
	rootCmd.AddCommand(c.newWarmCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

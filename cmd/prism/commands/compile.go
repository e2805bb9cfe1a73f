package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile [view]",
		Short: "Compile a view and report its dependency graphs",
		Long: "Compile a view and report its dependency graphs.\n" +
			"The view may be omitted when the workspace defines exactly one.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Compile(cmd.Context(), viewArg(args))
		},
	}
}

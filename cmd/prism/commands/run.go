package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/prism/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [view]",
		Short: "Compile a view and execute its graphs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cycles, _ := cmd.Flags().GetInt("cycles")
			noStats, _ := cmd.Flags().GetBool("no-stats")

			return c.app.Run(cmd.Context(), viewArg(args), app.RunOptions{
				Cycles:       cycles,
				NoStatistics: noStats,
			})
		},
	}
	cmd.Flags().IntP("cycles", "c", 1, "Number of execution cycles")
	cmd.Flags().Bool("no-stats", false, "Discard execution statistics")
	return cmd
}

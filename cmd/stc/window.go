package main

import (
	"github.com/spf13/cobra"

	"github.com/blockfall/stc/internal/cli"
	"github.com/blockfall/stc/internal/platform/window"
)

func newWindowCmd() *cobra.Command {
	var cellSize int

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Play in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, closeLog, err := cli.NewApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			if err := window.Run(cmd.Context(), app.Driver, cellSize); err != nil {
				return err
			}
			return cli.PrintHistory(cmd.Context(), cmd.OutOrStdout(), app.HistoryService)
		},
	}

	cmd.Flags().IntVar(&cellSize, "cell", 24, "Cell size in pixels")

	return cmd
}

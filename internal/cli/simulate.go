package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blockfall/stc/internal/dependencies/clock"
	"github.com/blockfall/stc/internal/dependencies/random"
	"github.com/blockfall/stc/internal/factory"
	"github.com/blockfall/stc/internal/platform"
	"github.com/blockfall/stc/internal/platform/headless"
)

func newSimulateCmd() *cobra.Command {
	var (
		frames  int
		restart bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play headless with random inputs",
		Long: `Play headless with random inputs for a number of 60Hz frames, then
print the games played. Time only moves between frames, so with a
non-zero --seed the result is the same on every run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := cfg.Engine()
			if err != nil {
				return err
			}

			logger, closeLog, err := cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			clk := clock.NewFrameClock(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), time.Second/60)
			app, err := factory.New(factory.Config{
				Engine: engine,
				Logger: logger,
				Seed:   cfg.Seed,
				Clock:  clk,
			})
			if err != nil {
				return err
			}

			var input random.Random = random.New()
			if cfg.Seed != 0 {
				input = random.NewSeeded(cfg.Seed + 1)
			}
			adapter := headless.New(clk, input, frames, restart)

			if err := platform.Run(cmd.Context(), adapter, app.Driver); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Simulated %d frames, %d renders\n", adapter.Frames(), adapter.Renders())
			return PrintHistory(cmd.Context(), out, app.HistoryService)
		},
	}

	cmd.Flags().IntVarP(&frames, "frames", "n", 3600, "Frames to simulate")
	cmd.Flags().BoolVar(&restart, "restart", true, "Start a new game after game over")

	return cmd
}

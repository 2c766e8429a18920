package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/blockfall/stc/internal/factory"
	"github.com/blockfall/stc/internal/platform/terminal"
)

func newPlayCmd() *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play in the terminal.

Terminals report key presses but not releases, so holding a key relies on
the terminal's own key repeat. Logs are discarded unless --log-file is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Anything written to the terminal would corrupt the board
			app, closeLog, err := NewApp(io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()

			frameDelay := time.Second / time.Duration(max(fps, 1))
			if err := terminal.Run(cmd.Context(), app.Driver, frameDelay); err != nil {
				return err
			}
			return PrintHistory(cmd.Context(), cmd.OutOrStdout(), app.HistoryService)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 60, "Frames per second")

	return cmd
}

// NewApp wires an application from the CLI configuration. Logs go to
// logOut unless a log file is configured.
func NewApp(logOut io.Writer) (*factory.App, func() error, error) {
	engine, err := cfg.Engine()
	if err != nil {
		return nil, nil, err
	}

	logger, closeLog, err := cfg.Logger(logOut)
	if err != nil {
		return nil, nil, err
	}

	app, err := factory.New(factory.Config{
		Engine: engine,
		Logger: logger,
		Seed:   cfg.Seed,
	})
	if err != nil {
		_ = closeLog()
		return nil, nil, err
	}
	return app, closeLog, nil
}

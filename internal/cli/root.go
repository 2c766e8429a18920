package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "stc",
		Short: "Falling-block puzzle game",
		Long: `stc is a falling-block puzzle game.

Play it in the terminal or in a window, or let it play itself headless to
check a configuration. The engine is configured with a YAML file; any key
left out keeps its default.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.ConfigPath, "config", "c", cfg.ConfigPath, "Engine config YAML file (env: STC_CONFIG)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Piece sequence seed, 0 for random (env: STC_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.Generator, "generator", cfg.Generator, "Piece generator: uniform, bag")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: STC_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file (env: STC_LOG_FILE)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the root command with any extra subcommands
func Execute(extra ...*cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	rootCmd.AddCommand(extra...)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

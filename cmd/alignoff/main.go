package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string

	config *config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "alignoff",
		Short:        "Compute element offsets that bring strided addresses into alignment",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
				return fmt.Errorf("invalid log level '%s': %w", opts.logLevel, err)
			}

			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			config, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}

			opts.config = config

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Minimum log level (debug, info, warn, error)")

	cmd.AddCommand(
		newOffsetCommand(opts),
		newInverseCommand(opts),
		newProbeCommand(opts),
		newSweepCommand(opts),
	)

	return cmd
}

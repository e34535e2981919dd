package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davejbax/alignoff/internal/report"
	"github.com/davejbax/alignoff/internal/sweep"
	"github.com/spf13/cobra"
)

var errMismatches = errors.New("solver disagrees with the oracle")

func newSweepCommand(opts *rootOptions) *cobra.Command {
	var (
		reportPath string
		methodName string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Check a solver against a brute-force scan over a grid of inputs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := opts.config.Sweep
			if cmd.Flags().Changed("method") {
				config.Method = methodName
			}

			sweeper, err := sweep.New(opts.logger, &config)
			if err != nil {
				return fmt.Errorf("failed to create sweeper: %w", err)
			}

			result, err := sweeper.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("sweep failed: %w", err)
			}

			if reportPath != "" {
				if err := writeReport(reportPath, result); err != nil {
					return err
				}

				opts.logger.Info("wrote sweep report",
					"path", reportPath,
					"mismatches", len(result.Mismatches),
				)
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "checked %d inputs with %s solver, %d mismatches\n",
				result.Checked, result.Method, len(result.Mismatches)); err != nil {
				return err //nolint:wrapcheck
			}

			if len(result.Mismatches) > 0 {
				return fmt.Errorf("%d inputs: %w", len(result.Mismatches), errMismatches)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&reportPath, "report", "r", "", "Write a binary mismatch report to this path")
	cmd.Flags().StringVarP(&methodName, "method", "m", "", "Solver method, overriding the config file")

	return cmd
}

func writeReport(path string, result *sweep.Result) error {
	output, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not open report file: %w", err)
	}

	if _, err := report.New(result).WriteTo(output); err != nil {
		_ = output.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := output.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}

	return nil
}

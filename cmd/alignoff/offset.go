package main

import (
	"fmt"

	"github.com/davejbax/alignoff/internal/align"
	"github.com/davejbax/alignoff/internal/align/aligntest"
	"github.com/spf13/cobra"
)

func newOffsetCommand(opts *rootOptions) *cobra.Command {
	var (
		address    uint64
		stride     uint64
		alignment  uint64
		methodName string
		checked    bool
	)

	cmd := &cobra.Command{
		Use:   "offset",
		Short: "Print the number of elements to advance an address by to reach an alignment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			method, err := align.ParseMethod(methodName)
			if err != nil {
				return err //nolint:wrapcheck
			}

			var offset uint64

			if checked {
				offset, err = align.SolveChecked(method, address, stride, alignment)
				if err != nil {
					return err //nolint:wrapcheck
				}
			} else {
				offset = align.Solve(method, address, stride, alignment)
			}

			opts.logger.Debug("computed offset",
				"address", fmt.Sprintf("0x%x", address),
				"stride", stride,
				"align", alignment,
				"method", method,
				"checked", checked,
				"offset", aligntest.Format(offset),
			)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), aligntest.Format(offset))

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().Uint64VarP(&address, "address", "p", 0, "Address to align (accepts 0x prefix)")
	cmd.Flags().Uint64VarP(&stride, "stride", "s", 1, "Element size in bytes")
	cmd.Flags().Uint64VarP(&alignment, "align", "a", 8, "Power-of-two alignment")
	cmd.Flags().StringVarP(&methodName, "method", "m", align.MethodHensel.String(), "Solver method (hensel, reduced)")
	cmd.Flags().BoolVar(&checked, "checked", false, "Reject invalid alignments and report unreachable requests as errors")

	return cmd
}

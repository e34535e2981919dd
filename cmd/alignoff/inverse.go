package main

import (
	"errors"
	"fmt"

	"github.com/davejbax/alignoff/internal/math"
	"github.com/spf13/cobra"
)

var (
	errModulusNotPowerOfTwo = errors.New("modulus must be a power of two")
	errEvenValue            = errors.New("value must be odd to be invertible")
)

func newInverseCommand(_ *rootOptions) *cobra.Command {
	var value, modulus uint64

	cmd := &cobra.Command{
		Use:   "inverse",
		Short: "Print the multiplicative inverse of an odd value modulo a power of two",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !math.IsPow2(modulus) || modulus < 2 {
				return fmt.Errorf("invalid modulus %d: %w", modulus, errModulusNotPowerOfTwo)
			}

			if value%2 == 0 {
				return fmt.Errorf("cannot invert %d: %w", value, errEvenValue)
			}

			inverse := math.InverseMod(value&(modulus-1), modulus)

			_, err := fmt.Fprintln(cmd.OutOrStdout(), inverse)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().Uint64VarP(&value, "value", "x", 1, "Odd value to invert")
	cmd.Flags().Uint64VarP(&modulus, "modulus", "m", 16, "Power-of-two modulus")

	return cmd
}

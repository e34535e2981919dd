package main

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/davejbax/alignoff/internal/align"
	"github.com/davejbax/alignoff/internal/align/aligntest"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
)

var errNoProbes = errors.New("no probes configured")

type probe struct {
	Name    string `mapstructure:"name"`
	Address uint64 `mapstructure:"address"`
	Stride  uint64 `mapstructure:"stride"`
	Align   uint64 `mapstructure:"align"`
}

func newProbeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Evaluate the probes listed in the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(opts.config.Probes) == 0 {
				return errNoProbes
			}

			for i, raw := range opts.config.Probes {
				p, err := decodeProbe(raw)
				if err != nil {
					return fmt.Errorf("could not parse probe %d: %w", i, err)
				}

				offset, err := align.OffsetChecked(p.Address, p.Stride, p.Align)
				if err != nil && !errors.Is(err, align.ErrUnreachable) {
					return fmt.Errorf("probe %d (%s) is invalid: %w", i, p.Name, err)
				}

				if err != nil {
					offset = align.Unreachable[uint64]()
				}

				opts.logger.Info("probed alignment",
					"name", p.Name,
					"address", fmt.Sprintf("0x%x", p.Address),
					"stride", p.Stride,
					"align", p.Align,
					"offset", aligntest.Format(offset),
				)

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.Name, aligntest.Format(offset)); err != nil {
					return err //nolint:wrapcheck
				}
			}

			return nil
		},
	}
}

func decodeProbe(raw map[string]interface{}) (*probe, error) {
	var output probe

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToUint64HookFunc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create probe decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode probe: %w", err)
	}

	if output.Name == "" {
		output.Name = fmt.Sprintf("0x%x/%d/%d", output.Address, output.Stride, output.Align)
	}

	return &output, nil
}

// stringToUint64HookFunc parses strings with a base prefix ("0x1000",
// "0b1000") into integers, which WeaklyTypedInput alone would only accept in
// decimal.
func stringToUint64HookFunc(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Uint64 {
		return data, nil
	}

	parsed, err := strconv.ParseUint(data.(string), 0, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer '%s': %w", data, err)
	}

	return parsed, nil
}

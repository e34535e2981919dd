// Package sweep checks a solver against the brute-force oracle over a grid of
// alignments, addresses and strides.
package sweep

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/davejbax/alignoff/internal/align"
	"github.com/davejbax/alignoff/internal/align/aligntest"
	"github.com/davejbax/alignoff/internal/math"
	"golang.org/x/sync/errgroup"
)

// The oracle is linear in the alignment, so the grid is capped.
const maxSweepAlign = 1 << 16

var ErrInvalidConfig = errors.New("invalid sweep config")

type Config struct {
	// Largest alignment swept; every power of two up to and including it is
	// checked
	MaxAlign uint64 `mapstructure:"max_align" default:"1024"`

	// Addresses are swept over [1, AddressFactor*align)
	AddressFactor uint64 `mapstructure:"address_factor" default:"4"`

	MinStride uint64 `mapstructure:"min_stride" default:"3"`
	MaxStride uint64 `mapstructure:"max_stride" default:"10"`

	Parallelism int    `mapstructure:"parallelism" default:"4"`
	Method      string `mapstructure:"method" default:"hensel"`
}

type Mismatch = aligntest.Mismatch[uint64]

type Result struct {
	Method     align.Method
	Checked    uint64
	Mismatches []Mismatch
}

type solveFunc func(addr, stride, alignment uint64) uint64

type Sweeper struct {
	logger *slog.Logger
	config *Config
	method align.Method
	solve  solveFunc
}

func New(logger *slog.Logger, config *Config) (*Sweeper, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	method, err := align.ParseMethod(config.Method)
	if err != nil {
		return nil, fmt.Errorf("failed to select solver: %w", err)
	}

	return &Sweeper{
		logger: logger,
		config: config,
		method: method,
		solve: func(addr, stride, alignment uint64) uint64 {
			return align.Solve(method, addr, stride, alignment)
		},
	}, nil
}

func (c *Config) validate() error {
	switch {
	case !math.IsPow2(c.MaxAlign):
		return fmt.Errorf("%w: max_align %d is not a power of two", ErrInvalidConfig, c.MaxAlign)
	case c.MaxAlign > maxSweepAlign:
		return fmt.Errorf("%w: max_align %d exceeds %d", ErrInvalidConfig, c.MaxAlign, maxSweepAlign)
	case c.AddressFactor == 0:
		return fmt.Errorf("%w: address_factor must be positive", ErrInvalidConfig)
	case c.AddressFactor > ^uint64(0)/c.MaxAlign:
		return fmt.Errorf("%w: address_factor %d overflows with max_align %d", ErrInvalidConfig, c.AddressFactor, c.MaxAlign)
	case c.MinStride > c.MaxStride:
		return fmt.Errorf("%w: min_stride %d exceeds max_stride %d", ErrInvalidConfig, c.MinStride, c.MaxStride)
	case c.Parallelism < 1:
		return fmt.Errorf("%w: parallelism must be at least 1", ErrInvalidConfig)
	}

	return nil
}

// Run sweeps the configured grid, one alignment per worker.
func (s *Sweeper) Run(ctx context.Context) (*Result, error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.config.Parallelism)

	var (
		mu     sync.Mutex
		result = &Result{Method: s.method}
	)

	for alignment := uint64(1); alignment <= s.config.MaxAlign; alignment <<= 1 {
		eg.Go(func() error {
			checked, mismatches, err := s.sweepAlignment(ctx, alignment)
			if err != nil {
				return fmt.Errorf("sweep of alignment %d aborted: %w", alignment, err)
			}

			s.logger.Debug("swept alignment",
				"align", alignment,
				"checked", checked,
				"mismatches", len(mismatches),
			)

			mu.Lock()
			defer mu.Unlock()

			result.Checked += checked
			result.Mismatches = append(result.Mismatches, mismatches...)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	slices.SortFunc(result.Mismatches, compareMismatches)

	s.logger.Info("sweep finished",
		"method", s.method,
		"checked", result.Checked,
		"mismatches", len(result.Mismatches),
	)

	return result, nil
}

func (s *Sweeper) sweepAlignment(ctx context.Context, alignment uint64) (uint64, []Mismatch, error) {
	var (
		checked    uint64
		mismatches []Mismatch
	)

	end := s.config.AddressFactor * alignment

	for addr := uint64(1); addr < end; addr++ {
		if err := ctx.Err(); err != nil {
			return checked, nil, err //nolint:wrapcheck
		}

		for stride := s.config.MinStride; stride <= s.config.MaxStride; stride++ {
			mismatch, ok := aligntest.Check(s.solve, addr, stride, alignment)
			checked++

			if !ok {
				s.logger.Warn("solver disagrees with oracle",
					"address", fmt.Sprintf("0x%x", addr),
					"stride", stride,
					"align", alignment,
					"got", aligntest.Format(mismatch.Got),
					"want", aligntest.Format(mismatch.Want),
				)

				mismatches = append(mismatches, mismatch)
			}

			// Guard the increment when MaxStride is the largest uint64
			if stride == s.config.MaxStride {
				break
			}
		}
	}

	return checked, mismatches, nil
}

func compareMismatches(a, b Mismatch) int {
	if c := cmp.Compare(a.Alignment, b.Alignment); c != 0 {
		return c
	}

	if c := cmp.Compare(a.Address, b.Address); c != 0 {
		return c
	}

	return cmp.Compare(a.Stride, b.Stride)
}

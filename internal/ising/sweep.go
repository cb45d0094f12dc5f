package ising

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"ising-mc/pkg/core"
)

// SweepConfig describes a grid of independent runs over lattice sizes and
// reduced temperatures T/Tc.
type SweepConfig struct {
	Sizes        []int     // lattice side lengths, each > 0
	ReducedTemps []float64 // T/Tc multipliers, each > 0
	Steps        int       // trials per run
	H            float64   // external field
	J            float64   // nearest-neighbor coupling
	Seed         int64     // base seed; each run derives its own stream
	Workers      int       // concurrent runs; defaults to NumCPU when <= 0
}

// DefaultSweepConfig returns the standard sweep grid.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Sizes:        []int{8, 16, 32},
		ReducedTemps: ReducedTempGrid(0.5, 1.5, 21),
		Steps:        200000,
		J:            1,
		Seed:         1337,
		Workers:      runtime.NumCPU(),
	}
}

// ReducedTempGrid returns count evenly spaced reduced temperatures spanning
// [lo, hi] inclusive.
func ReducedTempGrid(lo, hi float64, count int) []float64 {
	if count <= 1 {
		return []float64{lo}
	}
	dst := make([]float64, count)
	floats.Span(dst, lo, hi)
	return dst
}

// SweepPoint is the observable summary of one (size, temperature) run.
type SweepPoint struct {
	N        int
	ReducedT float64
	T        float64
	MeanAbsM float64
	Chi      float64
	Seed     int64
}

// RunSweep executes one fresh Metropolis run per (size, reduced temperature)
// pair and reduces each magnetization series to its observable summary.
// Runs share nothing: every point owns its own lattice and its own seeded
// generator, so they execute concurrently on a bounded pool. Cancellation
// is cooperative and checked between runs, never mid-run.
func RunSweep(ctx context.Context, cfg SweepConfig) ([]SweepPoint, error) {
	if len(cfg.Sizes) == 0 {
		return nil, fmt.Errorf("ising: sweep needs at least one lattice size")
	}
	if len(cfg.ReducedTemps) == 0 {
		return nil, fmt.Errorf("ising: sweep needs at least one temperature")
	}
	for _, n := range cfg.Sizes {
		if n <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
		}
	}
	for _, rt := range cfg.ReducedTemps {
		if rt <= 0 {
			return nil, fmt.Errorf("%w: reduced temperature %g", ErrInvalidTemperature, rt)
		}
	}
	if cfg.Steps <= 0 {
		// A sweep point reduces its magnetization series to two scalars, so
		// an empty series has no summary.
		return nil, fmt.Errorf("%w: sweep needs at least one step, got %d", ErrInvalidSteps, cfg.Steps)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	points := make([]SweepPoint, len(cfg.Sizes)*len(cfg.ReducedTemps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	idx := 0
	for _, n := range cfg.Sizes {
		for _, rt := range cfg.ReducedTemps {
			i := idx
			size := n
			reduced := rt
			seed := cfg.Seed + int64(i)
			idx++

			g.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				temp := reduced * CriticalTemperature
				res, err := Simulate(Params{
					N:     size,
					Steps: cfg.Steps,
					H:     cfg.H,
					J:     cfg.J,
					T:     temp,
				}, core.NewRNG(seed))
				if err != nil {
					return fmt.Errorf("run n=%d t=%g: %w", size, temp, err)
				}

				m, err := MeanAbsMagnetization(res.Magnetizations)
				if err != nil {
					return fmt.Errorf("run n=%d t=%g: %w", size, temp, err)
				}
				chi, err := Susceptibility(res.Magnetizations, temp)
				if err != nil {
					return fmt.Errorf("run n=%d t=%g: %w", size, temp, err)
				}

				points[i] = SweepPoint{
					N:        size,
					ReducedT: reduced,
					T:        temp,
					MeanAbsM: m,
					Chi:      chi,
					Seed:     seed,
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

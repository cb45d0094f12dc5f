package ising

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSize reports a non-positive lattice size.
	ErrInvalidSize = errors.New("ising: lattice size must be positive")
	// ErrInvalidSteps reports a negative step count.
	ErrInvalidSteps = errors.New("ising: step count must be non-negative")
	// ErrInvalidTemperature reports a non-positive temperature.
	ErrInvalidTemperature = errors.New("ising: temperature must be positive")
)

// Params is the immutable per-run configuration of a Metropolis run.
type Params struct {
	N     int     // lattice side length
	Steps int     // number of single-flip trials
	H     float64 // external field
	J     float64 // nearest-neighbor coupling
	T     float64 // temperature
}

// Validate rejects parameter combinations the engine cannot run. It is
// called before any lattice state is allocated or randomness consumed.
func (p Params) Validate() error {
	if p.N <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, p.N)
	}
	if p.Steps < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, p.Steps)
	}
	if p.T <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidTemperature, p.T)
	}
	return nil
}

// Result is the trajectory of one completed run.
//
// Energies is sparse: it records the cumulative energy only at trials where
// the flip was accepted, so its length is at most Steps and its index is
// "accepted move number", not trial number. Magnetizations is dense: one
// sample per trial, accepted or not, so its length is always exactly Steps.
// Downstream statistics are computed over the dense series; the asymmetry
// is kept on purpose.
type Result struct {
	Final          *Lattice
	Energies       []float64
	Magnetizations []float64
}

// trial proposes one single-spin flip and applies the Metropolis criterion.
// It always consumes two index draws; the acceptance draw is consumed only
// when dE >= 0 (dE < 0 accepts outright, and at dE == 0 the draw always
// succeeds since exp(0) = 1). The returned dE is computed from the pre-flip
// spin.
func trial(lat *Lattice, src Source, h, j, t float64) (row, col int, dE float64, accepted bool) {
	row = src.IntN(lat.n)
	col = src.IntN(lat.n)
	s0 := lat.At(row, col)
	dE = 2 * float64(s0) * (h + j*float64(lat.NeighborSum(row, col)))
	if dE < 0 || src.Float64() < math.Exp(-dE/t) {
		lat.Flip(row, col)
		return row, col, dE, true
	}
	return row, col, dE, false
}

// Simulate runs exactly p.Steps single-spin-flip trials on a freshly drawn
// lattice and returns the final configuration together with both observable
// series. The run is strictly sequential; parallelism belongs at the level
// of independent runs, each with its own Source.
func Simulate(p Params, src Source) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	lat, err := NewLattice(p.N, src)
	if err != nil {
		return nil, err
	}

	cells := float64(p.N * p.N)
	energies := make([]float64, 0, p.Steps)
	mags := make([]float64, 0, p.Steps)

	spinSum := lat.SumAll()
	energy := 0.0

	for step := 0; step < p.Steps; step++ {
		row, col, dE, ok := trial(lat, src, p.H, p.J, p.T)
		if ok {
			// Flip already applied; the new spin contributes twice its
			// value to the running sum.
			spinSum += 2 * int(lat.At(row, col))
			energy += dE
			energies = append(energies, energy)
		}
		mags = append(mags, float64(spinSum)/cells)
	}

	return &Result{Final: lat, Energies: energies, Magnetizations: mags}, nil
}

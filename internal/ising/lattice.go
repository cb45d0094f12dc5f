package ising

import "fmt"

// Source supplies the uniform randomness the simulator consumes. It is
// satisfied by math/rand/v2's *rand.Rand and by pkg/core's RNG.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Lattice stores an N×N grid of ±1 spins in row-major order with toroidal
// wrapping on both axes.
type Lattice struct {
	n     int
	spins []int8
}

// NewLattice allocates an n×n lattice and fills every cell with an
// independent uniform ±1 draw from src.
func NewLattice(n int, src Source) (*Lattice, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	l := &Lattice{n: n, spins: make([]int8, n*n)}
	for i := range l.spins {
		if src.IntN(2) == 1 {
			l.spins[i] = 1
		} else {
			l.spins[i] = -1
		}
	}
	return l, nil
}

// N returns the lattice side length.
func (l *Lattice) N() int { return l.n }

// Spins exposes the backing slice so callers can read values directly.
func (l *Lattice) Spins() []int8 { return l.spins }

// At returns the spin at row i, column j. Both indices must be in [0, n).
func (l *Lattice) At(i, j int) int8 { return l.spins[i*l.n+j] }

// wrap applies toroidal wrapping, correctly mapping negative indices.
func (l *Lattice) wrap(v int) int { return (v%l.n + l.n) % l.n }

// NeighborSum returns the sum of the four lattice-adjacent spins of (i, j)
// under periodic boundary conditions.
func (l *Lattice) NeighborSum(i, j int) int {
	n := l.n
	north := l.spins[l.wrap(i-1)*n+j]
	south := l.spins[l.wrap(i+1)*n+j]
	west := l.spins[i*n+l.wrap(j-1)]
	east := l.spins[i*n+l.wrap(j+1)]
	return int(north) + int(south) + int(west) + int(east)
}

// Flip negates the spin at (i, j). Energy bookkeeping is the caller's job.
func (l *Lattice) Flip(i, j int) {
	l.spins[i*l.n+j] = -l.spins[i*l.n+j]
}

// SumAll returns the total spin sum over the whole lattice.
func (l *Lattice) SumAll() int {
	total := 0
	for _, s := range l.spins {
		total += int(s)
	}
	return total
}

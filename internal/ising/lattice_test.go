package ising

import (
	"errors"
	"testing"

	"ising-mc/pkg/core"
)

func TestNewLatticeRejectsInvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -20} {
		if _, err := NewLattice(n, core.NewRNG(1)); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size %d: expected ErrInvalidSize, got %v", n, err)
		}
	}
}

func TestNewLatticeSpinDomain(t *testing.T) {
	lat, err := NewLattice(16, core.NewRNG(7))
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for i, s := range lat.Spins() {
		if s != 1 && s != -1 {
			t.Fatalf("cell %d holds %d, want +1 or -1", i, s)
		}
		total += int(s)
	}
	if got := lat.SumAll(); got != total {
		t.Fatalf("SumAll = %d, manual sum = %d", got, total)
	}
	if len(lat.Spins()) != 16*16 {
		t.Fatalf("expected %d cells, got %d", 16*16, len(lat.Spins()))
	}
}

func TestNeighborSumWrapsAtBorders(t *testing.T) {
	lat, err := NewLattice(3, core.NewRNG(99))
	if err != nil {
		t.Fatal(err)
	}

	// Expected neighbor coordinates under toroidal wrapping; the corner
	// cases wrap on both axes simultaneously.
	cases := []struct {
		i, j      int
		neighbors [4][2]int
	}{
		{0, 0, [4][2]int{{2, 0}, {1, 0}, {0, 2}, {0, 1}}},
		{0, 2, [4][2]int{{2, 2}, {1, 2}, {0, 1}, {0, 0}}},
		{2, 0, [4][2]int{{1, 0}, {0, 0}, {2, 2}, {2, 1}}},
		{2, 2, [4][2]int{{1, 2}, {0, 2}, {2, 1}, {2, 0}}},
		{0, 1, [4][2]int{{2, 1}, {1, 1}, {0, 0}, {0, 2}}},
		{1, 0, [4][2]int{{0, 0}, {2, 0}, {1, 2}, {1, 1}}},
		{2, 1, [4][2]int{{1, 1}, {0, 1}, {2, 0}, {2, 2}}},
		{1, 2, [4][2]int{{0, 2}, {2, 2}, {1, 1}, {1, 0}}},
	}

	for _, tc := range cases {
		want := 0
		for _, nb := range tc.neighbors {
			want += int(lat.At(nb[0], nb[1]))
		}
		if got := lat.NeighborSum(tc.i, tc.j); got != want {
			t.Fatalf("NeighborSum(%d,%d) = %d, want %d", tc.i, tc.j, got, want)
		}
	}
}

func TestFlipNegatesSingleCell(t *testing.T) {
	lat, err := NewLattice(4, core.NewRNG(3))
	if err != nil {
		t.Fatal(err)
	}

	before := append([]int8(nil), lat.Spins()...)
	lat.Flip(1, 2)

	for i, s := range lat.Spins() {
		if i == 1*4+2 {
			if s != -before[i] {
				t.Fatalf("flipped cell holds %d, want %d", s, -before[i])
			}
			continue
		}
		if s != before[i] {
			t.Fatalf("cell %d changed from %d to %d", i, before[i], s)
		}
	}

	lat.Flip(1, 2)
	for i, s := range lat.Spins() {
		if s != before[i] {
			t.Fatalf("double flip not an identity at cell %d", i)
		}
	}
}

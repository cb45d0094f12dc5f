package ising

import (
	"math"
	"slices"
	"testing"
)

func TestModelResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 16
	cfg.Seed = 99

	model := NewWithConfig(cfg)
	model.Reset(0)

	initial := append([]uint8(nil), model.Cells()...)
	if len(initial) != 16*16 {
		t.Fatal("model must allocate the display buffer")
	}

	// Mutate state to ensure Reset rebuilds from scratch.
	model.Step()

	model.Reset(0)
	if !slices.Equal(initial, model.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	model.Reset(777)
	seeded := append([]uint8(nil), model.Cells()...)
	model.Reset(777)
	if !slices.Equal(seeded, model.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}

	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different initial lattices")
	}
}

func TestModelCellsMirrorSpins(t *testing.T) {
	model := New(12)
	model.Reset(0)
	model.Step()

	cells := model.Cells()
	spins := model.Lattice().Spins()
	ones := 0
	for i, c := range cells {
		if c != 0 && c != 1 {
			t.Fatalf("cell %d holds %d, want 0 or 1", i, c)
		}
		if (c == 1) != (spins[i] == 1) {
			t.Fatalf("cell %d disagrees with spin %d", i, spins[i])
		}
		if c == 1 {
			ones++
		}
	}

	total := len(cells)
	want := float64(2*ones-total) / float64(total)
	if got := model.Magnetization(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Magnetization = %f, display buffer implies %f", got, want)
	}
}

func TestModelStepRunsConfiguredBatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 8
	cfg.TrialsPerTick = 100

	model := NewWithConfig(cfg)
	model.Reset(0)
	model.Step()

	if got := model.Trials(); got != 100 {
		t.Fatalf("Step ran %d trials, want 100", got)
	}
	if rate := model.AcceptanceRate(); rate < 0 || rate > 1 {
		t.Fatalf("acceptance rate %f outside [0, 1]", rate)
	}

	// Zero means one full lattice sweep per tick.
	cfg.TrialsPerTick = 0
	model = NewWithConfig(cfg)
	model.Reset(0)
	model.Step()
	if got := model.Trials(); got != 8*8 {
		t.Fatalf("default batch ran %d trials, want %d", got, 8*8)
	}
}

func TestModelSetFloatParameterTemperature(t *testing.T) {
	model := New(8)

	if !model.SetFloatParameter("temperature", 3.5) {
		t.Fatal("expected temperature to be adjustable")
	}
	if got := model.Temperature(); math.Abs(got-3.5) > 1e-9 {
		t.Fatalf("expected temperature 3.5, got %f", got)
	}

	// Values below the floor clamp instead of producing a zero divisor in
	// the acceptance rule.
	if !model.SetFloatParameter("temperature", -4) {
		t.Fatal("expected setter to clamp values below min")
	}
	if got := model.Temperature(); got < minTemperature-1e-12 {
		t.Fatalf("temperature %f fell below the floor", got)
	}

	if model.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
}

func TestFromMapParsesOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"n":    "64",
		"seed": "5",
		"t":    "1.25",
		"h":    "-0.5",
	})

	if cfg.N != 64 {
		t.Fatalf("n = %d, want 64", cfg.N)
	}
	if cfg.Seed != 5 {
		t.Fatalf("seed = %d, want 5", cfg.Seed)
	}
	if math.Abs(cfg.T-1.25) > 1e-12 {
		t.Fatalf("t = %f, want 1.25", cfg.T)
	}
	if math.Abs(cfg.H+0.5) > 1e-12 {
		t.Fatalf("h = %f, want -0.5", cfg.H)
	}

	// Invalid values keep the defaults.
	cfg = FromMap(map[string]string{"n": "-3", "t": "0"})
	defaults := DefaultConfig()
	if cfg.N != defaults.N || cfg.T != defaults.T {
		t.Fatal("invalid overrides must keep defaults")
	}
}

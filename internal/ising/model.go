package ising

import (
	"math/rand/v2"

	"ising-mc/internal/core"
)

const minTemperature = 0.01

// Model adapts the Metropolis dynamics to the interactive core.Sim contract.
// Unlike Simulate it has no fixed step count: each Step runs a bounded batch
// of trials reading the current temperature, so the run is open-ended and
// the temperature can be adjusted while it is in flight.
type Model struct {
	cfg Config

	lat     *Lattice
	rng     *rand.Rand
	display []uint8

	spinSum  int
	energy   float64
	trials   int64
	accepted int64
}

// New returns an interactive Ising model with the provided side length.
func New(n int) *Model {
	cfg := DefaultConfig()
	if n > 0 {
		cfg.N = n
	}
	return NewWithConfig(cfg)
}

// NewWithConfig returns an interactive Ising model with the provided options.
func NewWithConfig(cfg Config) *Model {
	if cfg.N <= 0 {
		cfg.N = DefaultConfig().N
	}
	if cfg.T <= 0 {
		cfg.T = DefaultConfig().T
	}
	m := &Model{
		cfg:     cfg,
		rng:     rand.New(rand.NewPCG(uint64(cfg.Seed), 0)),
		display: make([]uint8, cfg.N*cfg.N),
	}
	m.rebuild()
	return m
}

// Name returns the simulation identifier.
func (m *Model) Name() string { return "ising" }

// Size reports the grid dimensions.
func (m *Model) Size() core.Size { return core.Size{W: m.cfg.N, H: m.cfg.N} }

// Cells exposes the display buffer: 1 for spin up, 0 for spin down.
func (m *Model) Cells() []uint8 { return m.display }

// Lattice exposes the underlying spin grid.
func (m *Model) Lattice() *Lattice { return m.lat }

// Reset redraws the lattice using deterministic randomness. A zero seed
// falls back to the configured seed.
func (m *Model) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = m.cfg.Seed
	}
	m.rng = rand.New(rand.NewPCG(uint64(effective), 0))
	m.rebuild()
}

func (m *Model) rebuild() {
	lat, err := NewLattice(m.cfg.N, m.rng)
	if err != nil {
		// N is clamped positive in the constructors.
		panic(err)
	}
	m.lat = lat
	m.spinSum = lat.SumAll()
	m.energy = 0
	m.trials = 0
	m.accepted = 0
	for i, s := range lat.Spins() {
		m.display[i] = spinCell(s)
	}
}

// TrialsPerTick returns the effective per-tick trial budget.
func (m *Model) TrialsPerTick() int {
	if m.cfg.TrialsPerTick <= 0 {
		return m.cfg.N * m.cfg.N
	}
	return m.cfg.TrialsPerTick
}

// Step runs one batch of Metropolis trials at the current temperature.
func (m *Model) Step() {
	batch := m.TrialsPerTick()
	for k := 0; k < batch; k++ {
		row, col, dE, ok := trial(m.lat, m.rng, m.cfg.H, m.cfg.J, m.cfg.T)
		m.trials++
		if !ok {
			continue
		}
		m.accepted++
		m.energy += dE
		s := m.lat.At(row, col)
		m.spinSum += 2 * int(s)
		m.display[row*m.cfg.N+col] = spinCell(s)
	}
}

func spinCell(s int8) uint8 {
	if s > 0 {
		return 1
	}
	return 0
}

// Temperature returns the current temperature.
func (m *Model) Temperature() float64 { return m.cfg.T }

// Magnetization returns the instantaneous mean spin value.
func (m *Model) Magnetization() float64 {
	return float64(m.spinSum) / float64(m.cfg.N*m.cfg.N)
}

// Energy returns the cumulative energy change since the last reset.
func (m *Model) Energy() float64 { return m.energy }

// Trials returns the number of trials attempted since the last reset.
func (m *Model) Trials() int64 { return m.trials }

// AcceptanceRate returns the fraction of trials accepted since the last
// reset.
func (m *Model) AcceptanceRate() float64 {
	if m.trials == 0 {
		return 0
	}
	return float64(m.accepted) / float64(m.trials)
}

// ParameterControls exposes the HUD-adjustable controls.
func (m *Model) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "temperature", Label: "Temperature", Type: core.ParamTypeFloat, Step: 0.05, Min: minTemperature, HasMin: true},
		{Key: "field", Label: "Field H", Type: core.ParamTypeFloat, Step: 0.05},
		{Key: "coupling", Label: "Coupling J", Type: core.ParamTypeFloat, Step: 0.1},
		{Key: "trials_per_tick", Label: "Trials/tick", Type: core.ParamTypeInt, Step: 1024, Min: 0, HasMin: true},
	}
}

// SetFloatParameter updates a float control, clamping to its bounds.
func (m *Model) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "temperature":
		if value < minTemperature {
			value = minTemperature
		}
		m.cfg.T = value
		return true
	case "field":
		m.cfg.H = value
		return true
	case "coupling":
		m.cfg.J = value
		return true
	}
	return false
}

// SetIntParameter updates an integer control.
func (m *Model) SetIntParameter(key string, value int) bool {
	if key != "trials_per_tick" {
		return false
	}
	if value < 0 {
		value = 0
	}
	m.cfg.TrialsPerTick = value
	return true
}

func init() {
	core.Register("ising", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}

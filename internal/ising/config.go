package ising

import "strconv"

// Config controls the interactive Ising simulation.
type Config struct {
	N    int
	Seed int64

	// TrialsPerTick bounds how many Metropolis trials run per scheduling
	// tick. Zero means one full lattice sweep (N²) per tick.
	TrialsPerTick int

	H float64
	J float64
	T float64
}

// DefaultConfig returns the standard interactive configuration.
func DefaultConfig() Config {
	return Config{
		N:    128,
		Seed: 1337,
		J:    1,
		T:    CriticalTemperature,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.N = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["trials_per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TrialsPerTick = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.H = parsed
		}
	}
	if v, ok := cfg["j"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.J = parsed
		}
	}
	if v, ok := cfg["t"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.T = parsed
		}
	}
	return c
}

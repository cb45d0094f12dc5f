package app

import "flag"

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim   string
	Size  int
	Scale int
	TPS   int
	Seed  int64
	Temp  float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "ising", Size: 128, Scale: 4, TPS: 60, Seed: 42, Temp: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Size, "n", c.Size, "lattice side length")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Temp, "temp", c.Temp, "initial temperature (0 keeps the sim default)")
}

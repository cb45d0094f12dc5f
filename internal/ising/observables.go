package ising

import (
	"math"

	"github.com/montanaflynn/stats"
)

// CriticalTemperature is Onsager's exact critical temperature for the 2D
// square-lattice Ising model, 2/ln(1+√2) ≈ 2.2692.
var CriticalTemperature = 2 / math.Log(1+math.Sqrt2)

// MeanAbsMagnetization returns the absolute value of the mean of the
// magnetization series. Note this is |mean|, not mean(|·|): near the
// critical temperature the magnetization sign is symmetric and the two
// differ.
func MeanAbsMagnetization(series []float64) (float64, error) {
	m, err := stats.Mean(series)
	if err != nil {
		return 0, err
	}
	return math.Abs(m), nil
}

// Susceptibility returns the fluctuation-dissipation estimator
// (1/T)·(⟨m²⟩ − ⟨m⟩²), the population variance of the magnetization series
// scaled by inverse temperature. It is non-negative for every finite series.
func Susceptibility(series []float64, temperature float64) (float64, error) {
	if temperature <= 0 {
		return 0, ErrInvalidTemperature
	}
	v, err := stats.PopulationVariance(series)
	if err != nil {
		return 0, err
	}
	return v / temperature, nil
}

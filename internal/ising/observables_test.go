package ising

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ising-mc/pkg/core"
)

func TestCriticalTemperatureOnsager(t *testing.T) {
	require.InDelta(t, 2.269185, CriticalTemperature, 1e-6)
}

func TestMeanAbsMagnetizationIsAbsOfMean(t *testing.T) {
	// A sign-symmetric series must reduce to zero: the estimator is the
	// absolute value of the mean, not the mean of absolute values.
	m, err := MeanAbsMagnetization([]float64{0.5, -0.5})
	require.NoError(t, err)
	require.Zero(t, m)

	m, err = MeanAbsMagnetization([]float64{-0.25, -0.75})
	require.NoError(t, err)
	require.InDelta(t, 0.5, m, 1e-12)
}

func TestMeanAbsMagnetizationEmptySeries(t *testing.T) {
	_, err := MeanAbsMagnetization(nil)
	require.Error(t, err)
}

func TestSusceptibilityKnownValues(t *testing.T) {
	// A constant series carries no fluctuations.
	chi, err := Susceptibility([]float64{0.3, 0.3, 0.3}, 1.5)
	require.NoError(t, err)
	require.InDelta(t, 0, chi, 1e-12)

	// Population variance of {1, -1} is 1; scaled by 1/T.
	chi, err = Susceptibility([]float64{1, -1}, 2)
	require.NoError(t, err)
	require.InDelta(t, 0.5, chi, 1e-12)
}

func TestSusceptibilityRejectsBadTemperature(t *testing.T) {
	_, err := Susceptibility([]float64{0.1, 0.2}, 0)
	require.ErrorIs(t, err, ErrInvalidTemperature)

	_, err = Susceptibility([]float64{0.1, 0.2}, -1)
	require.ErrorIs(t, err, ErrInvalidTemperature)
}

func TestSusceptibilityNonNegative(t *testing.T) {
	rng := core.NewRNG(9)
	for trial := 0; trial < 50; trial++ {
		series := make([]float64, 200)
		for i := range series {
			series[i] = rng.Float64()*2 - 1
		}
		chi, err := Susceptibility(series, 0.1+rng.Float64()*5)
		require.NoError(t, err)
		require.GreaterOrEqual(t, chi, 0.0)
	}
}

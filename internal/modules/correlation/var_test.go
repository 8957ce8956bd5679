package correlation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeVaRConstantReturns(t *testing.T) {
	// 41 prices -> 40 observations of a constant -1% daily return. Every
	// percentile of a constant series is that constant, and volatility is
	// zero.
	prices := trending(41, 100, -0.01)

	result := ComputeVaR([][]float64{prices}, []float64{1.0}, 1_000_000, nil)

	require.Equal(t, 40, result.Observations)

	for _, key := range []string{"0.95", "0.99"} {
		daily, ok := result.DailyVaR[key]
		require.True(t, ok, "confidence key %s", key)
		assert.InDelta(t, -0.01, daily, 1e-9)
		assert.InDelta(t, -0.01*math.Sqrt(21), result.MonthlyVaR[key], 1e-9)
		assert.InDelta(t, -0.01*1_000_000, result.DailyVaRAmount[key], 1e-3)
	}

	assert.InDelta(t, 0.0, result.AnnualizedVol, 1e-12)
}

func TestComputeVaRWeightedPortfolio(t *testing.T) {
	up := trending(41, 100, 0.01)
	down := trending(41, 100, -0.01)

	result := ComputeVaR([][]float64{up, down}, []float64{0.5, 0.5}, 0, []float64{0.95})

	// 0.5*(+1%) + 0.5*(-1%) = 0 every day.
	assert.InDelta(t, 0.0, result.DailyVaR["0.95"], 1e-9)
	assert.Empty(t, result.DailyVaRAmount, "no amounts without a portfolio value")
}

func TestComputeVaRInsufficientObservations(t *testing.T) {
	short := trending(20, 100, -0.01)

	result := ComputeVaR([][]float64{short}, []float64{1.0}, 1_000_000, nil)

	assert.Zero(t, result.Observations)
	assert.Empty(t, result.DailyVaR)
	assert.Zero(t, result.AnnualizedVol)
}

func TestComputeVaRMismatchedInput(t *testing.T) {
	result := ComputeVaR([][]float64{trending(41, 100, 0.01)}, []float64{0.5, 0.5}, 0, nil)

	assert.Zero(t, result.Observations)
	assert.Empty(t, result.DailyVaR)
}

func TestComputeVaRAlignsOnShortestTail(t *testing.T) {
	long := trending(101, 100, -0.01)
	short := trending(41, 100, -0.01)

	result := ComputeVaR([][]float64{long, short}, []float64{0.5, 0.5}, 0, []float64{0.95})

	assert.Equal(t, 40, result.Observations)
	assert.InDelta(t, -0.01, result.DailyVaR["0.95"], 1e-9)
}

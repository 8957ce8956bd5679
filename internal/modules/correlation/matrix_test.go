package correlation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trending builds a price series of n steps with a constant per-step drift.
func trending(n int, start, drift float64) []float64 {
	prices := make([]float64, n)
	prices[0] = start
	for i := 1; i < n; i++ {
		prices[i] = prices[i-1] * (1 + drift)
	}
	return prices
}

func TestComputeMatrixProperties(t *testing.T) {
	symbols := []string{"A", "B", "C"}
	histories := [][]float64{
		trending(60, 100, 0.01),
		trending(60, 50, 0.01),
		trending(60, 200, -0.01),
	}

	result := ComputeMatrix(symbols, histories)

	require.Len(t, result.Matrix, 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, result.Matrix[i][i], "unit diagonal")
		for j := 0; j < 3; j++ {
			assert.Equal(t, result.Matrix[i][j], result.Matrix[j][i], "symmetry")
		}
	}

	// A and B move in lockstep.
	assert.InDelta(t, 1.0, result.Matrix[0][1], 1e-6)
}

func TestComputeMatrixInsufficientOverlap(t *testing.T) {
	result := ComputeMatrix(
		[]string{"A", "B"},
		[][]float64{trending(60, 100, 0.01), trending(20, 100, 0.01)},
	)

	assert.True(t, math.IsNaN(result.Matrix[0][1]), "short overlap should be NaN")
	assert.Equal(t, 1.0, result.Matrix[0][0])
}

func TestComputeMatrixZeroVariance(t *testing.T) {
	flat := make([]float64, 60)
	for i := range flat {
		flat[i] = 100
	}

	result := ComputeMatrix(
		[]string{"FLAT", "TREND"},
		[][]float64{flat, trending(60, 100, 0.01)},
	)

	assert.Equal(t, 0.0, result.Matrix[0][1], "zero variance forces 0, not NaN")
}

func TestMatrixResultJSON(t *testing.T) {
	result := MatrixResult{
		Symbols: []string{"A", "B"},
		Matrix: [][]float64{
			{1.0, math.NaN()},
			{math.NaN(), 1.0},
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), "null", "NaN entries serialize as null")

	var decoded struct {
		Matrix [][]*float64 `json:"matrix"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded.Matrix[0][1])
	assert.Equal(t, 1.0, *decoded.Matrix[0][0])
}

func TestFindHighCorrelationPairs(t *testing.T) {
	result := MatrixResult{
		Symbols: []string{"A", "B", "C", "D"},
		Matrix: [][]float64{
			{1.0, 0.95, 0.30, -0.80},
			{0.95, 1.0, 0.75, math.NaN()},
			{0.30, 0.75, 1.0, 0.10},
			{-0.80, math.NaN(), 0.10, 1.0},
		},
	}

	pairs := FindHighCorrelationPairs(result, 0.70)

	require.Len(t, pairs, 3)

	// Sorted by descending strength.
	assert.Equal(t, "A", pairs[0].SymbolA)
	assert.Equal(t, "B", pairs[0].SymbolB)
	assert.Equal(t, LabelVeryStrongPositive, pairs[0].Label)

	assert.InDelta(t, -0.80, pairs[1].Correlation, 1e-9)
	assert.Equal(t, LabelStrongInverse, pairs[1].Label)

	assert.InDelta(t, 0.75, pairs[2].Correlation, 1e-9)
	assert.Equal(t, LabelStrongPositive, pairs[2].Label)
}

func TestLabelCorrelation(t *testing.T) {
	tests := []struct {
		r     float64
		label string
	}{
		{0.95, LabelVeryStrongPositive},
		{0.85, LabelVeryStrongPositive},
		{0.84, LabelStrongPositive},
		{0.70, LabelStrongPositive},
		{-0.70, LabelStrongInverse},
		{-0.95, LabelStrongInverse},
		// Reachable only when the caller lowers the scan threshold.
		{0.50, LabelInverse},
		{-0.50, LabelInverse},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, labelCorrelation(tt.r), "r=%v", tt.r)
	}
}

func TestFindHighCorrelationPairsLoweredThreshold(t *testing.T) {
	result := MatrixResult{
		Symbols: []string{"A", "B"},
		Matrix: [][]float64{
			{1.0, 0.50},
			{0.50, 1.0},
		},
	}

	pairs := FindHighCorrelationPairs(result, 0.40)

	require.Len(t, pairs, 1)
	assert.Equal(t, LabelInverse, pairs[0].Label)
}

package correlation

import (
	"math"
	"sort"

	"github.com/aikawa/riskcore/pkg/formulas"
)

// minOverlap is the minimum number of overlapping daily returns required
// before a pairwise correlation is trusted.
const minOverlap = 30

// ComputeMatrix builds the pairwise correlation matrix over the holdings'
// return series. Series are aligned on their most recent overlapping
// window. Pairs with fewer than minOverlap overlapping returns get NaN;
// a pair where either side has zero variance gets 0.
func ComputeMatrix(symbols []string, priceHistories [][]float64) MatrixResult {
	n := len(symbols)
	returns := make([][]float64, n)
	for i := range priceHistories {
		returns[i] = formulas.DailyReturns(priceHistories[i])
	}

	window := 0
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r, overlap := pairCorrelation(returns[i], returns[j])
			matrix[i][j] = r
			matrix[j][i] = r
			if overlap > window {
				window = overlap
			}
		}
	}

	return MatrixResult{Symbols: symbols, Matrix: matrix, Window: window}
}

// pairCorrelation correlates the trailing overlap of two return series.
func pairCorrelation(a, b []float64) (float64, int) {
	overlap := len(a)
	if len(b) < overlap {
		overlap = len(b)
	}
	if overlap < minOverlap {
		return math.NaN(), overlap
	}

	tailA := a[len(a)-overlap:]
	tailB := b[len(b)-overlap:]

	if formulas.StdDev(tailA) == 0 || formulas.StdDev(tailB) == 0 {
		return 0, overlap
	}

	r := formulas.Correlation(tailA, tailB)
	if math.IsNaN(r) {
		return 0, overlap
	}
	return r, overlap
}

// FindHighCorrelationPairs scans the matrix for pairs whose absolute
// correlation meets the threshold, sorted by descending strength.
func FindHighCorrelationPairs(result MatrixResult, threshold float64) []Pair {
	var pairs []Pair
	for i := 0; i < len(result.Symbols); i++ {
		for j := i + 1; j < len(result.Symbols); j++ {
			r := result.Matrix[i][j]
			if math.IsNaN(r) || math.Abs(r) < threshold {
				continue
			}
			pairs = append(pairs, Pair{
				SymbolA:     result.Symbols[i],
				SymbolB:     result.Symbols[j],
				Correlation: r,
				Label:       labelCorrelation(r),
			})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].Correlation) > math.Abs(pairs[j].Correlation)
	})
	return pairs
}

func labelCorrelation(r float64) string {
	switch {
	case r >= 0.85:
		return LabelVeryStrongPositive
	case r >= 0.70:
		return LabelStrongPositive
	case r <= -0.70:
		return LabelStrongInverse
	default:
		return LabelInverse
	}
}

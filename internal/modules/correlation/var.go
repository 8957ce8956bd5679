package correlation

import (
	"math"
	"strconv"

	"github.com/aikawa/riskcore/pkg/formulas"
)

// DefaultConfidenceLevels used when the caller supplies none.
var DefaultConfidenceLevels = []float64{0.95, 0.99}

// ComputeVaR estimates historical value-at-risk for the portfolio.
//
// Per-holding return series are aligned on the shortest overlapping tail
// and combined into a weighted daily portfolio return series. VaR at
// confidence c is the (1-c)th percentile of that series; monthly VaR
// scales by sqrt(21). Fewer than minOverlap observations yields an empty
// result. portfolioValue of 0 skips currency amounts.
func ComputeVaR(priceHistories [][]float64, weights []float64, portfolioValue float64, confidenceLevels []float64) VaRResult {
	if len(confidenceLevels) == 0 {
		confidenceLevels = DefaultConfidenceLevels
	}

	empty := VaRResult{
		DailyVaR:         map[string]float64{},
		MonthlyVaR:       map[string]float64{},
		DailyVaRAmount:   map[string]float64{},
		MonthlyVaRAmount: map[string]float64{},
		PortfolioValue:   portfolioValue,
	}

	if len(priceHistories) == 0 || len(priceHistories) != len(weights) {
		return empty
	}

	returns := make([][]float64, len(priceHistories))
	window := math.MaxInt
	for i, prices := range priceHistories {
		returns[i] = formulas.DailyReturns(prices)
		if len(returns[i]) < window {
			window = len(returns[i])
		}
	}
	if window < minOverlap {
		return empty
	}

	portfolio := make([]float64, window)
	for i, r := range returns {
		tail := r[len(r)-window:]
		for t := 0; t < window; t++ {
			portfolio[t] += weights[i] * tail[t]
		}
	}

	result := VaRResult{
		DailyVaR:         make(map[string]float64, len(confidenceLevels)),
		MonthlyVaR:       make(map[string]float64, len(confidenceLevels)),
		DailyVaRAmount:   make(map[string]float64, len(confidenceLevels)),
		MonthlyVaRAmount: make(map[string]float64, len(confidenceLevels)),
		AnnualizedVol:    formulas.AnnualizedVolatility(portfolio),
		PortfolioValue:   portfolioValue,
		Observations:     window,
	}

	for _, c := range confidenceLevels {
		key := strconv.FormatFloat(c, 'g', -1, 64)
		daily := formulas.Percentile(portfolio, 1.0-c)
		monthly := daily * math.Sqrt(21)

		result.DailyVaR[key] = daily
		result.MonthlyVaR[key] = monthly
		if portfolioValue > 0 {
			result.DailyVaRAmount[key] = daily * portfolioValue
			result.MonthlyVaRAmount[key] = monthly * portfolioValue
		}
	}

	return result
}

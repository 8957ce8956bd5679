package correlation

import (
	"encoding/json"
	"math"
)

// MatrixResult is a symmetric correlation matrix over the given symbols.
// Entries with insufficient overlapping history are NaN and serialize as
// null.
type MatrixResult struct {
	Symbols []string
	Matrix  [][]float64
	Window  int
}

// MarshalJSON emits NaN matrix entries as null so the result stays valid
// JSON.
func (r MatrixResult) MarshalJSON() ([]byte, error) {
	matrix := make([][]*float64, len(r.Matrix))
	for i, row := range r.Matrix {
		out := make([]*float64, len(row))
		for j := range row {
			if !math.IsNaN(row[j]) {
				v := row[j]
				out[j] = &v
			}
		}
		matrix[i] = out
	}
	return json.Marshal(struct {
		Symbols []string     `json:"symbols"`
		Matrix  [][]*float64 `json:"matrix"`
		Window  int          `json:"window"`
	}{r.Symbols, matrix, r.Window})
}

// Correlation strength labels, from the pair-scan thresholds.
const (
	LabelVeryStrongPositive = "very_strong_positive"
	LabelStrongPositive     = "strong_positive"
	LabelStrongInverse      = "strong_inverse"
	LabelInverse            = "inverse"
)

// Pair is one high-correlation holding pair flagged by the scan.
type Pair struct {
	SymbolA     string  `json:"symbol_a"`
	SymbolB     string  `json:"symbol_b"`
	Correlation float64 `json:"correlation"`
	Label       string  `json:"label"`
}

// FactorExposure is one macro factor's regression outcome for a
// portfolio.
type FactorExposure struct {
	Factor       string  `json:"factor"`
	Beta         float64 `json:"beta"`
	Contribution float64 `json:"contribution"`
}

// FactorResult is the macro factor decomposition of portfolio returns.
// An empty Exposures slice means the regression was not possible.
type FactorResult struct {
	Exposures   []FactorExposure `json:"exposures"`
	RSquared    float64          `json:"r_squared"`
	ResidualStd float64          `json:"residual_std"`
	Window      int              `json:"window"`
}

// VaRResult is the historical value-at-risk summary. Maps are keyed by
// the formatted confidence level, e.g. "0.95".
type VaRResult struct {
	DailyVaR         map[string]float64 `json:"daily_var"`
	MonthlyVaR       map[string]float64 `json:"monthly_var"`
	DailyVaRAmount   map[string]float64 `json:"daily_var_amount"`
	MonthlyVaRAmount map[string]float64 `json:"monthly_var_amount"`
	AnnualizedVol    float64            `json:"annualized_volatility"`
	PortfolioValue   float64            `json:"portfolio_value"`
	Observations     int                `json:"observations"`
}

package correlation

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/aikawa/riskcore/pkg/formulas"
)

// FactorSeries is one macro factor's price history, keyed by the quote
// symbol it was fetched under.
type FactorSeries struct {
	Symbol string    `json:"symbol"`
	Prices []float64 `json:"prices"`
}

// DefaultMacroFactors is the fixed factor set used for return
// decomposition: the reporting FX pair, two equity indices, crude oil and
// a rate proxy.
var DefaultMacroFactors = []string{"USDJPY=X", "^N225", "^GSPC", "CL=F", "^TNX"}

// DecomposeReturns regresses a return series against the macro factors
// via ordinary least squares with an intercept. Factors with zero
// variance over the aligned window are dropped. Exposures come back
// sorted by descending absolute contribution, where contribution is
// |beta| x factor stdev / series stdev. Insufficient or degenerate data
// yields an empty result rather than an error.
func DecomposeReturns(prices []float64, factors []FactorSeries) FactorResult {
	y := formulas.DailyReturns(prices)

	type alignedFactor struct {
		symbol  string
		returns []float64
	}
	aligned := make([]alignedFactor, 0, len(factors))
	window := len(y)
	for _, f := range factors {
		r := formulas.DailyReturns(f.Prices)
		aligned = append(aligned, alignedFactor{symbol: f.Symbol, returns: r})
		if len(r) < window {
			window = len(r)
		}
	}

	if window < minOverlap || len(aligned) == 0 {
		return FactorResult{Exposures: []FactorExposure{}}
	}

	y = y[len(y)-window:]

	// Drop zero-variance factors before building the design matrix.
	kept := aligned[:0]
	for _, f := range aligned {
		tail := f.returns[len(f.returns)-window:]
		if formulas.StdDev(tail) == 0 {
			continue
		}
		kept = append(kept, alignedFactor{symbol: f.symbol, returns: tail})
	}
	if len(kept) == 0 {
		return FactorResult{Exposures: []FactorExposure{}}
	}

	cols := len(kept) + 1
	design := mat.NewDense(window, cols, nil)
	for i := 0; i < window; i++ {
		design.Set(i, 0, 1.0)
		for j, f := range kept {
			design.Set(i, j+1, f.returns[i])
		}
	}
	target := mat.NewVecDense(window, y)

	var qr mat.QR
	qr.Factorize(design)
	coef := mat.NewVecDense(cols, nil)
	if err := qr.SolveVecTo(coef, false, target); err != nil {
		return FactorResult{Exposures: []FactorExposure{}}
	}

	fitted := mat.NewVecDense(window, nil)
	fitted.MulVec(design, coef)

	yMean := formulas.Mean(y)
	ssRes, ssTot := 0.0, 0.0
	for i := 0; i < window; i++ {
		resid := y[i] - fitted.AtVec(i)
		ssRes += resid * resid
		dev := y[i] - yMean
		ssTot += dev * dev
	}

	rSquared := 0.0
	if ssTot > 0 {
		rSquared = 1.0 - ssRes/ssTot
		if rSquared < 0 {
			rSquared = 0
		}
	}

	// With an intercept the residuals have zero mean, so their standard
	// deviation reduces to sqrt(ssRes/n). Stays in return units.
	residualStd := math.Sqrt(ssRes / float64(window))

	yStd := formulas.StdDev(y)
	exposures := make([]FactorExposure, 0, len(kept))
	for j, f := range kept {
		beta := coef.AtVec(j + 1)
		contribution := 0.0
		if yStd > 0 {
			contribution = math.Abs(beta) * formulas.StdDev(f.returns) / yStd
		}
		exposures = append(exposures, FactorExposure{
			Factor:       f.symbol,
			Beta:         beta,
			Contribution: contribution,
		})
	}

	sort.Slice(exposures, func(i, j int) bool {
		return math.Abs(exposures[i].Contribution) > math.Abs(exposures[j].Contribution)
	})

	return FactorResult{
		Exposures:   exposures,
		RSquared:    rSquared,
		ResidualStd: residualStd,
		Window:      window,
	}
}

package concentration

import (
	"github.com/aikawa/riskcore/internal/domain"
)

const unknownLabel = "Unknown"

// Analyzer performs multi-axis concentration analysis.
type Analyzer struct{}

// NewAnalyzer creates a new concentration analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// ComputeHHI computes the Herfindahl-Hirschman Index for a set of weights.
//
// HHI = sum(w_i^2). Range: 1/N (perfectly diversified) to 1.0
// (single-asset concentration). Empty input yields 0.
func ComputeHHI(weights []float64) float64 {
	hhi := 0.0
	for _, w := range weights {
		hhi += w * w
	}
	return hhi
}

// Multiplier derives a concentration multiplier from an HHI value.
//
// Mapping:
//   - HHI < 0.25       -> 1.0 (well diversified, no amplification)
//   - HHI 0.25 .. 0.50 -> 1.0 .. 1.3 (linear)
//   - HHI 0.50 .. 1.00 -> 1.3 .. 1.6 (linear, capped at 1.6)
func Multiplier(hhi float64) float64 {
	if hhi < 0.25 {
		return 1.0
	}
	if hhi <= 0.50 {
		return 1.0 + (hhi-0.25)/(0.50-0.25)*(1.3-1.0)
	}
	multiplier := 1.3 + (hhi-0.50)/(1.00-0.50)*(1.6-1.3)
	if multiplier > 1.6 {
		return 1.6
	}
	return multiplier
}

// axisHHI groups portfolio weights by the label function and computes the
// HHI of the grouped weights.
func axisHHI(holdings []domain.Holding, weights []float64, label func(domain.Holding) string) (float64, map[string]float64) {
	breakdown := make(map[string]float64)
	for i, h := range holdings {
		if i >= len(weights) {
			break
		}
		l := label(h)
		if l == "" {
			l = unknownLabel
		}
		breakdown[l] += weights[i]
	}

	groupWeights := make([]float64, 0, len(breakdown))
	for _, w := range breakdown {
		groupWeights = append(groupWeights, w)
	}

	return ComputeHHI(groupWeights), breakdown
}

func classifyRiskLevel(hhi float64) string {
	if hhi < 0.25 {
		return RiskDiversified
	}
	if hhi < 0.50 {
		return RiskSomewhatConcentrated
	}
	return RiskDangerouslyConcentrated
}

// allUnknown reports whether every grouped weight landed on the default label.
func allUnknown(breakdown map[string]float64) bool {
	if len(breakdown) != 1 {
		return false
	}
	_, ok := breakdown[unknownLabel]
	return ok
}

// Analyze evaluates concentration along sector, region and currency axes,
// then identifies the most concentrated axis and derives the shock
// multiplier and risk label from it.
//
// The region axis tries the country field first; if everything resolved to
// Unknown it retries with the region field.
func (a *Analyzer) Analyze(holdings []domain.Holding, weights []float64) Result {
	sectorHHI, sectorBreakdown := axisHHI(holdings, weights, func(h domain.Holding) string {
		return h.Sector
	})

	regionHHI, regionBreakdown := axisHHI(holdings, weights, func(h domain.Holding) string {
		return h.Country
	})
	if allUnknown(regionBreakdown) {
		regionHHI, regionBreakdown = axisHHI(holdings, weights, func(h domain.Holding) string {
			return h.Region
		})
	}

	currencyHHI, currencyBreakdown := axisHHI(holdings, weights, func(h domain.Holding) string {
		return h.Currency
	})

	maxAxis := AxisSector
	maxHHI := sectorHHI
	if regionHHI > maxHHI {
		maxAxis = AxisRegion
		maxHHI = regionHHI
	}
	if currencyHHI > maxHHI {
		maxAxis = AxisCurrency
		maxHHI = currencyHHI
	}

	return Result{
		SectorHHI:         sectorHHI,
		RegionHHI:         regionHHI,
		CurrencyHHI:       currencyHHI,
		MaxHHI:            maxHHI,
		MaxHHIAxis:        maxAxis,
		Multiplier:        Multiplier(maxHHI),
		SectorBreakdown:   sectorBreakdown,
		RegionBreakdown:   regionBreakdown,
		CurrencyBreakdown: currencyBreakdown,
		RiskLevel:         classifyRiskLevel(maxHHI),
	}
}

package sensitivity

import (
	"fmt"

	"github.com/aikawa/riskcore/internal/domain"
)

// DefaultBaseShock is the hypothetical market-wide shock used when the
// caller does not supply one.
const DefaultBaseShock = -0.20

// Scorer runs the layered shock-sensitivity analysis: fundamental score,
// technical score, externally supplied concentration multiplier, and the
// integrated shock that combines them.
type Scorer struct{}

// NewScorer creates a new shock-sensitivity scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// ClassifyQuadrant places a holding on the fundamental x technical grid.
//
// Fundamental above 1.2 is vulnerable, below 1.0 sound; technical above
// 1.2 is overbought, below 0.9 oversold. Anything that does not land in a
// corner is neutral.
func ClassifyQuadrant(fundamentalScore, technicalScore float64) Quadrant {
	fVulnerable := fundamentalScore > 1.2
	fSound := fundamentalScore < 1.0
	tOverbought := technicalScore > 1.2
	tOversold := technicalScore < 0.9

	switch {
	case fVulnerable && tOverbought:
		return Quadrant{
			Name:        QuadrantMostDangerous,
			Description: "fundamentally vulnerable and technically overheated; largest downside risk in a shock",
		}
	case fVulnerable && tOversold:
		return Quadrant{
			Name:        QuadrantFloorRisk,
			Description: "fundamentally vulnerable and already sold off; risk of the floor giving way",
		}
	case fSound && tOverbought:
		return Quadrant{
			Name:        QuadrantShortTermRisk,
			Description: "fundamentally sound but technically overheated; watch for a short-term correction",
		}
	case fSound && tOversold:
		return Quadrant{
			Name:        QuadrantMostResilient,
			Description: "fundamentally sound and at oversold levels; highest shock resilience",
		}
	default:
		return Quadrant{
			Name:        QuadrantNeutral,
			Description: "middle zone that fits no clear quadrant",
		}
	}
}

// ComputeIntegratedShock combines the layers into a single adjusted shock:
// base_shock x fundamental x technical x concentration, with scores
// clamped to [0.5, 2.0] and the concentration multiplier floored at 0.5.
func ComputeIntegratedShock(baseShock, fundamentalScore, technicalScore, concentrationMultiplier float64) IntegratedShock {
	f := clamp(fundamentalScore, 0.5, 2.0)
	t := clamp(technicalScore, 0.5, 2.0)
	c := concentrationMultiplier
	if c < 0.5 {
		c = 0.5
	}

	return IntegratedShock{
		AdjustedShock:             baseShock * f * t * c,
		FundamentalContribution:   f,
		TechnicalContribution:     t,
		ConcentrationContribution: c,
		Quadrant:                  ClassifyQuadrant(f, t),
	}
}

// Analyze runs the complete shock-sensitivity analysis for one holding.
// The concentration multiplier comes from the concentration analyzer;
// 1.0 means no concentration effect.
func (s *Scorer) Analyze(h domain.Holding, concentrationMultiplier, baseShock float64) Result {
	fundamental := ComputeFundamental(h)
	technical := ComputeTechnical(h.PriceHistory, h.VolumeHistory)

	integrated := ComputeIntegratedShock(
		baseShock,
		fundamental.Score,
		technical.Score,
		concentrationMultiplier,
	)

	summary := fmt.Sprintf(
		"%s: fundamental=%.2f, technical=%.2f, concentration=%.2f -> adjusted shock %+.1f%% [%s]",
		h.Symbol,
		fundamental.Score,
		technical.Score,
		concentrationMultiplier,
		integrated.AdjustedShock*100,
		integrated.Quadrant.Name,
	)

	return Result{
		Symbol:      h.Symbol,
		Fundamental: fundamental,
		Technical:   technical,
		Integrated:  integrated,
		Summary:     summary,
	}
}

package scenario

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikawa/riskcore/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func testEngine(t *testing.T, defs []Definition) *Engine {
	t.Helper()
	catalog, err := NewCatalog(defs, nil)
	require.NoError(t, err)
	return NewEngine(catalog, "JPY", zerolog.Nop())
}

func TestComputeHoldingImpactBetaFallback(t *testing.T) {
	engine := testEngine(t, []Definition{{
		Key:       "crash",
		Name:      "Crash",
		BaseShock: -0.20,
		Primary:   []Effect{{Target: TargetBanks, Impact: -0.15, Reason: "credit stress"}},
	}})
	def, err := engine.Resolve("crash")
	require.NoError(t, err)

	// Technology holding matches nothing; falls back to base x beta.
	impact := engine.ComputeHoldingImpact(domain.Holding{
		Symbol:   "6758.T",
		Sector:   "Technology",
		Country:  "Japan",
		Currency: "JPY",
		Beta:     ptr(1.5),
	}, nil, def)

	assert.InDelta(t, -0.30, impact.DirectImpact, 1e-9)
	assert.Zero(t, impact.CurrencyImpact)
	assert.InDelta(t, -0.30, impact.TotalImpact, 1e-9)
	assert.NotEmpty(t, impact.CausalChain)
}

func TestComputeHoldingImpactMatchedEffectReplacesBaseline(t *testing.T) {
	engine := testEngine(t, []Definition{{
		Key:       "crash",
		Name:      "Crash",
		BaseShock: -0.20,
		Primary:   []Effect{{Target: TargetUSEquities, Impact: -0.12, Reason: "broad selloff"}},
	}})
	def, err := engine.Resolve("crash")
	require.NoError(t, err)

	// Beta 1.0 means the beta adjustment is exactly neutral: the matched
	// effect passes through unchanged.
	impact := engine.ComputeHoldingImpact(domain.Holding{
		Symbol:   "AAPL",
		Sector:   "Technology",
		Country:  "United States",
		Currency: "JPY",
		Beta:     ptr(1.0),
	}, nil, def)

	assert.InDelta(t, -0.12, impact.DirectImpact, 1e-9)
}

func TestComputeHoldingImpactAveragesMatches(t *testing.T) {
	engine := testEngine(t, []Definition{{
		Key:       "crash",
		Name:      "Crash",
		BaseShock: -0.20,
		Primary:   []Effect{{Target: TargetUSEquities, Impact: -0.10, Reason: "selloff"}},
		Secondary: []Effect{{Target: TargetTechStocks, Impact: -0.20, Reason: "multiple compression"}},
	}})
	def, err := engine.Resolve("crash")
	require.NoError(t, err)

	impact := engine.ComputeHoldingImpact(domain.Holding{
		Symbol:   "MSFT",
		Sector:   "Technology",
		Country:  "United States",
		Currency: "JPY",
		Beta:     ptr(2.0),
	}, nil, def)

	// mean(-0.10, -0.20) x (0.7 + 0.3*2.0)
	want := -0.15 * 1.3
	assert.InDelta(t, want, impact.DirectImpact, 1e-9)
}

func TestComputeHoldingImpactSensitivityScaling(t *testing.T) {
	engine := testEngine(t, []Definition{{
		Key:       "crash",
		Name:      "Crash",
		BaseShock: -0.20,
	}})
	def, err := engine.Resolve("crash")
	require.NoError(t, err)

	holding := domain.Holding{Symbol: "X", Currency: "JPY", Beta: ptr(1.0)}

	plain := engine.ComputeHoldingImpact(holding, nil, def)
	scaled := engine.ComputeHoldingImpact(holding, &SensitivityInput{CompositeShock: ptr(1.0)}, def)

	assert.InDelta(t, plain.DirectImpact*1.2, scaled.DirectImpact, 1e-9)

	// Zero composite is distinct from absent but changes nothing.
	zero := engine.ComputeHoldingImpact(holding, &SensitivityInput{CompositeShock: ptr(0.0)}, def)
	assert.InDelta(t, plain.DirectImpact, zero.DirectImpact, 1e-9)
}

func TestComputeHoldingImpactCurrencyEffect(t *testing.T) {
	engine := testEngine(t, []Definition{{
		Key:       "yen_surge",
		Name:      "Yen Surge",
		BaseShock: -0.10,
		Currency:  CurrencyEffect{FXChange: -10, ImpactOnForeign: -0.07},
	}})
	def, err := engine.Resolve("yen_surge")
	require.NoError(t, err)

	foreign := engine.ComputeHoldingImpact(domain.Holding{
		Symbol: "AAPL", Currency: "USD", Beta: ptr(1.0), Price: ptr(200.0),
	}, nil, def)
	domestic := engine.ComputeHoldingImpact(domain.Holding{
		Symbol: "7203.T", Currency: "JPY", Beta: ptr(1.0),
	}, nil, def)

	assert.InDelta(t, -0.07, foreign.CurrencyImpact, 1e-9)
	assert.Zero(t, domestic.CurrencyImpact)

	assert.InDelta(t, foreign.TotalImpact, foreign.DirectImpact-0.07, 1e-9)
	assert.InDelta(t, 200.0*foreign.TotalImpact, foreign.PriceImpact, 1e-9)
}

func TestAnalyzePortfolio(t *testing.T) {
	engine := testEngine(t, []Definition{{
		Key:       "crash",
		Name:      "Crash",
		Trigger:   "equities fall sharply",
		BaseShock: -0.20,
		Primary:   []Effect{{Target: TargetUSEquities, Impact: -0.12, Reason: "broad selloff"}},
		TimeAxis:  "weeks",
	}})
	def, err := engine.Resolve("crash")
	require.NoError(t, err)

	holdings := []domain.Holding{
		{Symbol: "AAPL", Country: "United States", Currency: "JPY", Beta: ptr(1.0)},
		{Symbol: "7203.T", Sector: "Consumer Cyclical", Country: "Japan", Currency: "JPY", Beta: ptr(1.0)},
		{Symbol: "8306.T", Sector: "Financial Services", Country: "Japan", Currency: "JPY", Beta: ptr(0.5)},
	}
	weights := []float64{0.5, 0.3, 0.2}

	result := engine.AnalyzePortfolio(holdings, nil, weights, def)

	require.Len(t, result.Holdings, 3)

	// The matched holding gets exactly the effect impact at beta 1.
	assert.InDelta(t, -0.12, result.Holdings[0].DirectImpact, 1e-9)
	// The others fall back to base x beta.
	assert.InDelta(t, -0.20, result.Holdings[1].TotalImpact, 1e-9)
	assert.InDelta(t, -0.10, result.Holdings[2].TotalImpact, 1e-9)

	wantPortfolio := 0.5*-0.12 + 0.3*-0.20 + 0.2*-0.10
	assert.InDelta(t, wantPortfolio, result.PortfolioImpact, 1e-9)
	assert.Equal(t, JudgmentContinue, result.Judgment)
	assert.Contains(t, result.CausalChainSummary, "equities fall sharply")
}

func TestAnalyzePortfolioFillsShortWeights(t *testing.T) {
	engine := testEngine(t, []Definition{{
		Key:       "crash",
		Name:      "Crash",
		BaseShock: -0.20,
	}})
	def, err := engine.Resolve("crash")
	require.NoError(t, err)

	holdings := []domain.Holding{
		{Symbol: "A", Currency: "JPY", Beta: ptr(1.0)},
		{Symbol: "B", Currency: "JPY", Beta: ptr(1.0)},
		{Symbol: "C", Currency: "JPY", Beta: ptr(1.0)},
	}

	// One explicit weight; the remaining 0.6 splits equally.
	result := engine.AnalyzePortfolio(holdings, nil, []float64{0.4}, def)

	require.Len(t, result.Holdings, 3)
	assert.InDelta(t, 0.4, result.Holdings[0].Weight, 1e-9)
	assert.InDelta(t, 0.3, result.Holdings[1].Weight, 1e-9)
	assert.InDelta(t, 0.3, result.Holdings[2].Weight, 1e-9)
}

func TestJudgmentThresholds(t *testing.T) {
	engine := testEngine(t, []Definition{{
		Key:       "crash",
		Name:      "Crash",
		BaseShock: -0.20,
	}})
	def, err := engine.Resolve("crash")
	require.NoError(t, err)

	tests := []struct {
		name string
		beta float64
		want string
	}{
		{"mild impact continues", 0.5, JudgmentContinue},
		{"moderate impact acknowledged", 1.0, JudgmentAcknowledge},
		{"severe impact requires action", 2.0, JudgmentActionRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holdings := []domain.Holding{{Symbol: "X", Currency: "JPY", Beta: ptr(tt.beta)}}
			result := engine.AnalyzePortfolio(holdings, nil, []float64{1.0}, def)
			assert.Equal(t, tt.want, result.Judgment)
		})
	}
}

func TestJudgmentBoundaries(t *testing.T) {
	// The step function is exact at its knees.
	engine := testEngine(t, []Definition{{
		Key:       "crash",
		Name:      "Crash",
		BaseShock: -0.30,
	}})
	def, err := engine.Resolve("crash")
	require.NoError(t, err)

	holdings := []domain.Holding{{Symbol: "X", Currency: "JPY", Beta: ptr(1.0)}}
	result := engine.AnalyzePortfolio(holdings, nil, []float64{1.0}, def)

	require.True(t, math.Abs(result.PortfolioImpact-(-0.30)) < 1e-12)
	assert.Equal(t, JudgmentActionRequired, result.Judgment)
}

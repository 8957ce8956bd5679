package scenario

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aikawa/riskcore/internal/domain"
)

// Engine computes scenario-conditioned portfolio impact with a causal
// explanation. It holds only immutable configuration and is safe for
// concurrent use.
type Engine struct {
	catalog *Catalog
	matcher *Matcher
	log     zerolog.Logger
}

// NewEngine creates a scenario impact engine over the given catalog.
func NewEngine(catalog *Catalog, reportingCurrency string, log zerolog.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		matcher: NewMatcher(reportingCurrency),
		log:     log.With().Str("component", "scenario").Logger(),
	}
}

// Catalog returns the engine's scenario catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Resolve finds a scenario definition by free-text name.
func (e *Engine) Resolve(name string) (Definition, error) {
	return e.catalog.Resolve(name)
}

// ComputeHoldingImpact computes one holding's impact under a scenario.
//
// The baseline is base_shock x beta. When scenario effects match the
// holding, the mean of their impacts replaces that baseline (the effects
// already embed the macro shock) with a dampened beta multiplier of
// 0.7 + 0.3*beta. An optionally supplied composite sensitivity scales the
// result by 1 + 0.2*composite. The currency effect applies only to
// holdings priced outside the reporting currency. The causal chain records
// each step for audit output and never influences control flow.
func (e *Engine) ComputeHoldingImpact(h domain.Holding, sens *SensitivityInput, def Definition) HoldingImpact {
	attrs := attrsFor(h)
	price := domain.SafeFloat(h.Price, 0)
	beta := domain.SafeFloat(h.Beta, 1.0)

	var chain []string

	betaImpact := def.BaseShock * beta
	chain = append(chain, fmt.Sprintf("base shock %+.1f%% x beta(%.2f) = %+.1f%%",
		def.BaseShock*100, beta, betaImpact*100))

	var matched []float64
	for _, group := range []struct {
		label   string
		effects []Effect
	}{
		{"primary", def.Primary},
		{"secondary", def.Secondary},
	} {
		for _, effect := range group.effects {
			if e.matcher.Matches(effect.Target, attrs) {
				matched = append(matched, effect.Impact)
				chain = append(chain, fmt.Sprintf("[%s] %s: %+.1f%% (%s)",
					group.label, effect.Target, effect.Impact*100, effect.Reason))
			}
		}
	}

	var directImpact float64
	if len(matched) > 0 {
		sum := 0.0
		for _, impact := range matched {
			sum += impact
		}
		avg := sum / float64(len(matched))

		// Matched effects replace the baseline rather than add to it;
		// beta only dampens: 1.0 at beta=1, 0.85 at beta=0.5, 1.30 at
		// beta=2.
		betaMultiplier := 0.7 + 0.3*beta
		directImpact = avg * betaMultiplier
		chain = append(chain, fmt.Sprintf("matched effects mean %+.1f%% x beta adj(%.2f) = %+.1f%%",
			avg*100, betaMultiplier, directImpact*100))
	} else {
		directImpact = betaImpact
		chain = append(chain, "no matching scenario effects; using base shock x beta")
	}

	if sens != nil {
		composite := domain.SafeFloat(sens.CompositeShock, 0)
		if composite != 0 {
			adjustment := composite * 0.2
			directImpact *= 1.0 + adjustment
			chain = append(chain, fmt.Sprintf("sensitivity adjustment: composite %+.2f -> impact x%.2f",
				composite, 1.0+adjustment))
		}
	}

	var currencyImpact float64
	if attrs.currency != e.matcher.reportingCurrency {
		currencyImpact = def.Currency.ImpactOnForeign
		if currencyImpact != 0 {
			chain = append(chain, fmt.Sprintf("currency effect: FX %+.0f -> foreign assets %+.1f%%",
				def.Currency.FXChange, currencyImpact*100))
		}
	}

	totalImpact := directImpact + currencyImpact
	priceImpact := price * totalImpact

	chain = append(chain, fmt.Sprintf("total: direct %+.1f%% + currency %+.1f%% = %+.1f%%",
		directImpact*100, currencyImpact*100, totalImpact*100))

	return HoldingImpact{
		Symbol:         h.Symbol,
		Name:           h.Name,
		DirectImpact:   directImpact,
		CurrencyImpact: currencyImpact,
		TotalImpact:    totalImpact,
		PriceImpact:    priceImpact,
		CausalChain:    chain,
	}
}

// AnalyzePortfolio computes the scenario impact across the whole
// portfolio.
//
// Short weight lists are filled by spreading the unallocated remainder
// equally over the missing entries; short sensitivity lists are treated as
// absent (neutral) for the remaining holdings.
func (e *Engine) AnalyzePortfolio(
	holdings []domain.Holding,
	sensitivities []*SensitivityInput,
	weights []float64,
	def Definition,
) PortfolioResult {
	n := len(holdings)

	if len(sensitivities) < n {
		padded := make([]*SensitivityInput, n)
		copy(padded, sensitivities)
		sensitivities = padded
	}

	if len(weights) < n {
		allocated := 0.0
		for _, w := range weights {
			allocated += w
		}
		remaining := 1.0 - allocated
		if remaining < 0 {
			remaining = 0
		}
		missing := n - len(weights)
		filled := make([]float64, 0, n)
		filled = append(filled, weights...)
		for i := 0; i < missing; i++ {
			filled = append(filled, remaining/float64(missing))
		}
		weights = filled
	}

	impacts := make([]HoldingImpact, 0, n)
	portfolioImpact := 0.0
	portfolioValueChange := 0.0

	for i, h := range holdings {
		impact := e.ComputeHoldingImpact(h, sensitivities[i], def)
		impact.Weight = weights[i]
		impact.Contribution = impact.TotalImpact * weights[i]
		impacts = append(impacts, impact)

		portfolioImpact += impact.TotalImpact * weights[i]
		portfolioValueChange += impact.PriceImpact * weights[i]
	}

	judgment := JudgmentContinue
	switch {
	case portfolioImpact <= -0.30:
		judgment = JudgmentActionRequired
	case portfolioImpact <= -0.15:
		judgment = JudgmentAcknowledge
	}

	e.log.Debug().
		Str("scenario", def.Key).
		Float64("portfolio_impact", portfolioImpact).
		Str("judgment", judgment).
		Int("holdings", n).
		Msg("Scenario analysis complete")

	return PortfolioResult{
		ScenarioKey:          def.Key,
		ScenarioName:         def.Name,
		Trigger:              def.Trigger,
		PortfolioImpact:      portfolioImpact,
		PortfolioValueChange: portfolioValueChange,
		Holdings:             impacts,
		CausalChainSummary:   summarizeChain(def, portfolioImpact),
		OffsetFactors:        def.Offsets,
		TimeAxis:             def.TimeAxis,
		Judgment:             judgment,
	}
}

// summarizeChain renders the scenario's causal chain as an ordered,
// human-readable block for audit output.
func summarizeChain(def Definition, portfolioImpact float64) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("trigger: %s", def.Trigger))
	lines = append(lines, fmt.Sprintf("base shock: %+.1f%%", def.BaseShock*100))

	for _, effect := range def.Primary {
		lines = append(lines, fmt.Sprintf("[primary] %s %+.1f%% (%s)",
			effect.Target, effect.Impact*100, effect.Reason))
	}
	for _, effect := range def.Secondary {
		lines = append(lines, fmt.Sprintf("[secondary] %s %+.1f%% (%s)",
			effect.Target, effect.Impact*100, effect.Reason))
	}

	if def.Currency.ImpactOnForeign != 0 || def.Currency.FXChange != 0 {
		lines = append(lines, fmt.Sprintf("[fx] %+.0f -> foreign assets %+.1f%%",
			def.Currency.FXChange, def.Currency.ImpactOnForeign*100))
	}

	lines = append(lines, fmt.Sprintf("portfolio impact: %+.1f%%", portfolioImpact*100))

	return strings.Join(lines, "\n")
}

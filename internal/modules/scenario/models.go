package scenario

// TargetKind is the closed set of categories a scenario effect can aim at.
// Matching semantics live in matcher.go; the order of evaluation there is
// fixed regardless of how effects are listed in a scenario.
type TargetKind string

const (
	// Currency-based targets
	TargetDomesticCurrency TargetKind = "domestic_currency"
	TargetAllForeignAssets TargetKind = "all_foreign_assets"

	// Asset-class targets (matched via ETF classification)
	TargetSafeHaven    TargetKind = "safe_haven"
	TargetLongBonds    TargetKind = "long_bonds"
	TargetEquityIncome TargetKind = "equity_income"

	// Region-based targets
	TargetJapanEquities TargetKind = "japan_equities"
	TargetUSEquities    TargetKind = "us_equities"
	TargetASEANEquities TargetKind = "asean_equities"
	TargetChinaLinked   TargetKind = "china_linked"

	// Region + sector compound targets
	TargetExporters      TargetKind = "exporters"
	TargetDomesticDemand TargetKind = "domestic_demand"

	// Sector-based targets
	TargetGrowthStocks   TargetKind = "growth_stocks"
	TargetBanks          TargetKind = "banks"
	TargetRealEstate     TargetKind = "real_estate"
	TargetHighDividend   TargetKind = "high_dividend"
	TargetCyclicals      TargetKind = "cyclicals"
	TargetDefensives     TargetKind = "defensives"
	TargetSemiconductors TargetKind = "semiconductors"
	TargetDefense        TargetKind = "defense"
	TargetEnergy         TargetKind = "energy"
	TargetMaterials      TargetKind = "materials"
	TargetConsumer       TargetKind = "consumer"
	TargetTechStocks     TargetKind = "tech_stocks"
	TargetNonTech        TargetKind = "non_tech"
)

var knownTargets = map[TargetKind]struct{}{
	TargetDomesticCurrency: {},
	TargetAllForeignAssets: {},
	TargetSafeHaven:        {},
	TargetLongBonds:        {},
	TargetEquityIncome:     {},
	TargetJapanEquities:    {},
	TargetUSEquities:       {},
	TargetASEANEquities:    {},
	TargetChinaLinked:      {},
	TargetExporters:        {},
	TargetDomesticDemand:   {},
	TargetGrowthStocks:     {},
	TargetBanks:            {},
	TargetRealEstate:       {},
	TargetHighDividend:     {},
	TargetCyclicals:        {},
	TargetDefensives:       {},
	TargetSemiconductors:   {},
	TargetDefense:          {},
	TargetEnergy:           {},
	TargetMaterials:        {},
	TargetConsumer:         {},
	TargetTechStocks:       {},
	TargetNonTech:          {},
}

// Valid reports whether the target kind is one of the closed set.
func (t TargetKind) Valid() bool {
	_, ok := knownTargets[t]
	return ok
}

// AssetClass classifies non-plain-equity holdings (ETFs) so that scenario
// effects on gold, bonds and income funds hit them instead of the broad
// equity targets.
type AssetClass string

const (
	AssetNone         AssetClass = ""
	AssetSafeHaven    AssetClass = "safe_haven"
	AssetLongBonds    AssetClass = "long_bonds"
	AssetEquityIncome AssetClass = "equity_income"
)

// Effect is one causal edge of a scenario: a target category, the impact
// fraction applied to matching holdings, and the narrative reason.
type Effect struct {
	Target TargetKind `json:"target" yaml:"target"`
	Impact float64    `json:"impact" yaml:"impact"`
	Reason string     `json:"reason" yaml:"reason"`
}

// CurrencyEffect describes the FX leg of a scenario: the assumed move in
// the reporting-currency pair and the resulting fractional impact on
// foreign-currency holdings.
type CurrencyEffect struct {
	FXChange        float64 `json:"fx_change" yaml:"fx_change"`
	ImpactOnForeign float64 `json:"impact_on_foreign" yaml:"impact_on_foreign"`
}

// Definition is one immutable scenario: trigger, base shock, ordered
// primary and secondary effects, FX leg, offsetting factors and time axis.
type Definition struct {
	Key       string         `json:"key" yaml:"-"`
	Name      string         `json:"name" yaml:"name"`
	Trigger   string         `json:"trigger" yaml:"trigger"`
	BaseShock float64        `json:"base_shock" yaml:"base_shock"`
	Primary   []Effect       `json:"primary" yaml:"primary"`
	Secondary []Effect       `json:"secondary" yaml:"secondary"`
	Currency  CurrencyEffect `json:"currency" yaml:"currency"`
	Offsets   []string       `json:"offsets" yaml:"offsets"`
	TimeAxis  string         `json:"time_axis" yaml:"time_axis"`
}

// SensitivityInput is the optional per-holding shock-sensitivity summary
// fed into the impact computation. A nil SensitivityInput means "no
// sensitivity supplied", which is distinct from a composite shock of zero.
type SensitivityInput struct {
	CompositeShock   *float64 `json:"composite_shock,omitempty"`
	FundamentalScore *float64 `json:"fundamental_score,omitempty"`
	TechnicalScore   *float64 `json:"technical_score,omitempty"`
}

// Judgment labels for the portfolio-level verdict.
const (
	JudgmentContinue       = "continue"
	JudgmentAcknowledge    = "acknowledge"
	JudgmentActionRequired = "action_required"
)

// HoldingImpact is the scenario outcome for a single holding.
type HoldingImpact struct {
	Symbol         string   `json:"symbol"`
	Name           string   `json:"name,omitempty"`
	DirectImpact   float64  `json:"direct_impact"`
	CurrencyImpact float64  `json:"currency_impact"`
	TotalImpact    float64  `json:"total_impact"`
	PriceImpact    float64  `json:"price_impact"`
	Weight         float64  `json:"weight"`
	Contribution   float64  `json:"pf_contribution"`
	CausalChain    []string `json:"causal_chain"`
}

// PortfolioResult is the scenario outcome for the whole portfolio.
type PortfolioResult struct {
	ScenarioKey          string          `json:"scenario_key"`
	ScenarioName         string          `json:"scenario_name"`
	Trigger              string          `json:"trigger"`
	PortfolioImpact      float64         `json:"portfolio_impact"`
	PortfolioValueChange float64         `json:"portfolio_value_change"`
	Holdings             []HoldingImpact `json:"stock_impacts"`
	CausalChainSummary   string          `json:"causal_chain_summary"`
	OffsetFactors        []string        `json:"offset_factors"`
	TimeAxis             string          `json:"time_axis"`
	Judgment             string          `json:"judgment"`
}

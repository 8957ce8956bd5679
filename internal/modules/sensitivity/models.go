package sensitivity

// Quadrant names for the fundamental x technical vulnerability grid.
const (
	QuadrantMostDangerous = "most_dangerous"
	QuadrantFloorRisk     = "floor_risk"
	QuadrantShortTermRisk = "short_term_correction_risk"
	QuadrantMostResilient = "most_resilient"
	QuadrantNeutral       = "neutral"
)

// FundamentalScore is the valuation-side vulnerability score for one holding.
// Score is 0.5-2.0 with 1.0 neutral; higher means more vulnerable to shocks.
type FundamentalScore struct {
	Score           float64 `json:"score"`
	PERScore        float64 `json:"per_score"`
	PBRScore        float64 `json:"pbr_score"`
	DividendScore   float64 `json:"dividend_score"`
	SizeScore       float64 `json:"size_score"`
	VolatilityScore float64 `json:"volatility_score"`
	Detail          string  `json:"detail"`
}

// TechnicalScore is the momentum-side vulnerability score for one holding.
// RSI and MADeviation are nil when the price history is too short to
// compute them.
type TechnicalScore struct {
	Score            float64  `json:"score"`
	RSI              *float64 `json:"rsi,omitempty"`
	RSIScore         float64  `json:"rsi_score"`
	MADeviation      *float64 `json:"ma_deviation,omitempty"`
	MADeviationScore float64  `json:"ma_deviation_score"`
	SurgeScore       float64  `json:"surge_score"`
	VolumeHeatScore  float64  `json:"volume_heat_score"`
	Detail           string   `json:"detail"`
}

// Quadrant classifies a holding by its combined fundamental and technical
// posture.
type Quadrant struct {
	Name        string `json:"quadrant"`
	Description string `json:"description"`
}

// IntegratedShock combines the three vulnerability layers with a base shock
// into a single adjusted shock estimate.
type IntegratedShock struct {
	AdjustedShock             float64  `json:"adjusted_shock"`
	FundamentalContribution   float64  `json:"fundamental_contribution"`
	TechnicalContribution     float64  `json:"technical_contribution"`
	ConcentrationContribution float64  `json:"concentration_contribution"`
	Quadrant                  Quadrant `json:"quadrant"`
}

// Result is the full shock-sensitivity analysis for a single holding.
type Result struct {
	Symbol      string           `json:"symbol"`
	Fundamental FundamentalScore `json:"fundamental"`
	Technical   TechnicalScore   `json:"technical"`
	Integrated  IntegratedShock  `json:"integrated"`
	Summary     string           `json:"summary"`
}

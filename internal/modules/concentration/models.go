package concentration

// Risk level labels derived from the maximum axis HHI.
const (
	RiskDiversified            = "diversified"
	RiskSomewhatConcentrated   = "somewhat_concentrated"
	RiskDangerouslyConcentrated = "dangerously_concentrated"
)

// Axis names.
const (
	AxisSector   = "sector"
	AxisRegion   = "region"
	AxisCurrency = "currency"
)

// Result is the multi-axis concentration analysis of a portfolio snapshot.
type Result struct {
	SectorHHI   float64 `json:"sector_hhi"`
	RegionHHI   float64 `json:"region_hhi"`
	CurrencyHHI float64 `json:"currency_hhi"`

	MaxHHI     float64 `json:"max_hhi"`
	MaxHHIAxis string  `json:"max_hhi_axis"`

	// Multiplier amplifies shock impact for concentrated portfolios, 1.0-1.6.
	Multiplier float64 `json:"concentration_multiplier"`

	SectorBreakdown   map[string]float64 `json:"sector_breakdown"`
	RegionBreakdown   map[string]float64 `json:"region_breakdown"`
	CurrencyBreakdown map[string]float64 `json:"currency_breakdown"`

	RiskLevel string `json:"risk_level"`
}

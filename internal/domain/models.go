package domain

import "math"

// Holding is a fully materialized portfolio position as supplied by the
// data-fetching collaborator. Numeric fundamentals are pointers because
// missing is not the same as zero; use SafeFloat to read them.
type Holding struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name,omitempty"`
	Sector        string   `json:"sector,omitempty"`
	Country       string   `json:"country,omitempty"`
	Region        string   `json:"region,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	QuoteType     string   `json:"quote_type,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Beta          *float64 `json:"beta,omitempty"`
	MarketCap     *float64 `json:"market_cap,omitempty"`
	PER           *float64 `json:"per,omitempty"`
	PBR           *float64 `json:"pbr,omitempty"`
	DividendYield *float64 `json:"dividend_yield,omitempty"`
	ROE           *float64 `json:"roe,omitempty"`
	DebtToEquity  *float64 `json:"debt_to_equity,omitempty"`
	Weight        float64  `json:"weight"`

	// Ordered oldest to newest. VolumeHistory, when present, is aligned
	// with PriceHistory.
	PriceHistory  []float64 `json:"price_history,omitempty"`
	VolumeHistory []float64 `json:"volume_history,omitempty"`
}

// SafeFloat dereferences a nullable numeric field, mapping nil, NaN and
// +/-Inf to the given default. Missing data must never leak into sums as
// zero unless zero is the documented neutral.
func SafeFloat(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	f := *v
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// IsKnown reports whether a nullable numeric field holds a finite value.
func IsKnown(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// Weights extracts the per-holding weights in order.
func Weights(holdings []Holding) []float64 {
	weights := make([]float64, len(holdings))
	for i, h := range holdings {
		weights[i] = h.Weight
	}
	return weights
}

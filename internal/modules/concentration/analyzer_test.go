package concentration

import (
	"math"
	"testing"

	"github.com/aikawa/riskcore/internal/domain"
)

func TestComputeHHI(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		want    float64
	}{
		{
			name:    "single asset",
			weights: []float64{1.0},
			want:    1.0,
		},
		{
			name:    "four equal weights",
			weights: []float64{0.25, 0.25, 0.25, 0.25},
			want:    0.25,
		},
		{
			name:    "two thirds one third",
			weights: []float64{2.0 / 3.0, 1.0 / 3.0},
			want:    5.0 / 9.0,
		},
		{
			name:    "empty",
			weights: nil,
			want:    0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHHI(tt.weights)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ComputeHHI(%v) = %v, want %v", tt.weights, got, tt.want)
			}
		})
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name string
		hhi  float64
		want float64
	}{
		{"well diversified", 0.10, 1.0},
		{"lower knee", 0.25, 1.0},
		{"mid lower band", 0.375, 1.15},
		{"upper knee", 0.50, 1.3},
		{"mid upper band", 0.75, 1.45},
		{"single asset", 1.0, 1.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Multiplier(tt.hhi)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Multiplier(%v) = %v, want %v", tt.hhi, got, tt.want)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	analyzer := NewAnalyzer()

	holdings := []domain.Holding{
		{Symbol: "7203.T", Sector: "Consumer Cyclical", Country: "Japan", Currency: "JPY"},
		{Symbol: "AAPL", Sector: "Technology", Country: "United States", Currency: "USD"},
		{Symbol: "8306.T", Sector: "Financial Services", Country: "Japan", Currency: "JPY"},
	}
	weights := []float64{0.5, 0.3, 0.2}

	result := analyzer.Analyze(holdings, weights)

	// Sector: 0.25 + 0.09 + 0.04; currency/region: 0.49 + 0.09
	if math.Abs(result.SectorHHI-0.38) > 1e-9 {
		t.Errorf("SectorHHI = %v, want 0.38", result.SectorHHI)
	}
	if math.Abs(result.CurrencyHHI-0.58) > 1e-9 {
		t.Errorf("CurrencyHHI = %v, want 0.58", result.CurrencyHHI)
	}
	if result.RegionHHI != result.CurrencyHHI {
		t.Errorf("RegionHHI = %v, want %v", result.RegionHHI, result.CurrencyHHI)
	}

	if result.MaxHHIAxis != AxisRegion && result.MaxHHIAxis != AxisCurrency {
		t.Errorf("MaxHHIAxis = %q, want region or currency", result.MaxHHIAxis)
	}
	if result.RiskLevel != RiskDangerouslyConcentrated {
		t.Errorf("RiskLevel = %q, want %q", result.RiskLevel, RiskDangerouslyConcentrated)
	}

	sum := 0.0
	for _, w := range result.SectorBreakdown {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("sector breakdown sums to %v, want 1.0", sum)
	}
}

func TestAnalyzeRegionFallback(t *testing.T) {
	analyzer := NewAnalyzer()

	// No country field anywhere; region grouping should retry on Region.
	holdings := []domain.Holding{
		{Symbol: "A", Sector: "Technology", Region: "US", Currency: "USD"},
		{Symbol: "B", Sector: "Energy", Region: "Europe", Currency: "EUR"},
	}
	weights := []float64{0.6, 0.4}

	result := analyzer.Analyze(holdings, weights)

	if _, ok := result.RegionBreakdown["US"]; !ok {
		t.Errorf("RegionBreakdown = %v, want grouping by Region field", result.RegionBreakdown)
	}
	if math.Abs(result.RegionHHI-0.52) > 1e-9 {
		t.Errorf("RegionHHI = %v, want 0.52", result.RegionHHI)
	}
}

func TestAnalyzeMissingLabels(t *testing.T) {
	analyzer := NewAnalyzer()

	holdings := []domain.Holding{
		{Symbol: "A"},
		{Symbol: "B"},
	}
	weights := []float64{0.5, 0.5}

	result := analyzer.Analyze(holdings, weights)

	if w := result.SectorBreakdown["Unknown"]; math.Abs(w-1.0) > 1e-9 {
		t.Errorf("Unknown sector weight = %v, want 1.0", w)
	}
	// Everything in one bucket is maximum concentration.
	if result.MaxHHI != 1.0 {
		t.Errorf("MaxHHI = %v, want 1.0", result.MaxHHI)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	analyzer := NewAnalyzer()

	result := analyzer.Analyze(nil, nil)

	if result.MaxHHI != 0 {
		t.Errorf("MaxHHI = %v, want 0", result.MaxHHI)
	}
	if result.Multiplier != 1.0 {
		t.Errorf("Multiplier = %v, want 1.0", result.Multiplier)
	}
	if result.RiskLevel != RiskDiversified {
		t.Errorf("RiskLevel = %q, want %q", result.RiskLevel, RiskDiversified)
	}
}

package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aikawa/riskcore/internal/domain"
)

func TestClassifyAsset(t *testing.T) {
	tests := []struct {
		name    string
		holding domain.Holding
		want    AssetClass
	}{
		{"gold ETF", domain.Holding{Symbol: "GLD"}, AssetSafeHaven},
		{"gold ETF lowercase", domain.Holding{Symbol: "gldm"}, AssetSafeHaven},
		{"long bond ETF", domain.Holding{Symbol: "TLT"}, AssetLongBonds},
		{"covered call ETF", domain.Holding{Symbol: "JEPI"}, AssetEquityIncome},
		{"unknown ETF defaults to equity income", domain.Holding{Symbol: "VT", QuoteType: "ETF"}, AssetEquityIncome},
		{"plain equity", domain.Holding{Symbol: "AAPL"}, AssetNone},
		{"suffixed symbol strips exchange", domain.Holding{Symbol: "GLD.X"}, AssetSafeHaven},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAsset(tt.holding))
		})
	}
}

func TestMatcherPriorities(t *testing.T) {
	m := NewMatcher("JPY")

	toyota := attrsFor(domain.Holding{Symbol: "7203.T", Sector: "Consumer Cyclical", Country: "Japan", Currency: "JPY"})
	apple := attrsFor(domain.Holding{Symbol: "AAPL", Sector: "Technology", Country: "United States", Currency: "USD"})
	gold := attrsFor(domain.Holding{Symbol: "GLD", Country: "United States", Currency: "USD"})
	jepi := attrsFor(domain.Holding{Symbol: "JEPI", QuoteType: "ETF", Country: "United States", Currency: "USD"})
	nttData := attrsFor(domain.Holding{Symbol: "9613.T", Sector: "Technology", Country: "Japan", Currency: "JPY"})
	dbs := attrsFor(domain.Holding{Symbol: "D05.SI", Sector: "Financial Services", Country: "Singapore", Currency: "SGD"})

	tests := []struct {
		name   string
		target TargetKind
		attrs  holdingAttrs
		want   bool
	}{
		// Currency rules apply to everything
		{"domestic currency on yen stock", TargetDomesticCurrency, toyota, true},
		{"domestic currency on dollar stock", TargetDomesticCurrency, apple, false},
		{"foreign assets on dollar stock", TargetAllForeignAssets, apple, true},
		{"foreign assets on gold ETF", TargetAllForeignAssets, gold, true},

		// Gold ETF matches only its own asset class
		{"gold ETF matches safe haven", TargetSafeHaven, gold, true},
		{"gold ETF never matches US equities", TargetUSEquities, gold, false},
		{"gold ETF never matches non-tech", TargetNonTech, gold, false},

		// Equity-income ETF reacts as cyclicals and keeps region identity
		{"income ETF matches equity income", TargetEquityIncome, jepi, true},
		{"income ETF matches cyclicals", TargetCyclicals, jepi, true},
		{"income ETF still matches US equities", TargetUSEquities, jepi, true},

		// Region rules
		{"japan equities on Toyota", TargetJapanEquities, toyota, true},
		{"us equities on Apple", TargetUSEquities, apple, true},
		{"asean equities on Singapore bank", TargetASEANEquities, dbs, true},
		{"china linked on Apple", TargetChinaLinked, apple, false},

		// Compound: exporters need Japan AND an export sector
		{"exporters match Toyota", TargetExporters, toyota, true},
		{"exporters match Japanese tech", TargetExporters, nttData, true},
		{"exporters reject Apple", TargetExporters, apple, false},
		{"domestic demand rejects Toyota", TargetDomesticDemand, toyota, false},

		// Non-tech
		{"non-tech on Toyota", TargetNonTech, toyota, true},
		{"non-tech rejects Apple", TargetNonTech, apple, false},

		// Plain sector lists
		{"tech stocks on Apple", TargetTechStocks, apple, true},
		{"banks on Singapore bank", TargetBanks, dbs, true},
		{"energy rejects Toyota", TargetEnergy, toyota, false},

		// High dividend has no sector proxy for plain equities
		{"high dividend rejects plain equity", TargetHighDividend, apple, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Matches(tt.target, tt.attrs))
		})
	}
}

func TestAttrsForInference(t *testing.T) {
	// Suffix-based inference fills in currency and region when the
	// explicit fields are empty.
	attrs := attrsFor(domain.Holding{Symbol: "7203.T", Sector: "Consumer Cyclical"})
	assert.Equal(t, "JPY", attrs.currency)
	assert.Equal(t, "Japan", attrs.region)

	attrs = attrsFor(domain.Holding{Symbol: "AAPL"})
	assert.Equal(t, "USD", attrs.currency)
	assert.Equal(t, "US", attrs.region)
}

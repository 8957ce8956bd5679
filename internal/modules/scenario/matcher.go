package scenario

import (
	"strings"

	"github.com/aikawa/riskcore/internal/domain"
)

// targetSectors lists the sector memberships of the sector-driven targets.
// A nil entry means the target has no sector condition of its own.
var targetSectors = map[TargetKind][]string{
	TargetGrowthStocks:   {"Technology", "Communication Services"},
	TargetExporters:      {"Industrials", "Consumer Cyclical", "Technology"},
	TargetDomesticDemand: {"Consumer Defensive", "Utilities", "Real Estate"},
	TargetBanks:          {"Financial Services"},
	TargetRealEstate:     {"Real Estate"},
	TargetCyclicals:      {"Consumer Cyclical", "Industrials", "Basic Materials"},
	TargetDefensives:     {"Consumer Defensive", "Healthcare", "Utilities"},
	TargetSemiconductors: {"Technology"},
	TargetDefense:        {"Industrials"},
	TargetEnergy:         {"Energy"},
	TargetMaterials:      {"Basic Materials"},
	TargetConsumer:       {"Consumer Cyclical", "Consumer Defensive"},
	TargetTechStocks:     {"Technology", "Communication Services"},
}

var techSectors = map[string]struct{}{
	"Technology":             {},
	"Communication Services": {},
}

var aseanRegions = map[string]struct{}{
	"Singapore":   {},
	"Thailand":    {},
	"Malaysia":    {},
	"Indonesia":   {},
	"Philippines": {},
}

// etfAssetClass maps well-known ETF tickers to their asset class so that
// gold/bond scenario effects land on them rather than broad-equity
// targets.
var etfAssetClass = map[string]AssetClass{
	// Gold / safe haven
	"GLDM": AssetSafeHaven,
	"GLD":  AssetSafeHaven,
	"IAU":  AssetSafeHaven,
	"SGOL": AssetSafeHaven,
	// Long bonds
	"TLT":  AssetLongBonds,
	"IEF":  AssetLongBonds,
	"BND":  AssetLongBonds,
	"AGG":  AssetLongBonds,
	"VGLT": AssetLongBonds,
	// Equity income
	"JEPI": AssetEquityIncome,
	"JEPQ": AssetEquityIncome,
	"SCHD": AssetEquityIncome,
	"VYM":  AssetEquityIncome,
	"HDV":  AssetEquityIncome,
	"SPYD": AssetEquityIncome,
}

// ClassifyAsset returns the asset class for ETF holdings, AssetNone for
// plain equities. Unrecognized ETFs default to the conservative
// equity-income class.
func ClassifyAsset(h domain.Holding) AssetClass {
	base := h.Symbol
	if idx := strings.IndexByte(base, '.'); idx >= 0 {
		base = base[:idx]
	}
	if class, ok := etfAssetClass[strings.ToUpper(base)]; ok {
		return class
	}
	if strings.EqualFold(h.QuoteType, "ETF") {
		return AssetEquityIncome
	}
	return AssetNone
}

// holdingAttrs are the attributes of a holding the matcher reads.
type holdingAttrs struct {
	sector     string
	currency   string
	region     string
	assetClass AssetClass
}

func attrsFor(h domain.Holding) holdingAttrs {
	return holdingAttrs{
		sector:     h.Sector,
		currency:   h.ResolvedCurrency(),
		region:     h.ResolvedRegion(),
		assetClass: ClassifyAsset(h),
	}
}

func isJapan(region string) bool {
	return region == "Japan"
}

func isUS(region string) bool {
	return region == "US" || region == "United States"
}

// Matcher decides whether a scenario target applies to a holding. Rules
// run in a fixed priority order: currency, asset class, region,
// region+sector compounds, non-tech, then plain sector lists.
type Matcher struct {
	reportingCurrency string
}

// NewMatcher creates a matcher for the given reporting currency.
func NewMatcher(reportingCurrency string) *Matcher {
	return &Matcher{reportingCurrency: reportingCurrency}
}

// Matches reports whether the target applies to the holding attributes.
func (m *Matcher) Matches(target TargetKind, a holdingAttrs) bool {
	// 1. Currency-based targets apply to everything, ETFs included.
	if target == TargetDomesticCurrency {
		return a.currency == m.reportingCurrency
	}
	if target == TargetAllForeignAssets {
		return a.currency != m.reportingCurrency
	}

	// 2. Asset-class targets. Gold and bond ETFs match only their own
	// class; this runs before region rules so a US-listed gold ETF never
	// matches a broad US-equities target. Equity-income ETFs also react
	// as cyclicals and fall through to the region rules.
	if a.assetClass == AssetSafeHaven || a.assetClass == AssetLongBonds {
		return target == TargetKind(a.assetClass)
	}
	if a.assetClass == AssetEquityIncome {
		if target == TargetEquityIncome || target == TargetCyclicals {
			return true
		}
	}

	// 3. Region-based targets.
	switch target {
	case TargetJapanEquities:
		return isJapan(a.region)
	case TargetUSEquities:
		return isUS(a.region)
	case TargetASEANEquities:
		_, ok := aseanRegions[a.region]
		return ok
	case TargetChinaLinked:
		return a.region == "China" || a.region == "Hong Kong"
	}

	// 4. Region + sector compounds: exporters and domestic demand require
	// Japan plus sector membership, or match unconditionally when the
	// target defines no sector list.
	if target == TargetExporters || target == TargetDomesticDemand {
		if !isJapan(a.region) {
			return false
		}
		sectors := targetSectors[target]
		if sectors == nil {
			return true
		}
		return a.sector != "" && contains(sectors, a.sector)
	}

	// 5. Non-tech: every sector outside technology and communication
	// services; holdings with no sector count as non-tech.
	if target == TargetNonTech {
		if a.sector == "" {
			return true
		}
		_, tech := techSectors[a.sector]
		return !tech
	}

	// 6. Plain sector-list targets.
	if sectors := targetSectors[target]; sectors != nil {
		return contains(sectors, a.sector)
	}

	// High-dividend and asset-class targets without a matching asset
	// class have no attribute to match on.
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

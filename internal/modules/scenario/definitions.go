package scenario

// The built-in catalog: eight preset macro scenarios. Impacts are
// fractions (-0.12 = -12%); FX changes are quoted as moves in the
// reporting-currency pair (USD/JPY for the default JPY catalog).

func defaultDefinitions() []Definition {
	return []Definition{
		{
			Key:       "triple_decline",
			Name:      "Triple decline (equities, bonds, yen)",
			Trigger:   "Fiscal distress / sovereign downgrade",
			BaseShock: -0.20,
			Primary: []Effect{
				{Target: TargetJapanEquities, Impact: -0.12, Reason: "foreign investors selling"},
				{Target: TargetDomesticCurrency, Impact: -0.10, Reason: "yen down 15 to the dollar"},
			},
			Secondary: []Effect{
				{Target: TargetGrowthStocks, Impact: -0.12, Reason: "rising rates"},
				{Target: TargetExporters, Impact: 0.06, Reason: "weak-yen tailwind"},
				{Target: TargetDomesticDemand, Impact: -0.07, Reason: "input cost inflation"},
				{Target: TargetBanks, Impact: 0.06, Reason: "net interest margin improvement"},
				{Target: TargetSafeHaven, Impact: 0.03, Reason: "partial flight to safety"},
				{Target: TargetLongBonds, Impact: -0.10, Reason: "bond leg of the triple decline"},
			},
			Currency: CurrencyEffect{FXChange: 15, ImpactOnForeign: 0.097},
			Offsets:  []string{"weak-yen tailwind for exporters", "rate tailwind for banks"},
			TimeAxis: "immediate; secondary effects over weeks; sharp reversal risk on intervention",
		},
		{
			Key:       "yen_depreciation",
			Name:      "Dollar strength / yen weakness",
			Trigger:   "Widening US-Japan rate differential",
			BaseShock: -0.10,
			Primary: []Effect{
				{Target: TargetUSEquities, Impact: 0.097, Reason: "FX gain on USD assets"},
				{Target: TargetExporters, Impact: 0.06, Reason: "weak-yen tailwind"},
				{Target: TargetDomesticDemand, Impact: -0.07, Reason: "input cost inflation"},
			},
			Secondary: []Effect{
				{Target: TargetAllForeignAssets, Impact: -0.05, Reason: "intervention reversal risk (165 -> 158)"},
				{Target: TargetSafeHaven, Impact: 0.03, Reason: "gold resilient even against a strong dollar"},
				{Target: TargetLongBonds, Impact: -0.03, Reason: "rate differential pressures bond prices"},
			},
			Currency: CurrencyEffect{FXChange: 10, ImpactOnForeign: 0.065},
			Offsets:  []string{"exporter tailwind"},
			TimeAxis: "staged: 155 -> 165 positive, 165 -> 175 alert, intervention reversal",
		},
		{
			Key:       "us_recession",
			Name:      "US recession",
			Trigger:   "Confirmed economic downturn",
			BaseShock: -0.25,
			Primary: []Effect{
				{Target: TargetUSEquities, Impact: -0.25, Reason: "earnings deterioration"},
				{Target: TargetCyclicals, Impact: -0.35, Reason: "cyclically sensitive"},
			},
			Secondary: []Effect{
				{Target: TargetExporters, Impact: -0.15, Reason: "demand destruction"},
				{Target: TargetASEANEquities, Impact: -0.10, Reason: "capital flight"},
				{Target: TargetDefensives, Impact: -0.05, Reason: "relative resilience"},
				{Target: TargetSafeHaven, Impact: 0.08, Reason: "flight to safety"},
				{Target: TargetLongBonds, Impact: 0.10, Reason: "rate-cut expectations lift bond prices"},
			},
			Currency: CurrencyEffect{FXChange: -10, ImpactOnForeign: -0.065},
			Offsets:  []string{"defensive holdings", "yen strength hedges foreign assets"},
			TimeAxis: "confirmation; bottoming over six months to a year; reversal on easing",
		},
		{
			Key:       "boj_rate_hike",
			Name:      "BOJ rate-hike acceleration",
			Trigger:   "Persistent inflation forces further hikes",
			BaseShock: -0.15,
			Primary: []Effect{
				{Target: TargetGrowthStocks, Impact: -0.15, Reason: "higher discount rates"},
				{Target: TargetRealEstate, Impact: -0.12, Reason: "financing cost squeeze"},
				{Target: TargetBanks, Impact: 0.08, Reason: "wider net interest margins"},
			},
			Secondary: []Effect{
				{Target: TargetHighDividend, Impact: -0.05, Reason: "less attractive next to bonds"},
				{Target: TargetDomesticCurrency, Impact: -0.05, Reason: "yen strength"},
				{Target: TargetSafeHaven, Impact: -0.02, Reason: "higher opportunity cost of holding gold"},
				{Target: TargetLongBonds, Impact: -0.05, Reason: "rising rates depress bond prices"},
			},
			Currency: CurrencyEffect{FXChange: -8, ImpactOnForeign: -0.052},
			Offsets:  []string{"bank sector gains", "cheaper imports on yen strength"},
			TimeAxis: "announcement; immediate reaction; priced in over half a year",
		},
		{
			Key:       "us_china_conflict",
			Name:      "US-China conflict escalation",
			Trigger:   "Tariffs and sanctions tighten",
			BaseShock: -0.15,
			Primary: []Effect{
				{Target: TargetChinaLinked, Impact: -0.20, Reason: "supply chain disruption"},
				{Target: TargetSemiconductors, Impact: -0.15, Reason: "export controls"},
			},
			Secondary: []Effect{
				{Target: TargetASEANEquities, Impact: 0.05, Reason: "supply chain relocation beneficiary"},
				{Target: TargetDefense, Impact: 0.08, Reason: "geopolitical risk premium"},
				{Target: TargetSafeHaven, Impact: 0.08, Reason: "safe-haven demand on geopolitical risk"},
				{Target: TargetLongBonds, Impact: 0.03, Reason: "flight to quality into government bonds"},
			},
			Currency: CurrencyEffect{FXChange: -3, ImpactOnForeign: -0.02},
			Offsets:  []string{"production shift to ASEAN", "defense names rally"},
			TimeAxis: "announcement; sharp fall in days; capital rotates to alternatives over months",
		},
		{
			Key:       "inflation_resurgence",
			Name:      "Inflation resurgence",
			Trigger:   "CPI re-accelerates",
			BaseShock: -0.15,
			Primary: []Effect{
				{Target: TargetGrowthStocks, Impact: -0.18, Reason: "renewed rate-hike fears"},
				{Target: TargetLongBonds, Impact: -0.10, Reason: "rising yields"},
			},
			Secondary: []Effect{
				{Target: TargetEnergy, Impact: 0.10, Reason: "oil rally"},
				{Target: TargetMaterials, Impact: 0.05, Reason: "commodity price gains"},
				{Target: TargetConsumer, Impact: -0.08, Reason: "purchasing power erosion"},
				{Target: TargetSafeHaven, Impact: 0.08, Reason: "inflation hedge demand"},
			},
			Currency: CurrencyEffect{FXChange: 5, ImpactOnForeign: 0.032},
			Offsets:  []string{"commodity-linked gains", "inflation-hedge assets"},
			TimeAxis: "CPI print; immediate reaction; direction settles over 3-6 months",
		},
		{
			Key:       "tech_crash",
			Name:      "Tech crash",
			Trigger:   "AI monetization disappointment, valuation reset, regulation",
			BaseShock: -0.30,
			Primary: []Effect{
				{Target: TargetTechStocks, Impact: -0.35, Reason: "NASDAQ -30%, valuation correction"},
				{Target: TargetSemiconductors, Impact: -0.40, Reason: "AI over-expectation unwound"},
			},
			Secondary: []Effect{
				{Target: TargetNonTech, Impact: -0.08, Reason: "risk-off contagion"},
				{Target: TargetDefensives, Impact: -0.03, Reason: "relative resilience on flight to quality"},
				{Target: TargetSafeHaven, Impact: 0.06, Reason: "safe-haven demand"},
				{Target: TargetLongBonds, Impact: 0.05, Reason: "flight to quality into treasuries"},
			},
			Currency: CurrencyEffect{FXChange: -8, ImpactOnForeign: -0.052},
			Offsets: []string{
				"defensive resilience",
				"rotation into gold and bonds",
				"yen strength compresses foreign assets",
			},
			TimeAxis: "crash; days of sharp falls; second-round effects over weeks; months of bottom-finding",
		},
		{
			Key:       "yen_appreciation",
			Name:      "Yen strength / dollar weakness",
			Trigger:   "Fed cuts accelerate while the BOJ keeps hiking",
			BaseShock: -0.10,
			Primary: []Effect{
				{Target: TargetAllForeignAssets, Impact: -0.13, Reason: "USD/JPY -20 (153 -> 133)"},
				{Target: TargetExporters, Impact: -0.12, Reason: "strong-yen headwind"},
			},
			Secondary: []Effect{
				{Target: TargetDomesticDemand, Impact: 0.04, Reason: "cheaper imports"},
				{Target: TargetSafeHaven, Impact: 0.05, Reason: "weak dollar lifts gold"},
				{Target: TargetLongBonds, Impact: 0.03, Reason: "bond demand in an easing cycle"},
			},
			Currency: CurrencyEffect{FXChange: -20, ImpactOnForeign: -0.131},
			Offsets:  []string{"lower import costs for domestic demand", "improved domestic consumption"},
			TimeAxis: "Fed cut decision; rapid yen strength in days; new equilibrium over months",
		},
	}
}

// defaultAliases maps free-text synonyms to catalog keys. Order matters
// for the substring stage of resolution, so this is a slice, not a map.
func defaultAliases() []Alias {
	return []Alias{
		{"triple decline", "triple_decline"},
		{"triple selloff", "triple_decline"},
		{"triple", "triple_decline"},
		{"yen depreciation", "yen_depreciation"},
		{"weak yen", "yen_depreciation"},
		{"dollar strength", "yen_depreciation"},
		{"fx shock", "yen_depreciation"},
		{"us recession", "us_recession"},
		{"recession", "us_recession"},
		{"downturn", "us_recession"},
		{"boj rate hike", "boj_rate_hike"},
		{"boj", "boj_rate_hike"},
		{"rate hike", "boj_rate_hike"},
		{"rising rates", "boj_rate_hike"},
		{"us-china", "us_china_conflict"},
		{"china", "us_china_conflict"},
		{"trade war", "us_china_conflict"},
		{"geopolitical risk", "us_china_conflict"},
		{"inflation resurgence", "inflation_resurgence"},
		{"inflation", "inflation_resurgence"},
		{"cpi", "inflation_resurgence"},
		{"tech crash", "tech_crash"},
		{"nasdaq crash", "tech_crash"},
		{"ai crash", "tech_crash"},
		{"tech", "tech_crash"},
		{"yen appreciation", "yen_appreciation"},
		{"strong yen", "yen_appreciation"},
		{"dollar weakness", "yen_appreciation"},
		// Bare "yen" stays last so the more specific aliases above win
		// the substring stage.
		{"yen", "yen_depreciation"},
	}
}

// DefaultCatalog returns the built-in scenario catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultDefinitions(), defaultAliases())
	if err != nil {
		// The built-in dataset is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

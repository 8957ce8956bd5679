package sensitivity

import (
	"fmt"
	"strings"

	"github.com/aikawa/riskcore/internal/domain"
)

// ComputeFundamental scores the valuation-side shock vulnerability of a
// holding from PER, PBR, dividend yield, market cap and beta.
//
// Each factor scores on its own threshold band; unknown (nil/NaN/Inf)
// fields contribute the neutral 1.0. The combined score is the weighted
// average PER 0.30, PBR 0.20, dividend 0.20, size 0.15, beta 0.15,
// clamped to [0.5, 2.0].
func ComputeFundamental(h domain.Holding) FundamentalScore {
	perScore := 1.0
	per := 0.0
	if domain.IsKnown(h.PER) {
		per = *h.PER
		switch {
		case per <= 0:
			// Negative or zero PER (loss-making) counts as vulnerable
			perScore = 1.5
		case per < 15:
			perScore = 0.7
		case per <= 30:
			perScore = 1.0
		default:
			perScore = 1.5
		}
	}

	pbrScore := 1.0
	pbr := 0.0
	if domain.IsKnown(h.PBR) {
		pbr = *h.PBR
		switch {
		case pbr <= 0:
			pbrScore = 1.0
		case pbr < 1:
			pbrScore = 0.7
		case pbr <= 3:
			pbrScore = 1.0
		default:
			pbrScore = 1.3
		}
	}

	// Dividend yield is a fraction (0.03 = 3%)
	dividendScore := 1.0
	dividendYield := 0.0
	if domain.IsKnown(h.DividendYield) {
		dividendYield = *h.DividendYield
		switch {
		case dividendYield >= 0.03:
			dividendScore = 0.7
		case dividendYield >= 0.01:
			dividendScore = 1.0
		default:
			dividendScore = 1.3
		}
	}

	// Size thresholds: large cap above 1T JPY (~10B USD), mid cap above 100B
	sizeScore := 1.0
	if domain.IsKnown(h.MarketCap) {
		marketCap := *h.MarketCap
		switch {
		case marketCap <= 0:
			sizeScore = 1.0
		case marketCap >= 1e12:
			sizeScore = 0.8
		case marketCap >= 1e11:
			sizeScore = 1.0
		default:
			sizeScore = 1.3
		}
	}

	volatilityScore := 1.0
	if domain.IsKnown(h.Beta) {
		beta := *h.Beta
		switch {
		case beta <= 0:
			volatilityScore = 1.0
		case beta < 0.8:
			volatilityScore = 0.8
		case beta <= 1.2:
			volatilityScore = 1.0
		default:
			volatilityScore = clamp(1.0+(beta-1.2)*0.5, 0.5, 2.0)
		}
	}

	raw := perScore*0.30 +
		pbrScore*0.20 +
		dividendScore*0.20 +
		sizeScore*0.15 +
		volatilityScore*0.15
	score := clamp(raw, 0.5, 2.0)

	var parts []string
	if perScore >= 1.3 {
		parts = append(parts, fmt.Sprintf("PER(%.1f) elevated", per))
	} else if perScore <= 0.8 {
		parts = append(parts, fmt.Sprintf("PER(%.1f) cheap", per))
	}
	if pbrScore >= 1.3 {
		parts = append(parts, fmt.Sprintf("PBR(%.2f) elevated", pbr))
	} else if pbrScore <= 0.8 {
		parts = append(parts, fmt.Sprintf("PBR(%.2f) cheap", pbr))
	}
	if dividendScore <= 0.8 {
		parts = append(parts, fmt.Sprintf("high dividend (%.1f%%)", dividendYield*100))
	} else if dividendScore >= 1.2 {
		parts = append(parts, "low dividend")
	}
	if sizeScore <= 0.9 {
		parts = append(parts, "large cap")
	} else if sizeScore >= 1.2 {
		parts = append(parts, "small cap")
	}

	detail := "neutral fundamentals"
	if len(parts) > 0 {
		detail = strings.Join(parts, "; ")
	}

	return FundamentalScore{
		Score:           score,
		PERScore:        perScore,
		PBRScore:        pbrScore,
		DividendScore:   dividendScore,
		SizeScore:       sizeScore,
		VolatilityScore: volatilityScore,
		Detail:          detail,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package sensitivity

import (
	"fmt"
	"strings"

	"github.com/aikawa/riskcore/pkg/formulas"
)

// minTechnicalHistory is the minimum number of closes required before any
// technical factor is scored; shorter histories yield the neutral result.
const minTechnicalHistory = 50

// rsiPeriod is the RSI look-back window.
const rsiPeriod = 14

func neutralTechnical(detail string) TechnicalScore {
	return TechnicalScore{
		Score:            1.0,
		RSIScore:         1.0,
		MADeviationScore: 1.0,
		SurgeScore:       1.0,
		VolumeHeatScore:  1.0,
		Detail:           detail,
	}
}

// ComputeTechnical scores the momentum-side shock vulnerability of a
// holding from its price and volume history.
//
// Factors: RSI(14), deviation from the 50-day SMA, 30-day return, and
// 5-day vs 20-day volume ratio, weighted 0.35/0.25/0.25/0.15 and clamped
// to [0.5, 2.0]. Fewer than 50 closes yields the all-neutral score.
func ComputeTechnical(closes, volumes []float64) TechnicalScore {
	if len(closes) < minTechnicalHistory {
		return neutralTechnical("insufficient history; neutral")
	}

	currentPrice := closes[len(closes)-1]

	// RSI
	rsi := formulas.CalculateRSI(closes, rsiPeriod)
	rsiScore := 1.0
	if rsi != nil {
		switch {
		case *rsi > 70:
			rsiScore = 1.5
		case *rsi > 50:
			rsiScore = 1.0
		case *rsi > 30:
			rsiScore = 0.8
		default:
			// Deeply oversold: could be panic or a floor. The stock has
			// already fallen, so slightly below neutral.
			rsiScore = 0.9
		}
	}

	// Deviation from the 50-day SMA
	var maDeviation *float64
	maDeviationScore := 1.0
	if sma50 := formulas.CalculateSMA(closes, 50); sma50 != nil && *sma50 > 0 {
		dev := (currentPrice - *sma50) / *sma50
		maDeviation = &dev
		switch {
		case dev >= 0.15:
			maDeviationScore = 1.5
		case dev >= 0.05:
			maDeviationScore = 1.2
		case dev >= -0.05:
			maDeviationScore = 1.0
		case dev >= -0.15:
			maDeviationScore = 0.8
		default:
			maDeviationScore = 0.7
		}
	}

	// Surge: 30-day return
	surge := 0.0
	if len(closes) >= 30 {
		price30d := closes[len(closes)-30]
		if price30d > 0 {
			surge = (currentPrice - price30d) / price30d
		}
	}
	surgeScore := 1.0
	switch {
	case surge >= 0.20:
		surgeScore = 1.5
	case surge >= 0.10:
		surgeScore = 1.2
	case surge >= 0:
		surgeScore = 1.0
	default:
		surgeScore = 0.8
	}

	// Volume heat: 5-day average vs 20-day average
	volumeHeat := 1.0
	if len(volumes) >= 20 {
		total := 0.0
		for _, v := range volumes {
			total += v
		}
		if total > 0 {
			vol5 := formulas.Mean(volumes[len(volumes)-5:])
			vol20 := formulas.Mean(volumes[len(volumes)-20:])
			if vol20 > 0 {
				volumeHeat = vol5 / vol20
			}
		}
	}
	volumeHeatScore := 1.0
	switch {
	case volumeHeat >= 1.5:
		volumeHeatScore = 1.3
	case volumeHeat >= 1.0:
		volumeHeatScore = 1.0
	default:
		volumeHeatScore = 0.9
	}

	raw := rsiScore*0.35 +
		maDeviationScore*0.25 +
		surgeScore*0.25 +
		volumeHeatScore*0.15
	score := clamp(raw, 0.5, 2.0)

	var parts []string
	if rsi != nil {
		if rsiScore >= 1.3 {
			parts = append(parts, fmt.Sprintf("RSI(%.1f) overheated", *rsi))
		} else if rsiScore <= 0.85 {
			parts = append(parts, fmt.Sprintf("RSI(%.1f) oversold", *rsi))
		}
	}
	if maDeviation != nil {
		if maDeviationScore >= 1.3 {
			parts = append(parts, fmt.Sprintf("MA deviation (+%.1f%%) stretched", *maDeviation*100))
		} else if maDeviationScore <= 0.8 {
			parts = append(parts, fmt.Sprintf("MA deviation (%.1f%%) depressed", *maDeviation*100))
		}
	}
	if surgeScore >= 1.3 {
		parts = append(parts, fmt.Sprintf("30-day surge (+%.1f%%)", surge*100))
	}
	if volumeHeatScore >= 1.2 {
		parts = append(parts, fmt.Sprintf("volume heat (%.2fx)", volumeHeat))
	}

	detail := "technically neutral"
	if len(parts) > 0 {
		detail = strings.Join(parts, "; ")
	}

	return TechnicalScore{
		Score:            score,
		RSI:              rsi,
		RSIScore:         rsiScore,
		MADeviation:      maDeviation,
		MADeviationScore: maDeviationScore,
		SurgeScore:       surgeScore,
		VolumeHeatScore:  volumeHeatScore,
		Detail:           detail,
	}
}

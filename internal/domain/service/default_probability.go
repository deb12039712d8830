package service

import (
	"math"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

// Probability bounds of the default model.
const (
	MinDefaultProbability = 0.01
	MaxDefaultProbability = 0.95
)

const (
	pdPivotScore = 650.0
	pdScoreScale = 58.0
)

var riskOffsets = map[valueobject.RiskLevel]float64{
	valueobject.RiskLevelLow:    -0.45,
	valueobject.RiskLevelMedium: 0.15,
	valueobject.RiskLevelHigh:   0.65,
}

// ProbabilityOfDefault is a logistic function of the score, shifted by the
// risk category and utilization band, bounded to [0.01, 0.95]. An unknown
// category contributes no offset.
func ProbabilityOfDefault(score int, risk valueobject.RiskLevel, utilizationPct float64) float64 {
	s := float64(min(max(score, valueobject.MinScore), valueobject.MaxScore))

	logit := (pdPivotScore-s)/pdScoreScale + riskOffsets[risk] + utilizationOffset(utilizationPct)
	p := 1 / (1 + math.Exp(-logit))

	return math.Min(math.Max(p, MinDefaultProbability), MaxDefaultProbability)
}

func utilizationOffset(pct float64) float64 {
	switch {
	case pct <= 30:
		return -0.15
	case pct <= 50:
		return -0.02
	case pct <= 75:
		return 0.18
	default:
		return 0.35
	}
}

// AsPercentage renders a probability as a percentage rounded to two places.
func AsPercentage(p float64) float64 {
	return math.Round(p*100*100) / 100
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

func TestProbabilityOfDefault_WorkedExample(t *testing.T) {
	p := ProbabilityOfDefault(680, valueobject.RiskLevelMedium, 50)

	assert.InDelta(t, 0.4044, p, 0.001)
	assert.Greater(t, p, MinDefaultProbability)
	assert.Less(t, p, MaxDefaultProbability)
}

func TestProbabilityOfDefault_Bounds(t *testing.T) {
	levels := []valueobject.RiskLevel{valueobject.RiskLevelLow, valueobject.RiskLevelMedium, valueobject.RiskLevelHigh, {}}
	for _, lvl := range levels {
		for _, util := range []float64{0, 30, 50, 75, 100, 500} {
			for score := 0; score <= 1000; score += 10 {
				p := ProbabilityOfDefault(score, lvl, util)
				assert.GreaterOrEqual(t, p, MinDefaultProbability)
				assert.LessOrEqual(t, p, MaxDefaultProbability)
			}
		}
	}
	assert.Equal(t, MaxDefaultProbability, ProbabilityOfDefault(300, valueobject.RiskLevelHigh, 100))
}

func TestProbabilityOfDefault_MonotoneInScore(t *testing.T) {
	for _, util := range []float64{10, 40, 60, 90} {
		prev := 1.0
		for score := 300; score <= 850; score++ {
			p := ProbabilityOfDefault(score, valueobject.RiskLevelMedium, util)
			assert.LessOrEqual(t, p, prev, "score %d util %v", score, util)
			prev = p
		}
	}
}

func TestProbabilityOfDefault_ClampsScore(t *testing.T) {
	assert.Equal(t,
		ProbabilityOfDefault(850, valueobject.RiskLevelLow, 0),
		ProbabilityOfDefault(990, valueobject.RiskLevelLow, 0))
	assert.Equal(t,
		ProbabilityOfDefault(300, valueobject.RiskLevelLow, 0),
		ProbabilityOfDefault(-5, valueobject.RiskLevelLow, 0))
}

func TestProbabilityOfDefault_Deterministic(t *testing.T) {
	a := ProbabilityOfDefault(702, valueobject.RiskLevelMedium, 44.4)
	b := ProbabilityOfDefault(702, valueobject.RiskLevelMedium, 44.4)
	assert.Equal(t, a, b)
}

func TestAsPercentage(t *testing.T) {
	assert.Equal(t, 40.44, AsPercentage(0.404391))
	assert.Equal(t, 1.0, AsPercentage(0.01))
	assert.Equal(t, 95.0, AsPercentage(0.95))
}

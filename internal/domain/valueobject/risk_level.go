package valueobject

import (
	"fmt"
	"strings"
)

// Score bounds of the composite credit score.
const (
	MinScore = 300
	MaxScore = 850
)

// Risk thresholds on the composite score.
const (
	lowRiskThreshold    = 720
	mediumRiskThreshold = 660
)

// RiskLevel is the coarse risk category derived from a score.
type RiskLevel struct {
	value string
}

const (
	riskLevelLow    = "low"
	riskLevelMedium = "medium"
	riskLevelHigh   = "high"
)

var (
	RiskLevelLow    = RiskLevel{value: riskLevelLow}
	RiskLevelMedium = RiskLevel{value: riskLevelMedium}
	RiskLevelHigh   = RiskLevel{value: riskLevelHigh}
)

var validRiskLevels = map[string]RiskLevel{
	riskLevelLow:    RiskLevelLow,
	riskLevelMedium: RiskLevelMedium,
	riskLevelHigh:   RiskLevelHigh,
}

// NewRiskLevel parses a stored risk level. Matching is case-insensitive.
func NewRiskLevel(s string) (RiskLevel, error) {
	v, ok := validRiskLevels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return RiskLevel{}, fmt.Errorf("invalid risk level: %q", s)
	}
	return v, nil
}

// RiskLevelFromScore classifies a score: >= 720 low, >= 660 medium, else high.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= lowRiskThreshold:
		return RiskLevelLow
	case score >= mediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}

// String returns the lower-case representation.
func (r RiskLevel) String() string { return r.value }

// Category returns the upper-case display form (LOW, MEDIUM, HIGH).
func (r RiskLevel) Category() string { return strings.ToUpper(r.value) }

// IsZero returns true if the level has not been initialised.
func (r RiskLevel) IsZero() bool { return r.value == "" }

// Equal returns true when both levels carry the same value.
func (r RiskLevel) Equal(other RiskLevel) bool { return r.value == other.value }

// Recommendation maps the level to the lending decision shown to reviewers.
func (r RiskLevel) Recommendation() Recommendation {
	switch r.value {
	case riskLevelLow:
		return RecommendationApprove
	case riskLevelMedium:
		return RecommendationReview
	default:
		return RecommendationReject
	}
}

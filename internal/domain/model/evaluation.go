package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

// Evaluation is the read-only underwriting view of one applicant.
type Evaluation struct {
	ID                   string
	Applicant            ApplicantProfile
	Score                int
	RiskLevel            valueobject.RiskLevel
	ProbabilityOfDefault float64
	DefaultPercentage    float64
	Recommendation       valueobject.Recommendation
	Breakdown            []FactorContribution
	Strengths            []string
	Weaknesses           []string
	Limits               LendingLimits
	History              []HistoryPoint
	PendingRequests      []PendingRequest
	UtilizationPct       float64
	ScoredAt             time.Time
	GeneratedAt          time.Time
	Notes                string
}

// ApplicantProfile is the header block of an evaluation.
type ApplicantProfile struct {
	ApplicantID    string
	UserID         int64
	Name           string
	DateOfBirth    *time.Time
	Phone          string
	Address        string
	MonthlyIncome  *decimal.Decimal
	EmploymentType string
}

// FactorContribution is one line of the display breakdown on a 1000-point scale.
type FactorContribution struct {
	Key       string
	Label     string
	Value     int
	Weight    float64
	MaxPoints int
	Points    float64
}

// LendingLimits are the ceilings offered at a risk level.
type LendingLimits struct {
	MaxAmount    decimal.Decimal
	MaxTenure    int
	MaxAPRPct    float64
	RiskCategory string
}

// HistoryPoint is one snapshot in the evaluation's score history.
type HistoryPoint struct {
	Date  time.Time
	Score int
	Event string
}

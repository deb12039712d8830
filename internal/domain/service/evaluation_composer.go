package service

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// EvaluationComposer – assembles the underwriting view of an applicant
// ---------------------------------------------------------------------------

// HistoryLength is the number of snapshots shown on an evaluation.
const HistoryLength = 6

const (
	breakdownScale    = 1000
	strongThreshold   = 0.75
	weakThreshold     = 0.55
	historyEventLabel = "Evaluation snapshot"
	evaluationNotes   = "Generated from latest score history and account utilization."
)

// Display weights over a 1000-point scale. These differ from the composite
// weights and cover the carry-forward factors as well.
var breakdownWeights = []struct {
	key    string
	label  string
	weight float64
}{
	{model.FactorPaymentHistory, "Payment History", 0.25},
	{model.FactorCreditUtilization, "Credit Utilization", 0.18},
	{model.FactorCreditAge, "Length of Credit History", 0.10},
	{model.FactorCreditMix, "Credit Mix", 0.08},
	{model.FactorInquiries, "Recent Credit Inquiries", 0.08},
	{model.FactorDebtToIncome, "Debt-to-Income Ratio", 0.10},
	{model.FactorIncomeStability, "Income Stability", 0.08},
	{model.FactorEmploymentHistory, "Employment History", 0.05},
	{model.FactorDelinquencies, "Delinquencies / Public Records", 0.05},
	{model.FactorCollateralStrength, "Collateral / Asset Strength", 0.03},
}

var lendingLimits = map[valueobject.RiskLevel]model.LendingLimits{
	valueobject.RiskLevelLow:    {MaxAmount: decimal.NewFromInt(500000), MaxTenure: 48, MaxAPRPct: 12.5},
	valueobject.RiskLevelMedium: {MaxAmount: decimal.NewFromInt(250000), MaxTenure: 30, MaxAPRPct: 16.0},
	valueobject.RiskLevelHigh:   {MaxAmount: decimal.NewFromInt(100000), MaxTenure: 18, MaxAPRPct: 22.0},
}

// EvaluationInput is everything the composer reads.
type EvaluationInput struct {
	User   model.User
	Latest model.ScoreSnapshot
	// History in chronological order; only the last HistoryLength are used.
	History        []model.ScoreSnapshot
	Pending        []model.PendingRequest
	UtilizationPct float64
	Now            time.Time
}

// EvaluationComposer is stateless.
type EvaluationComposer struct{}

// NewEvaluationComposer returns a new composer.
func NewEvaluationComposer() *EvaluationComposer {
	return &EvaluationComposer{}
}

// Compose builds the evaluation. The risk category is always re-derived
// from the score; the level stored on the snapshot is not trusted.
func (c *EvaluationComposer) Compose(in EvaluationInput) model.Evaluation {
	risk := valueobject.RiskLevelFromScore(in.Latest.Score)
	pd := ProbabilityOfDefault(in.Latest.Score, risk, in.UtilizationPct)

	breakdown := Breakdown(in.Latest.Factors)
	strengths, weaknesses := Highlights(breakdown)

	limits := lendingLimits[risk]
	limits.RiskCategory = risk.Category()

	pending := in.Pending
	if pending == nil {
		pending = []model.PendingRequest{}
	}

	return model.Evaluation{
		ID:                   EvaluationID(in.User.ID, in.Latest.CalculatedAt),
		Applicant:            applicantProfile(in.User),
		Score:                in.Latest.Score,
		RiskLevel:            risk,
		ProbabilityOfDefault: pd,
		DefaultPercentage:    AsPercentage(pd),
		Recommendation:       risk.Recommendation(),
		Breakdown:            breakdown,
		Strengths:            strengths,
		Weaknesses:           weaknesses,
		Limits:               limits,
		History:              historyPoints(in.History),
		PendingRequests:      pending,
		UtilizationPct:       in.UtilizationPct,
		ScoredAt:             in.Latest.CalculatedAt,
		GeneratedAt:          in.Now,
		Notes:                evaluationNotes,
	}
}

// Breakdown scores each display factor on its share of 1000 points.
// Missing factors count as zero.
func Breakdown(f model.FactorSet) []model.FactorContribution {
	out := make([]model.FactorContribution, 0, len(breakdownWeights))
	for _, w := range breakdownWeights {
		raw, _ := f.Value(w.key)
		value := min(max(int(raw), 0), 100)
		maxPoints := int(math.Round(w.weight * breakdownScale))
		points := math.Round(float64(value)/100*float64(maxPoints)*10) / 10

		out = append(out, model.FactorContribution{
			Key:       w.key,
			Label:     w.label,
			Value:     value,
			Weight:    w.weight,
			MaxPoints: maxPoints,
			Points:    points,
		})
	}
	return out
}

// Highlights lists factors at or above 75% of their points as strengths and
// those under 55% as weaknesses.
func Highlights(breakdown []model.FactorContribution) (strengths, weaknesses []string) {
	strengths, weaknesses = []string{}, []string{}
	for _, item := range breakdown {
		if item.MaxPoints == 0 {
			continue
		}
		ratio := item.Points / float64(item.MaxPoints)
		switch {
		case ratio >= strongThreshold:
			strengths = append(strengths, item.Label+" is strong.")
		case ratio < weakThreshold:
			weaknesses = append(weaknesses, item.Label+" needs improvement.")
		}
	}
	return strengths, weaknesses
}

// EvaluationID names an evaluation after its user and snapshot time.
func EvaluationID(userID int64, at time.Time) string {
	return fmt.Sprintf("EVAL-%d-%s", userID, at.UTC().Format("20060102150405"))
}

func historyPoints(history []model.ScoreSnapshot) []model.HistoryPoint {
	if len(history) > HistoryLength {
		history = history[len(history)-HistoryLength:]
	}
	out := make([]model.HistoryPoint, 0, len(history))
	for _, s := range history {
		out = append(out, model.HistoryPoint{
			Date:  model.DateOf(s.CalculatedAt),
			Score: s.Score,
			Event: historyEventLabel,
		})
	}
	return out
}

func applicantProfile(u model.User) model.ApplicantProfile {
	return model.ApplicantProfile{
		ApplicantID:    u.ApplicantID(),
		UserID:         u.ID,
		Name:           u.DisplayName(),
		DateOfBirth:    u.DateOfBirth,
		Phone:          u.Phone,
		Address:        u.Address,
		MonthlyIncome:  u.MonthlyIncome,
		EmploymentType: u.EmploymentType,
	}
}

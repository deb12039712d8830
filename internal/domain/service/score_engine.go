package service

import (
	"math"
	"time"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
)

// ---------------------------------------------------------------------------
// ScoreEngine – derives factor sub-scores and the composite score
// ---------------------------------------------------------------------------

// Inquiry penalties applied by lifecycle events.
const (
	LoanApprovalInquiryPenalty = 8
	SettlementRecoveryBonus    = -8
)

// Composite weights of the seven derived factors. They sum to 1.
var compositeWeights = []struct {
	key    string
	weight float64
}{
	{model.FactorPaymentHistory, 0.35},
	{model.FactorCreditUtilization, 0.25},
	{model.FactorCreditAge, 0.10},
	{model.FactorDebtToIncome, 0.10},
	{model.FactorInquiries, 0.08},
	{model.FactorDelinquencies, 0.07},
	{model.FactorCreditMix, 0.05},
}

const (
	scoreBase  = 300.0
	scoreRange = 5.5 // points per weighted factor point; 100 maps to 850

	daysPerYear       = 365.0
	defaultAccountAge = 365.0
	lateAfterDays     = 30
)

// ScoreEngine computes snapshots from ledger facts. It is pure; the caller
// supplies the previous snapshot's factors and the clock.
type ScoreEngine struct{}

// NewScoreEngine returns a new engine instance.
func NewScoreEngine() *ScoreEngine {
	return &ScoreEngine{}
}

// Compute derives every factor and the composite score. previous carries the
// inquiries count and the carry-forward factors; pass model.DefaultFactorSet
// when the user has no snapshot yet.
func (e *ScoreEngine) Compute(facts model.LedgerFacts, previous model.FactorSet, inquiryPenalty int, now time.Time) model.ScoreSnapshot {
	factors := model.FactorSet{
		PaymentHistory:     PaymentHistoryFactor(facts.Payments),
		CreditUtilization:  UtilizationFactor(facts.UtilizationPct()),
		CreditAge:          CreditAgeFactor(facts.Accounts, now),
		Inquiries:          clampInt(clampFactor(previous.Inquiries)-inquiryPenalty, 35, 100),
		DebtToIncome:       DebtToIncomeFactor(facts),
		Delinquencies:      DelinquencyFactor(facts.Payments),
		CreditMix:          CreditMixFactor(facts.Accounts),
		IncomeStability:    clampFactor(previous.IncomeStability),
		EmploymentHistory:  clampFactor(previous.EmploymentHistory),
		CollateralStrength: clampFactor(previous.CollateralStrength),
		Extra:              copyExtra(previous.Extra),
	}

	return model.NewScoreSnapshot(facts.UserID, CompositeScore(factors), factors, now)
}

// CompositeScore maps the weighted factor average onto [300, 850].
func CompositeScore(f model.FactorSet) int {
	var weighted float64
	for _, w := range compositeWeights {
		v, _ := f.Value(w.key)
		weighted += v * w.weight
	}
	return clampInt(int(math.Round(scoreBase+weighted*scoreRange)), 300, 850)
}

// PaymentHistoryFactor is 35 + 65 × the on-time share of completed payments,
// or 70 with no completed payment. On time means paid no later than due.
func PaymentHistoryFactor(payments []model.PaymentFact) int {
	var completed, onTime int
	for _, p := range payments {
		if !p.Status.IsCompleted() {
			continue
		}
		completed++
		if p.PaidDate != nil && !model.DateOf(*p.PaidDate).After(model.DateOf(p.DueDate)) {
			onTime++
		}
	}
	if completed == 0 {
		return 70
	}
	ratio := float64(onTime) / float64(completed)
	return clampInt(int(math.Round(35+65*ratio)), 35, 100)
}

// UtilizationFactor is a decreasing piecewise-linear map of utilization
// percent: 100 up to 10%, 80 at 30%, 56 at 50%, 16 at 75%, 0 from 95%.
func UtilizationFactor(pct float64) int {
	var v float64
	switch {
	case pct <= 10:
		v = 100
	case pct <= 30:
		v = 100 - (pct-10)*1.0
	case pct <= 50:
		v = 80 - (pct-30)*1.2
	case pct <= 75:
		v = 56 - (pct-50)*1.6
	default:
		v = 16 - (pct-75)*0.8
	}
	return clampInt(int(math.Round(v)), 0, 100)
}

// CreditAgeFactor maps the average account age onto [45, 100]: 45 up to one
// year, +11 a year to 89 at five years, then +2.2 a year.
func CreditAgeFactor(accounts []model.AccountFact, now time.Time) int {
	avgDays := defaultAccountAge
	if len(accounts) > 0 {
		today := model.DateOf(now)
		var total float64
		for _, a := range accounts {
			total += max(today.Sub(model.DateOf(a.OpenedAt)).Hours()/24, 0)
		}
		avgDays = total / float64(len(accounts))
	}

	years := avgDays / daysPerYear
	var v float64
	switch {
	case years <= 1:
		v = 45
	case years <= 5:
		v = 45 + 11*(years-1)
	default:
		v = 89 + 2.2*(years-5)
	}
	return clampInt(int(math.Round(v)), 45, 100)
}

// DebtToIncomeFactor compares the active balance to a year of income.
// Unknown income scores a conservative 50.
func DebtToIncomeFactor(facts model.LedgerFacts) int {
	if !facts.MonthlyIncome.IsPositive() {
		return 50
	}
	balance, _ := facts.ActiveBalance.Float64()
	income, _ := facts.MonthlyIncome.Float64()
	ratio := balance / (income * 12)
	return clampInt(int(math.Round(100-75*ratio)), 10, 100)
}

// DelinquencyFactor deducts 12 per completed payment settled more than 30
// days late and up to 40 for the unpaid share of completed obligations.
func DelinquencyFactor(payments []model.PaymentFact) int {
	var seriouslyLate int
	var totalDue, shortfall float64
	for _, p := range payments {
		if !p.Status.IsCompleted() {
			continue
		}
		if p.PaidDate != nil {
			daysLate := model.DateOf(*p.PaidDate).Sub(model.DateOf(p.DueDate)).Hours() / 24
			if daysLate > lateAfterDays {
				seriouslyLate++
			}
		}
		due, _ := p.AmountDue.Float64()
		paid, _ := p.AmountPaid.Float64()
		totalDue += due
		shortfall += max(due-paid, 0)
	}

	v := 100 - 12*float64(seriouslyLate)
	if totalDue > 0 {
		v -= 40 * shortfall / totalDue
	}
	return clampInt(int(math.Round(v)), 20, 100)
}

// CreditMixFactor rewards up to three distinct account types and penalises
// holding more than six facilities.
func CreditMixFactor(accounts []model.AccountFact) int {
	types := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		types[a.Type.String()] = struct{}{}
	}
	v := 55 + 15*min(len(types), 3) - 5*max(len(accounts)-6, 0)
	return clampInt(v, 25, 100)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFactor(v int) int { return clampInt(v, model.FactorMin, model.FactorMax) }

func copyExtra(src map[string]float64) map[string]float64 {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

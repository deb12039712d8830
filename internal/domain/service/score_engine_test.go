package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

var testNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return testNow.AddDate(0, 0, -n) }

func completedPayment(due, paid time.Time, amountDue, amountPaid int64) model.PaymentFact {
	status := valueobject.PaymentStatusPaid
	if paid.After(due) {
		status = valueobject.PaymentStatusLate
	}
	return model.PaymentFact{
		DueDate:    due,
		PaidDate:   &paid,
		AmountDue:  decimal.NewFromInt(amountDue),
		AmountPaid: decimal.NewFromInt(amountPaid),
		Status:     status,
	}
}

func TestScoreEngine_Baseline(t *testing.T) {
	engine := NewScoreEngine()

	snap := engine.Compute(model.LedgerFacts{UserID: 1}, model.DefaultFactorSet(), 0, testNow)

	assert.Equal(t, 70, snap.Factors.PaymentHistory)
	assert.Equal(t, 100, snap.Factors.CreditUtilization)
	assert.Equal(t, 45, snap.Factors.CreditAge)
	assert.Equal(t, 80, snap.Factors.Inquiries)
	assert.Equal(t, 50, snap.Factors.DebtToIncome)
	assert.Equal(t, 100, snap.Factors.Delinquencies)
	assert.Equal(t, 55, snap.Factors.CreditMix)
	assert.Equal(t, 713, snap.Score)
	assert.Equal(t, valueobject.RiskLevelMedium, snap.RiskLevel)
	assert.Equal(t, int64(1), snap.UserID)
	assert.Equal(t, testNow, snap.CalculatedAt)
}

func TestScoreEngine_CarriesForwardFactors(t *testing.T) {
	previous := model.DefaultFactorSet()
	previous.IncomeStability = 91
	previous.EmploymentHistory = 40
	previous.CollateralStrength = 12
	previous.Extra = map[string]float64{"bureau_adjustment": 4}

	snap := NewScoreEngine().Compute(model.LedgerFacts{UserID: 1}, previous, 0, testNow)

	assert.Equal(t, 91, snap.Factors.IncomeStability)
	assert.Equal(t, 40, snap.Factors.EmploymentHistory)
	assert.Equal(t, 12, snap.Factors.CollateralStrength)
	assert.Equal(t, map[string]float64{"bureau_adjustment": 4}, snap.Factors.Extra)
}

func TestScoreEngine_BoundsCarriedFactors(t *testing.T) {
	previous := model.DefaultFactorSet()
	previous.IncomeStability = 250
	previous.EmploymentHistory = -40
	previous.CollateralStrength = 1 << 40
	previous.Inquiries = 1 << 40

	snap := NewScoreEngine().Compute(model.LedgerFacts{UserID: 1}, previous, LoanApprovalInquiryPenalty, testNow)

	assert.Equal(t, 100, snap.Factors.IncomeStability)
	assert.Equal(t, 0, snap.Factors.EmploymentHistory)
	assert.Equal(t, 100, snap.Factors.CollateralStrength)
	assert.Equal(t, 92, snap.Factors.Inquiries)
	assert.GreaterOrEqual(t, snap.Score, 300)
	assert.LessOrEqual(t, snap.Score, 850)
}

func TestScoreEngine_InquiryPenalty(t *testing.T) {
	tests := []struct {
		name     string
		previous int
		penalty  int
		want     int
	}{
		{name: "loan approval", previous: 80, penalty: LoanApprovalInquiryPenalty, want: 72},
		{name: "recovery bonus", previous: 72, penalty: SettlementRecoveryBonus, want: 80},
		{name: "floor", previous: 40, penalty: 8, want: 35},
		{name: "ceiling", previous: 96, penalty: -8, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := model.DefaultFactorSet()
			previous.Inquiries = tt.previous
			snap := NewScoreEngine().Compute(model.LedgerFacts{UserID: 1}, previous, tt.penalty, testNow)
			assert.Equal(t, tt.want, snap.Factors.Inquiries)
		})
	}
}

func TestScoreEngine_ScoreAlwaysInRangeAndClassified(t *testing.T) {
	worst := model.LedgerFacts{
		UserID:            1,
		MonthlyIncome:     decimal.NewFromInt(1),
		ActiveCreditLimit: decimal.NewFromInt(100),
		ActiveBalance:     decimal.NewFromInt(100),
		Payments: []model.PaymentFact{
			completedPayment(daysAgo(200), daysAgo(100), 1000, 0),
			completedPayment(daysAgo(150), daysAgo(50), 1000, 0),
		},
	}
	previous := model.DefaultFactorSet()
	previous.Inquiries = 35

	for _, facts := range []model.LedgerFacts{worst, {UserID: 2}} {
		snap := NewScoreEngine().Compute(facts, previous, 50, testNow)
		assert.GreaterOrEqual(t, snap.Score, 300)
		assert.LessOrEqual(t, snap.Score, 850)
		assert.Equal(t, valueobject.RiskLevelFromScore(snap.Score), snap.RiskLevel)
	}
}

func TestUtilizationFactor(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{pct: 0, want: 100},
		{pct: 10, want: 100},
		{pct: 20, want: 90},
		{pct: 30, want: 80},
		{pct: 50, want: 56},
		{pct: 75, want: 16},
		{pct: 95, want: 0},
		{pct: 150, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UtilizationFactor(tt.pct), "pct %v", tt.pct)
	}

	facts := model.LedgerFacts{
		ActiveCreditLimit: decimal.NewFromInt(20000),
		ActiveBalance:     decimal.NewFromInt(10000),
	}
	assert.InDelta(t, 50.0, facts.UtilizationPct(), 1e-9)
	assert.Equal(t, 56, UtilizationFactor(facts.UtilizationPct()))
}

func TestPaymentHistoryFactor(t *testing.T) {
	assert.Equal(t, 70, PaymentHistoryFactor(nil))

	payments := []model.PaymentFact{
		completedPayment(daysAgo(90), daysAgo(95), 100, 100),
		completedPayment(daysAgo(60), daysAgo(60), 100, 100),
		completedPayment(daysAgo(30), daysAgo(20), 100, 100),
		{DueDate: daysAgo(1), AmountDue: decimal.NewFromInt(100), AmountPaid: decimal.Zero, Status: valueobject.PaymentStatusDue},
	}
	assert.Equal(t, 78, PaymentHistoryFactor(payments))

	onlyOnTime := payments[:2]
	assert.Equal(t, 100, PaymentHistoryFactor(onlyOnTime))
}

func TestCreditAgeFactor(t *testing.T) {
	acct := func(days int) model.AccountFact {
		return model.AccountFact{Type: valueobject.AccountTypeLoanGeneral, OpenedAt: daysAgo(days)}
	}
	assert.Equal(t, 45, CreditAgeFactor(nil, testNow))
	assert.Equal(t, 45, CreditAgeFactor([]model.AccountFact{acct(100)}, testNow))
	assert.Equal(t, 67, CreditAgeFactor([]model.AccountFact{acct(3 * 365)}, testNow))
	assert.Equal(t, 67, CreditAgeFactor([]model.AccountFact{acct(365), acct(5 * 365)}, testNow))
	assert.Equal(t, 100, CreditAgeFactor([]model.AccountFact{acct(20 * 365)}, testNow))
}

func TestDebtToIncomeFactor(t *testing.T) {
	assert.Equal(t, 50, DebtToIncomeFactor(model.LedgerFacts{ActiveBalance: decimal.NewFromInt(5000)}))
	assert.Equal(t, 100, DebtToIncomeFactor(model.LedgerFacts{MonthlyIncome: decimal.NewFromInt(10000)}))
	assert.Equal(t, 63, DebtToIncomeFactor(model.LedgerFacts{
		MonthlyIncome: decimal.NewFromInt(10000),
		ActiveBalance: decimal.NewFromInt(60000),
	}))
	assert.Equal(t, 10, DebtToIncomeFactor(model.LedgerFacts{
		MonthlyIncome: decimal.NewFromInt(100),
		ActiveBalance: decimal.NewFromInt(1000000),
	}))
}

func TestDelinquencyFactor(t *testing.T) {
	assert.Equal(t, 100, DelinquencyFactor(nil))

	late := []model.PaymentFact{completedPayment(daysAgo(50), daysAgo(5), 1000, 1000)}
	assert.Equal(t, 88, DelinquencyFactor(late))

	short := []model.PaymentFact{completedPayment(daysAgo(10), daysAgo(10), 1000, 500)}
	assert.Equal(t, 80, DelinquencyFactor(short))

	var many []model.PaymentFact
	for i := 0; i < 10; i++ {
		many = append(many, completedPayment(daysAgo(100), daysAgo(10), 100, 0))
	}
	assert.Equal(t, 20, DelinquencyFactor(many))
}

func TestCreditMixFactor(t *testing.T) {
	of := func(types ...valueobject.AccountType) []model.AccountFact {
		out := make([]model.AccountFact, 0, len(types))
		for _, tp := range types {
			out = append(out, model.AccountFact{Type: tp})
		}
		return out
	}
	general := valueobject.AccountTypeLoanGeneral

	assert.Equal(t, 55, CreditMixFactor(nil))
	assert.Equal(t, 70, CreditMixFactor(of(general)))
	assert.Equal(t, 100, CreditMixFactor(of(general, valueobject.AccountTypeLoanEMI, valueobject.AccountTypeCreditCardUsage)))
	assert.Equal(t, 60, CreditMixFactor(of(general, general, general, general, general, general, general, general)))
}

func TestCompositeScore(t *testing.T) {
	perfect := model.FactorSet{
		PaymentHistory: 100, CreditUtilization: 100, CreditAge: 100, Inquiries: 100,
		DebtToIncome: 100, Delinquencies: 100, CreditMix: 100,
	}
	assert.Equal(t, 850, CompositeScore(perfect))
	assert.Equal(t, 300, CompositeScore(model.FactorSet{}))
	require.Equal(t, 713, CompositeScore(model.DefaultFactorSet()))
}

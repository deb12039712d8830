package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

// LedgerFacts is the raw input to scoring, read in one consistent view.
type LedgerFacts struct {
	UserID        int64
	MonthlyIncome decimal.Decimal

	// Totals over active accounts only.
	ActiveCreditLimit decimal.Decimal
	ActiveBalance     decimal.Decimal
	ActiveAccounts    int

	// Accounts that exist as real facilities (active or closed).
	Accounts []AccountFact
	// Every obligation on any of the user's accounts.
	Payments []PaymentFact
}

// AccountFact is the slice of an account that scoring looks at.
type AccountFact struct {
	Type     valueobject.AccountType
	OpenedAt time.Time
}

// PaymentFact is the slice of an obligation that scoring looks at.
type PaymentFact struct {
	DueDate    time.Time
	PaidDate   *time.Time
	AmountDue  decimal.Decimal
	AmountPaid decimal.Decimal
	Status     valueobject.PaymentStatus
}

// UtilizationPct is the active balance as a percentage of the active limit,
// zero when there is no limit.
func (f LedgerFacts) UtilizationPct() float64 {
	if !f.ActiveCreditLimit.IsPositive() {
		return 0
	}
	pct, _ := f.ActiveBalance.Div(f.ActiveCreditLimit).Mul(decimal.NewFromInt(100)).Float64()
	return max(pct, 0)
}

package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/money"
)

// Tenure bounds for instalment products, in months.
const (
	MinTenureMonths = 3
	MaxTenureMonths = 60
)

// ---------------------------------------------------------------------------
// Account aggregate root
// ---------------------------------------------------------------------------

// Account is a credit facility owned by one user. It is immutable;
// transitions return a new copy.
type Account struct {
	id           int64
	userID       int64
	accountType  valueobject.AccountType
	purpose      string
	tenureMonths *int
	creditLimit  decimal.Decimal
	balance      decimal.Decimal
	openedAt     time.Time
	status       valueobject.AccountStatus
}

// NewLoanRequest creates a pending_approval account whose limit and balance
// equal the requested amount. The id is assigned on insert.
func NewLoanRequest(
	userID int64,
	accountType valueobject.AccountType,
	amount decimal.Decimal,
	purpose string,
	tenureMonths *int,
	now time.Time,
) (Account, error) {
	if userID <= 0 {
		return Account{}, NewValidationError("user_id", "is required")
	}
	if accountType.IsZero() {
		return Account{}, NewValidationError("category", "is required")
	}
	if !amount.IsPositive() {
		return Account{}, NewValidationError("amount", "must be greater than zero")
	}
	if purpose == "" {
		return Account{}, NewValidationError("purpose", "is required")
	}

	var tenure *int
	if accountType.RequiresTenure() {
		if tenureMonths == nil || *tenureMonths < MinTenureMonths || *tenureMonths > MaxTenureMonths {
			return Account{}, NewValidationError("tenure_months", "must be between %d and %d", MinTenureMonths, MaxTenureMonths)
		}
		t := *tenureMonths
		tenure = &t
	}

	amount = money.Round(amount)
	return Account{
		userID:       userID,
		accountType:  accountType,
		purpose:      purpose,
		tenureMonths: tenure,
		creditLimit:  amount,
		balance:      amount,
		openedAt:     DateOf(now),
		status:       valueobject.AccountStatusPendingApproval,
	}, nil
}

// ReconstructAccount rebuilds an Account from persistence.
func ReconstructAccount(
	id, userID int64,
	accountType valueobject.AccountType,
	purpose string,
	tenureMonths *int,
	creditLimit, balance decimal.Decimal,
	openedAt time.Time,
	status valueobject.AccountStatus,
) Account {
	return Account{
		id:           id,
		userID:       userID,
		accountType:  accountType,
		purpose:      purpose,
		tenureMonths: tenureMonths,
		creditLimit:  creditLimit,
		balance:      balance,
		openedAt:     openedAt,
		status:       status,
	}
}

// WithID returns a copy carrying the storage-assigned id.
func (a Account) WithID(id int64) Account {
	a.id = id
	return a
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Approve activates a pending account and schedules its first obligation:
// the full balance, due LoanDueAfter from the decision date.
func (a Account) Approve(now time.Time) (Account, PaymentObligation, error) {
	if !a.status.Equal(valueobject.AccountStatusPendingApproval) {
		return a, PaymentObligation{}, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.AccountStatusActive

	obligation := NewScheduledObligation(a.id, DateOf(now).Add(LoanDueAfter), a.balance)
	return next, obligation, nil
}

// Reject declines a pending account.
func (a Account) Reject() (Account, error) {
	if !a.status.Equal(valueobject.AccountStatusPendingApproval) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.AccountStatusRejected
	return next, nil
}

// CheckSettlement verifies a settlement of amount can be applied.
func (a Account) CheckSettlement(amount decimal.Decimal) error {
	if !a.status.Equal(valueobject.AccountStatusActive) {
		return valueobject.ErrInvalidStatusTransition
	}
	if !amount.IsPositive() {
		return NewValidationError("amount", "must be greater than zero")
	}
	if money.Exceeds(amount, a.balance) {
		return &SettlementConflictError{Outstanding: a.balance, Requested: amount}
	}
	return nil
}

// ApplySettlement reduces the balance by amount. A residual below the
// comparison tolerance is treated as zero and closes the account.
func (a Account) ApplySettlement(amount decimal.Decimal) (Account, error) {
	if err := a.CheckSettlement(amount); err != nil {
		return a, err
	}
	next := a
	next.balance = a.balance.Sub(amount)
	if money.IsZero(next.balance) || next.balance.IsNegative() {
		next.balance = decimal.Zero
	}
	if next.balance.IsZero() {
		next.status = valueobject.AccountStatusClosed
	}
	return next, nil
}

// ---------------------------------------------------------------------------
// Getters
// ---------------------------------------------------------------------------

func (a Account) ID() int64                         { return a.id }
func (a Account) UserID() int64                     { return a.userID }
func (a Account) Type() valueobject.AccountType     { return a.accountType }
func (a Account) Purpose() string                   { return a.purpose }
func (a Account) TenureMonths() *int                { return a.tenureMonths }
func (a Account) CreditLimit() decimal.Decimal      { return a.creditLimit }
func (a Account) Balance() decimal.Decimal          { return a.balance }
func (a Account) OpenedAt() time.Time               { return a.openedAt }
func (a Account) Status() valueobject.AccountStatus { return a.status }
func (a Account) IsOwnedBy(userID int64) bool       { return a.userID == userID }
func (a Account) IsClosed() bool                    { return a.status.Equal(valueobject.AccountStatusClosed) }

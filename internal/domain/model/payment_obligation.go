package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/money"
)

// ---------------------------------------------------------------------------
// PaymentObligation
// ---------------------------------------------------------------------------

// PaymentObligation is either a scheduled instalment on an account or a
// customer's settlement request awaiting review. amountPaid never exceeds
// amountDue.
type PaymentObligation struct {
	id         int64
	accountID  int64
	dueDate    time.Time
	paidDate   *time.Time
	amountDue  decimal.Decimal
	amountPaid decimal.Decimal
	status     valueobject.PaymentStatus
}

// NewScheduledObligation creates a due instalment.
func NewScheduledObligation(accountID int64, dueDate time.Time, amountDue decimal.Decimal) PaymentObligation {
	return PaymentObligation{
		accountID:  accountID,
		dueDate:    DateOf(dueDate),
		amountDue:  amountDue,
		amountPaid: decimal.Zero,
		status:     valueobject.PaymentStatusDue,
	}
}

// NewSettlementRequest records a customer's request to pay amount against
// the account. It is due on the day it was made.
func NewSettlementRequest(accountID int64, amount decimal.Decimal, now time.Time) (PaymentObligation, error) {
	if accountID <= 0 {
		return PaymentObligation{}, NewValidationError("loan_id", "is required")
	}
	if !amount.IsPositive() {
		return PaymentObligation{}, NewValidationError("amount", "must be greater than zero")
	}
	return PaymentObligation{
		accountID:  accountID,
		dueDate:    DateOf(now),
		amountDue:  money.Round(amount),
		amountPaid: decimal.Zero,
		status:     valueobject.PaymentStatusPendingApproval,
	}, nil
}

// ReconstructPaymentObligation rebuilds an obligation from persistence.
func ReconstructPaymentObligation(
	id, accountID int64,
	dueDate time.Time,
	paidDate *time.Time,
	amountDue, amountPaid decimal.Decimal,
	status valueobject.PaymentStatus,
) PaymentObligation {
	return PaymentObligation{
		id:         id,
		accountID:  accountID,
		dueDate:    dueDate,
		paidDate:   paidDate,
		amountDue:  amountDue,
		amountPaid: amountPaid,
		status:     status,
	}
}

// WithID returns a copy carrying the storage-assigned id.
func (p PaymentObligation) WithID(id int64) PaymentObligation {
	p.id = id
	return p
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// ApplyPayment credits amount to a due instalment on the given day. The
// instalment becomes paid (or late, when today is after the due date) once
// fully covered and stays due otherwise. late reports the late outcome.
func (p PaymentObligation) ApplyPayment(amount decimal.Decimal, now time.Time) (next PaymentObligation, late bool, err error) {
	if !p.status.Equal(valueobject.PaymentStatusDue) {
		return p, false, valueobject.ErrInvalidStatusTransition
	}
	today := DateOf(now)

	next = p
	next.amountPaid = money.Min(p.amountDue, p.amountPaid.Add(amount))
	next.paidDate = &today

	switch {
	case money.Exceeds(p.amountDue, next.amountPaid):
		next.status = valueobject.PaymentStatusDue
	case today.After(p.dueDate):
		next.status = valueobject.PaymentStatusLate
		late = true
	default:
		next.status = valueobject.PaymentStatusPaid
	}
	return next, late, nil
}

// ApproveSettlement closes a pending settlement request as its own record:
// amount paid equals amount due.
func (p PaymentObligation) ApproveSettlement(now time.Time) (PaymentObligation, error) {
	if !p.status.Equal(valueobject.PaymentStatusPendingApproval) {
		return p, valueobject.ErrInvalidStatusTransition
	}
	today := DateOf(now)
	next := p
	next.status = valueobject.PaymentStatusApproved
	next.amountPaid = p.amountDue
	next.paidDate = &today
	return next, nil
}

// RejectSettlement declines a pending settlement request.
func (p PaymentObligation) RejectSettlement() (PaymentObligation, error) {
	if !p.status.Equal(valueobject.PaymentStatusPendingApproval) {
		return p, valueobject.ErrInvalidStatusTransition
	}
	next := p
	next.status = valueobject.PaymentStatusRejected
	return next, nil
}

// ---------------------------------------------------------------------------
// Getters
// ---------------------------------------------------------------------------

func (p PaymentObligation) ID() int64                         { return p.id }
func (p PaymentObligation) AccountID() int64                  { return p.accountID }
func (p PaymentObligation) DueDate() time.Time                { return p.dueDate }
func (p PaymentObligation) PaidDate() *time.Time              { return p.paidDate }
func (p PaymentObligation) AmountDue() decimal.Decimal        { return p.amountDue }
func (p PaymentObligation) AmountPaid() decimal.Decimal       { return p.amountPaid }
func (p PaymentObligation) Status() valueobject.PaymentStatus { return p.status }

// Outstanding is the unpaid part of the obligation, never negative.
func (p PaymentObligation) Outstanding() decimal.Decimal {
	rest := p.amountDue.Sub(p.amountPaid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

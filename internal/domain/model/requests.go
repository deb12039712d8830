package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

// PendingRequest is a projection of a pending-approval account (LOAN) or a
// pending-approval settlement obligation (SETTLEMENT).
type PendingRequest struct {
	RequestType  valueobject.RequestType
	RequestID    int64
	UserID       int64
	AccountTitle string
	Amount       decimal.Decimal
	Purpose      string
	// LoanID is the settled account, set for SETTLEMENT only.
	LoanID    *int64
	CreatedAt time.Time
}

// PendingLoan projects a pending account.
func PendingLoan(a Account) PendingRequest {
	return PendingRequest{
		RequestType:  valueobject.RequestTypeLoan,
		RequestID:    a.ID(),
		UserID:       a.UserID(),
		AccountTitle: a.Type().Title(),
		Amount:       a.Balance(),
		Purpose:      a.Purpose(),
		CreatedAt:    a.OpenedAt(),
	}
}

// PendingSettlement projects a pending settlement obligation.
func PendingSettlement(p PaymentRecord, userID int64) PendingRequest {
	loanID := p.Obligation.AccountID()
	return PendingRequest{
		RequestType:  valueobject.RequestTypeSettlement,
		RequestID:    p.Obligation.ID(),
		UserID:       userID,
		AccountTitle: p.AccountType.Title() + " settlement",
		Amount:       p.Obligation.AmountDue(),
		LoanID:       &loanID,
		CreatedAt:    p.Obligation.DueDate(),
	}
}

// PaymentRecord is an obligation together with the type of its account.
type PaymentRecord struct {
	Obligation  PaymentObligation
	AccountType valueobject.AccountType
}

// LoanSummary is an active account with its outstanding amount: the larger
// of the balance and the unpaid part of its obligations.
type LoanSummary struct {
	Account     Account
	Outstanding decimal.Decimal
}

package event

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const (
	aggregateAccount  = "CreditAccount"
	aggregatePayment  = "PaymentObligation"
	aggregateSnapshot = "ScoreSnapshot"
)

func idString(id int64) string { return strconv.FormatInt(id, 10) }

// ---------------------------------------------------------------------------
// Score events
// ---------------------------------------------------------------------------

// ScoreSnapshotRecorded is raised whenever a new snapshot is appended.
type ScoreSnapshotRecorded struct {
	events.BaseEvent
	UserID         int64     `json:"user_id"`
	Score          int       `json:"score"`
	RiskLevel      string    `json:"risk_level"`
	InquiryPenalty int       `json:"inquiry_penalty"`
	CalculatedAt   time.Time `json:"calculated_at"`
}

func NewScoreSnapshotRecorded(snapshotID, userID int64, score int, riskLevel string, penalty int, at time.Time) ScoreSnapshotRecorded {
	return ScoreSnapshotRecorded{
		BaseEvent:      events.NewBaseEvent("credit.score_snapshot.recorded", idString(snapshotID), aggregateSnapshot),
		UserID:         userID,
		Score:          score,
		RiskLevel:      riskLevel,
		InquiryPenalty: penalty,
		CalculatedAt:   at,
	}
}

// ---------------------------------------------------------------------------
// Loan request events
// ---------------------------------------------------------------------------

// LoanRequestSubmitted is raised when a customer asks for a new facility.
type LoanRequestSubmitted struct {
	events.BaseEvent
	UserID       int64           `json:"user_id"`
	AccountType  string          `json:"account_type"`
	Amount       decimal.Decimal `json:"amount"`
	Purpose      string          `json:"purpose"`
	TenureMonths *int            `json:"tenure_months,omitempty"`
}

func NewLoanRequestSubmitted(accountID, userID int64, accountType string, amount decimal.Decimal, purpose string, tenure *int) LoanRequestSubmitted {
	return LoanRequestSubmitted{
		BaseEvent:    events.NewBaseEvent("credit.loan_request.submitted", idString(accountID), aggregateAccount),
		UserID:       userID,
		AccountType:  accountType,
		Amount:       amount,
		Purpose:      purpose,
		TenureMonths: tenure,
	}
}

// LoanRequestApproved is raised when an account is activated and its first
// obligation scheduled.
type LoanRequestApproved struct {
	events.BaseEvent
	UserID       int64           `json:"user_id"`
	Amount       decimal.Decimal `json:"amount"`
	ObligationID int64           `json:"obligation_id"`
	DueDate      time.Time       `json:"due_date"`
}

func NewLoanRequestApproved(accountID, userID int64, amount decimal.Decimal, obligationID int64, dueDate time.Time) LoanRequestApproved {
	return LoanRequestApproved{
		BaseEvent:    events.NewBaseEvent("credit.loan_request.approved", idString(accountID), aggregateAccount),
		UserID:       userID,
		Amount:       amount,
		ObligationID: obligationID,
		DueDate:      dueDate,
	}
}

// LoanRequestRejected is raised when a pending account is rejected.
type LoanRequestRejected struct {
	events.BaseEvent
	UserID int64 `json:"user_id"`
}

func NewLoanRequestRejected(accountID, userID int64) LoanRequestRejected {
	return LoanRequestRejected{
		BaseEvent: events.NewBaseEvent("credit.loan_request.rejected", idString(accountID), aggregateAccount),
		UserID:    userID,
	}
}

// ---------------------------------------------------------------------------
// Settlement request events
// ---------------------------------------------------------------------------

// SettlementRequestSubmitted is raised when a customer asks to settle an amount.
type SettlementRequestSubmitted struct {
	events.BaseEvent
	UserID    int64           `json:"user_id"`
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func NewSettlementRequestSubmitted(paymentID, userID, accountID int64, amount decimal.Decimal) SettlementRequestSubmitted {
	return SettlementRequestSubmitted{
		BaseEvent: events.NewBaseEvent("credit.settlement_request.submitted", idString(paymentID), aggregatePayment),
		UserID:    userID,
		AccountID: accountID,
		Amount:    amount,
	}
}

// SettlementRequestApproved is raised once a settlement has been applied to
// the account balance.
type SettlementRequestApproved struct {
	events.BaseEvent
	UserID           int64           `json:"user_id"`
	AccountID        int64           `json:"account_id"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	AccountClosed    bool            `json:"account_closed"`
	SettledLate      bool            `json:"settled_late"`
}

func NewSettlementRequestApproved(
	paymentID, userID, accountID int64,
	amount, remaining decimal.Decimal,
	closed, late bool,
) SettlementRequestApproved {
	return SettlementRequestApproved{
		BaseEvent:        events.NewBaseEvent("credit.settlement_request.approved", idString(paymentID), aggregatePayment),
		UserID:           userID,
		AccountID:        accountID,
		Amount:           amount,
		RemainingBalance: remaining,
		AccountClosed:    closed,
		SettledLate:      late,
	}
}

// SettlementRequestRejected is raised when a settlement request is declined.
type SettlementRequestRejected struct {
	events.BaseEvent
	UserID    int64 `json:"user_id"`
	AccountID int64 `json:"account_id"`
}

func NewSettlementRequestRejected(paymentID, userID, accountID int64) SettlementRequestRejected {
	return SettlementRequestRejected{
		BaseEvent: events.NewBaseEvent("credit.settlement_request.rejected", idString(paymentID), aggregatePayment),
		UserID:    userID,
		AccountID: accountID,
	}
}

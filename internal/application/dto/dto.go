package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// ComputeSnapshotRequest asks for a fresh score snapshot.
type ComputeSnapshotRequest struct {
	UserID         int64 `json:"user_id"`
	InquiryPenalty int   `json:"inquiry_penalty"`
}

// EnsureSnapshotRequest asks for a snapshot only when the user has none.
type EnsureSnapshotRequest struct {
	UserID int64 `json:"user_id"`
}

// GetEvaluationRequest identifies the applicant. ApplicantID accepts
// "APP-00042", "42" or a username.
type GetEvaluationRequest struct {
	ApplicantID string `json:"applicant_id"`
}

// DecideRequest is the generic admin decision on a pending request.
type DecideRequest struct {
	UserID      int64  `json:"user_id"`
	RequestType string `json:"request_type"`
	RequestID   int64  `json:"request_id"`
	Action      string `json:"action"`
}

// DecideLoanRequest approves or rejects a pending account.
type DecideLoanRequest struct {
	UserID    int64  `json:"user_id"`
	AccountID int64  `json:"account_id"`
	Action    string `json:"action"`
}

// DecideSettlementRequest approves or rejects a pending settlement.
type DecideSettlementRequest struct {
	UserID    int64  `json:"user_id"`
	PaymentID int64  `json:"payment_id"`
	Action    string `json:"action"`
}

// SubmitLoanRequest is a customer's application for a new facility.
// Amount and MonthlyIncome accept formatted strings such as "Rs. 1,000".
type SubmitLoanRequest struct {
	UserID         int64  `json:"user_id"`
	Category       string `json:"category"`
	Amount         string `json:"amount"`
	Purpose        string `json:"purpose"`
	TenureMonths   *int   `json:"tenure_months,omitempty"`
	EmploymentType string `json:"employment_type"`
	MonthlyIncome  string `json:"monthly_income"`
}

// SubmitSettlementRequest is a customer's request to pay against a loan.
type SubmitSettlementRequest struct {
	UserID int64  `json:"user_id"`
	LoanID int64  `json:"loan_id"`
	Amount string `json:"amount"`
}

// ListLoansRequest identifies whose active loans to list.
type ListLoansRequest struct {
	UserID int64 `json:"user_id"`
}

// PaymentHistoryRequest identifies whose payments to list.
type PaymentHistoryRequest struct {
	UserID int64 `json:"user_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// SnapshotResponse is the external representation of a score snapshot.
type SnapshotResponse struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"user_id"`
	Score        int                `json:"score"`
	RiskLevel    string             `json:"risk_level"`
	Factors      map[string]float64 `json:"factors"`
	CalculatedAt time.Time          `json:"calculated_at"`
}

// ApplicantResponse is the evaluation header.
type ApplicantResponse struct {
	ApplicantID    string           `json:"applicant_id"`
	UserID         int64            `json:"user_id"`
	Name           string           `json:"name"`
	DateOfBirth    *time.Time       `json:"date_of_birth,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Address        string           `json:"address,omitempty"`
	MonthlyIncome  *decimal.Decimal `json:"monthly_income,omitempty"`
	EmploymentType string           `json:"employment_type,omitempty"`
}

// FactorResponse is one line of the evaluation breakdown.
type FactorResponse struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Value     int     `json:"value"`
	Weight    float64 `json:"weight"`
	MaxPoints int     `json:"max_points"`
	Points    float64 `json:"points"`
}

// LimitsResponse carries the lending limits for the risk category.
type LimitsResponse struct {
	MaxAmount    decimal.Decimal `json:"max_amount"`
	MaxTenure    int             `json:"max_tenure_months"`
	MaxAPRPct    float64         `json:"max_apr_pct"`
	RiskCategory string          `json:"risk_category"`
}

// HistoryPointResponse is one past score.
type HistoryPointResponse struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
	Event string    `json:"event"`
}

// PendingRequestResponse is a pending loan or settlement.
type PendingRequestResponse struct {
	RequestType  string          `json:"request_type"`
	RequestID    int64           `json:"request_id"`
	UserID       int64           `json:"user_id"`
	AccountTitle string          `json:"account_title"`
	Amount       decimal.Decimal `json:"amount"`
	Purpose      string          `json:"purpose,omitempty"`
	LoanID       *int64          `json:"loan_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EvaluationResponse is the full underwriting view of an applicant.
type EvaluationResponse struct {
	EvaluationID         string                   `json:"evaluation_id"`
	Applicant            ApplicantResponse        `json:"applicant"`
	Score                int                      `json:"score"`
	RiskCategory         string                   `json:"risk_category"`
	ProbabilityOfDefault float64                  `json:"probability_of_default"`
	DefaultPercentage    float64                  `json:"default_percentage"`
	Recommendation       string                   `json:"recommendation"`
	Breakdown            []FactorResponse         `json:"breakdown"`
	Strengths            []string                 `json:"strengths"`
	Weaknesses           []string                 `json:"weaknesses"`
	Limits               LimitsResponse           `json:"limits"`
	History              []HistoryPointResponse   `json:"history"`
	PendingRequests      []PendingRequestResponse `json:"pending_requests"`
	UtilizationPct       float64                  `json:"utilization_pct"`
	ScoredAt             time.Time                `json:"scored_at"`
	GeneratedAt          time.Time                `json:"generated_at"`
	Notes                string                   `json:"notes"`
}

// DecisionResponse reports the outcome of a decision.
type DecisionResponse struct {
	RequestType string `json:"request_type"`
	RequestID   int64  `json:"request_id"`
	UserID      int64  `json:"user_id"`
	Status      string `json:"status"`
	// Rescored is set when the decision appended a score snapshot.
	Rescored *SnapshotResponse `json:"rescored,omitempty"`
	// Remaining balance and account status after an approved settlement.
	RemainingBalance *decimal.Decimal `json:"remaining_balance,omitempty"`
	AccountStatus    string           `json:"account_status,omitempty"`
}

// LoanResponse is an account as seen by its owner.
type LoanResponse struct {
	AccountID    int64           `json:"account_id"`
	Title        string          `json:"title"`
	AccountType  string          `json:"account_type"`
	Purpose      string          `json:"purpose"`
	TenureMonths *int            `json:"tenure_months,omitempty"`
	CreditLimit  decimal.Decimal `json:"credit_limit"`
	Balance      decimal.Decimal `json:"balance"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	OpenedAt     time.Time       `json:"opened_at"`
	Status       string          `json:"status"`
}

// ListLoansResponse lists the user's active loans.
type ListLoansResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// PaymentResponse is one row of the payment history.
type PaymentResponse struct {
	PaymentID    int64           `json:"payment_id"`
	AccountID    int64           `json:"account_id"`
	AccountTitle string          `json:"account_title"`
	DueDate      time.Time       `json:"due_date"`
	PaidDate     *time.Time      `json:"paid_date,omitempty"`
	AmountDue    decimal.Decimal `json:"amount_due"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	// Amount is the paid amount when positive, else the amount due.
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

// PaymentHistoryResponse lists recent payments, newest first.
type PaymentHistoryResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

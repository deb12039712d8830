package grpc

import (
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/dto"
)

// Proto-aligned request/response message types. Response payloads reuse the
// application DTOs, which already carry their JSON field names.

// ComputeSnapshotRequest represents the proto ComputeSnapshotRequest message.
type ComputeSnapshotRequest struct {
	UserID         int64 `json:"user_id"`
	InquiryPenalty int   `json:"inquiry_penalty"`
}

// ComputeSnapshotResponse represents the proto ComputeSnapshotResponse message.
type ComputeSnapshotResponse struct {
	Snapshot dto.SnapshotResponse `json:"snapshot"`
}

// GetEvaluationRequest represents the proto GetEvaluationRequest message.
type GetEvaluationRequest struct {
	ApplicantID string `json:"applicant_id"`
}

// GetEvaluationResponse represents the proto GetEvaluationResponse message.
type GetEvaluationResponse struct {
	Evaluation dto.EvaluationResponse `json:"evaluation"`
}

// DecideRequestRequest represents the proto DecideRequestRequest message.
type DecideRequestRequest struct {
	UserID      int64  `json:"user_id"`
	RequestType string `json:"request_type"`
	RequestID   int64  `json:"request_id"`
	Action      string `json:"action"`
}

// DecideRequestResponse represents the proto DecideRequestResponse message.
type DecideRequestResponse struct {
	Decision dto.DecisionResponse `json:"decision"`
}

// DecideLoanRequestRequest represents the proto DecideLoanRequestRequest message.
type DecideLoanRequestRequest struct {
	UserID    int64  `json:"user_id"`
	AccountID int64  `json:"account_id"`
	Action    string `json:"action"`
}

// DecideLoanRequestResponse represents the proto DecideLoanRequestResponse message.
type DecideLoanRequestResponse struct {
	Decision dto.DecisionResponse `json:"decision"`
}

// DecideSettlementRequestRequest represents the proto DecideSettlementRequestRequest message.
type DecideSettlementRequestRequest struct {
	UserID    int64  `json:"user_id"`
	PaymentID int64  `json:"payment_id"`
	Action    string `json:"action"`
}

// DecideSettlementRequestResponse represents the proto DecideSettlementRequestResponse message.
type DecideSettlementRequestResponse struct {
	Decision dto.DecisionResponse `json:"decision"`
}

// SubmitLoanRequestRequest represents the proto SubmitLoanRequestRequest message.
// UserID is optional: callers act for themselves unless they are admins.
type SubmitLoanRequestRequest struct {
	UserID         int64  `json:"user_id,omitempty"`
	Category       string `json:"category"`
	Amount         string `json:"amount"`
	Purpose        string `json:"purpose"`
	TenureMonths   *int   `json:"tenure_months,omitempty"`
	EmploymentType string `json:"employment_type"`
	MonthlyIncome  string `json:"monthly_income"`
}

// SubmitLoanRequestResponse represents the proto SubmitLoanRequestResponse message.
type SubmitLoanRequestResponse struct {
	Loan dto.LoanResponse `json:"loan"`
}

// SubmitSettlementRequestRequest represents the proto SubmitSettlementRequestRequest message.
type SubmitSettlementRequestRequest struct {
	UserID int64  `json:"user_id,omitempty"`
	LoanID int64  `json:"loan_id"`
	Amount string `json:"amount"`
}

// SubmitSettlementRequestResponse represents the proto SubmitSettlementRequestResponse message.
type SubmitSettlementRequestResponse struct {
	Payment dto.PaymentResponse `json:"payment"`
}

// ListLoansRequest represents the proto ListLoansRequest message.
type ListLoansRequest struct {
	UserID int64 `json:"user_id,omitempty"`
}

// ListLoansResponse represents the proto ListLoansResponse message.
type ListLoansResponse struct {
	Loans []dto.LoanResponse `json:"loans"`
}

// ListPaymentHistoryRequest represents the proto ListPaymentHistoryRequest message.
type ListPaymentHistoryRequest struct {
	UserID int64 `json:"user_id,omitempty"`
}

// ListPaymentHistoryResponse represents the proto ListPaymentHistoryResponse message.
type ListPaymentHistoryResponse struct {
	Payments []dto.PaymentResponse `json:"payments"`
}

// ProbabilityOfDefaultRequest represents the proto ProbabilityOfDefaultRequest message.
// An empty RiskCategory is derived from the score.
type ProbabilityOfDefaultRequest struct {
	Score          int     `json:"score"`
	RiskCategory   string  `json:"risk_category,omitempty"`
	UtilizationPct float64 `json:"utilization_pct"`
}

// ProbabilityOfDefaultResponse represents the proto ProbabilityOfDefaultResponse message.
type ProbabilityOfDefaultResponse struct {
	Probability  float64 `json:"probability"`
	Percentage   float64 `json:"percentage"`
	RiskCategory string  `json:"risk_category"`
}

// ClassifyRiskRequest represents the proto ClassifyRiskRequest message.
type ClassifyRiskRequest struct {
	Score int `json:"score"`
}

// ClassifyRiskResponse represents the proto ClassifyRiskResponse message.
type ClassifyRiskResponse struct {
	RiskLevel      string `json:"risk_level"`
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
}

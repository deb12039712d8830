package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/dto"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/usecase"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/service"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/auth"
)

// Compile-time assertion that CreditHandler implements CreditRiskServiceServer.
var _ CreditRiskServiceServer = (*CreditHandler)(nil)

// UseCases bundles the application operations exposed over gRPC.
type UseCases struct {
	ComputeSnapshot         *usecase.ComputeSnapshotUseCase
	GetEvaluation           *usecase.GetEvaluationUseCase
	DecideRequest           *usecase.DecideRequestUseCase
	DecideLoanRequest       *usecase.DecideLoanRequestUseCase
	DecideSettlementRequest *usecase.DecideSettlementRequestUseCase
	SubmitLoanRequest       *usecase.SubmitLoanRequestUseCase
	SubmitSettlementRequest *usecase.SubmitSettlementRequestUseCase
	ListLoans               *usecase.ListLoansUseCase
	PaymentHistory          *usecase.PaymentHistoryUseCase
}

// CreditHandler implements the gRPC CreditRiskServiceServer interface.
type CreditHandler struct {
	UnimplementedCreditRiskServiceServer
	uc     UseCases
	logger *slog.Logger
}

// NewCreditHandler creates a new CreditHandler.
func NewCreditHandler(uc UseCases, logger *slog.Logger) *CreditHandler {
	return &CreditHandler{uc: uc, logger: logger}
}

// subjectUserID resolves whose data a customer-facing call acts on. Callers
// act for themselves; only admins may name another user.
func subjectUserID(ctx context.Context, requested int64) (int64, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return 0, status.Error(codes.Unauthenticated, "authentication required")
	}
	if requested > 0 && requested != claims.UserID {
		if !claims.HasRole(auth.RoleAdmin) {
			return 0, status.Error(codes.PermissionDenied, "insufficient permissions")
		}
		return requested, nil
	}
	if claims.UserID <= 0 {
		return 0, status.Error(codes.InvalidArgument, "user_id is required")
	}
	return claims.UserID, nil
}

// ComputeSnapshot appends a fresh snapshot for a user.
func (h *CreditHandler) ComputeSnapshot(ctx context.Context, req *ComputeSnapshotRequest) (*ComputeSnapshotResponse, error) {
	resp, err := h.uc.ComputeSnapshot.Execute(ctx, dto.ComputeSnapshotRequest{
		UserID:         req.UserID,
		InquiryPenalty: req.InquiryPenalty,
	})
	if err != nil {
		return nil, toStatus(ctx, h.logger, err)
	}
	return &ComputeSnapshotResponse{Snapshot: resp}, nil
}

// GetEvaluation composes the evaluation view. Non-admins may only read their own.
func (h *CreditHandler) GetEvaluation(ctx context.Context, req *GetEvaluationRequest) (*GetEvaluationResponse, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	var restrictTo int64
	if !claims.HasRole(auth.RoleAdmin) {
		restrictTo = claims.UserID
		if restrictTo <= 0 {
			return nil, status.Error(codes.PermissionDenied, "insufficient permissions")
		}
	}

	resp, err := h.uc.GetEvaluation.Execute(ctx, dto.GetEvaluationRequest{ApplicantID: req.ApplicantID}, restrictTo)
	if err != nil {
		return nil, toStatus(ctx, h.logger, err)
	}
	return &GetEvaluationResponse{Evaluation: resp}, nil
}

// DecideRequest applies an admin decision to a LOAN or SETTLEMENT request.
func (h *CreditHandler) DecideRequest(ctx context.Context, req *DecideRequestRequest) (*DecideRequestResponse, error) {
	resp, err := h.uc.DecideRequest.Execute(ctx, dto.DecideRequest{
		UserID:      req.UserID,
		RequestType: req.RequestType,
		RequestID:   req.RequestID,
		Action:      req.Action,
	})
	if err != nil {
		return nil, toStatus(ctx, h.logger, err)
	}
	return &DecideRequestResponse{Decision: resp}, nil
}

// DecideLoanRequest approves or rejects a pending account.
func (h *CreditHandler) DecideLoanRequest(ctx context.Context, req *DecideLoanRequestRequest) (*DecideLoanRequestResponse, error) {
	resp, err := h.uc.DecideLoanRequest.Execute(ctx, dto.DecideLoanRequest{
		UserID:    req.UserID,
		AccountID: req.AccountID,
		Action:    req.Action,
	})
	if err != nil {
		return nil, toStatus(ctx, h.logger, err)
	}
	return &DecideLoanRequestResponse{Decision: resp}, nil
}

// DecideSettlementRequest approves or rejects a pending settlement.
func (h *CreditHandler) DecideSettlementRequest(ctx context.Context, req *DecideSettlementRequestRequest) (*DecideSettlementRequestResponse, error) {
	resp, err := h.uc.DecideSettlementRequest.Execute(ctx, dto.DecideSettlementRequest{
		UserID:    req.UserID,
		PaymentID: req.PaymentID,
		Action:    req.Action,
	})
	if err != nil {
		return nil, toStatus(ctx, h.logger, err)
	}
	return &DecideSettlementRequestResponse{Decision: resp}, nil
}

// SubmitLoanRequest records an application for a new facility.
func (h *CreditHandler) SubmitLoanRequest(ctx context.Context, req *SubmitLoanRequestRequest) (*SubmitLoanRequestResponse, error) {
	userID, err := subjectUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.SubmitLoanRequest.Execute(ctx, dto.SubmitLoanRequest{
		UserID:         userID,
		Category:       req.Category,
		Amount:         req.Amount,
		Purpose:        req.Purpose,
		TenureMonths:   req.TenureMonths,
		EmploymentType: req.EmploymentType,
		MonthlyIncome:  req.MonthlyIncome,
	})
	if err != nil {
		return nil, toStatus(ctx, h.logger, err)
	}
	return &SubmitLoanRequestResponse{Loan: resp}, nil
}

// SubmitSettlementRequest records a request to pay against an active loan.
func (h *CreditHandler) SubmitSettlementRequest(ctx context.Context, req *SubmitSettlementRequestRequest) (*SubmitSettlementRequestResponse, error) {
	userID, err := subjectUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.SubmitSettlementRequest.Execute(ctx, dto.SubmitSettlementRequest{
		UserID: userID,
		LoanID: req.LoanID,
		Amount: req.Amount,
	})
	if err != nil {
		return nil, toStatus(ctx, h.logger, err)
	}
	return &SubmitSettlementRequestResponse{Payment: resp}, nil
}

// ListLoans lists the caller's active loans.
func (h *CreditHandler) ListLoans(ctx context.Context, req *ListLoansRequest) (*ListLoansResponse, error) {
	userID, err := subjectUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ListLoans.Execute(ctx, dto.ListLoansRequest{UserID: userID})
	if err != nil {
		return nil, toStatus(ctx, h.logger, err)
	}
	return &ListLoansResponse{Loans: resp.Loans}, nil
}

// ListPaymentHistory lists the caller's recent payments.
func (h *CreditHandler) ListPaymentHistory(ctx context.Context, req *ListPaymentHistoryRequest) (*ListPaymentHistoryResponse, error) {
	userID, err := subjectUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.PaymentHistory.Execute(ctx, dto.PaymentHistoryRequest{UserID: userID})
	if err != nil {
		return nil, toStatus(ctx, h.logger, err)
	}
	return &ListPaymentHistoryResponse{Payments: resp.Payments}, nil
}

// ProbabilityOfDefault evaluates the default model without touching storage.
func (h *CreditHandler) ProbabilityOfDefault(_ context.Context, req *ProbabilityOfDefaultRequest) (*ProbabilityOfDefaultResponse, error) {
	risk := valueobject.RiskLevelFromScore(req.Score)
	if req.RiskCategory != "" {
		// An unrecognised category keeps the zero level, which adds no offset.
		risk, _ = valueobject.NewRiskLevel(req.RiskCategory)
	}

	p := service.ProbabilityOfDefault(req.Score, risk, req.UtilizationPct)
	return &ProbabilityOfDefaultResponse{
		Probability:  p,
		Percentage:   service.AsPercentage(p),
		RiskCategory: risk.Category(),
	}, nil
}

// ClassifyRisk maps a score to its risk level.
func (h *CreditHandler) ClassifyRisk(_ context.Context, req *ClassifyRiskRequest) (*ClassifyRiskResponse, error) {
	risk := valueobject.RiskLevelFromScore(req.Score)
	return &ClassifyRiskResponse{
		RiskLevel:      risk.String(),
		Category:       risk.Category(),
		Recommendation: string(risk.Recommendation()),
	}, nil
}

package usecase

import (
	"context"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/dto"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

// DecideRequestUseCase dispatches a decision by request type.
type DecideRequestUseCase struct {
	loans       *DecideLoanRequestUseCase
	settlements *DecideSettlementRequestUseCase
}

// NewDecideRequestUseCase wires dependencies.
func NewDecideRequestUseCase(loans *DecideLoanRequestUseCase, settlements *DecideSettlementRequestUseCase) *DecideRequestUseCase {
	return &DecideRequestUseCase{loans: loans, settlements: settlements}
}

// Execute validates the request and hands it to the matching decision.
func (uc *DecideRequestUseCase) Execute(ctx context.Context, req dto.DecideRequest) (dto.DecisionResponse, error) {
	requestType, err := valueobject.NewRequestType(req.RequestType)
	if err != nil {
		return dto.DecisionResponse{}, model.NewValidationError("request_type", "must be LOAN or SETTLEMENT")
	}
	if _, err := valueobject.NewDecisionAction(req.Action); err != nil {
		return dto.DecisionResponse{}, model.NewValidationError("action", "must be APPROVE or REJECT")
	}
	if req.RequestID <= 0 {
		return dto.DecisionResponse{}, model.NewValidationError("request_id", "is required")
	}

	if requestType == valueobject.RequestTypeLoan {
		return uc.loans.Execute(ctx, dto.DecideLoanRequest{
			UserID:    req.UserID,
			AccountID: req.RequestID,
			Action:    req.Action,
		})
	}
	return uc.settlements.Execute(ctx, dto.DecideSettlementRequest{
		UserID:    req.UserID,
		PaymentID: req.RequestID,
		Action:    req.Action,
	})
}

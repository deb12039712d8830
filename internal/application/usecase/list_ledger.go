package usecase

import (
	"context"
	"fmt"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/dto"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/port"
)

// PaymentHistoryLimit is the number of payments returned by the history.
const PaymentHistoryLimit = 30

// ListLoansUseCase lists a user's active loans.
type ListLoansUseCase struct {
	uow port.UnitOfWork
}

// NewListLoansUseCase wires dependencies.
func NewListLoansUseCase(uow port.UnitOfWork) *ListLoansUseCase {
	return &ListLoansUseCase{uow: uow}
}

// Execute returns active loans, newest first.
func (uc *ListLoansUseCase) Execute(ctx context.Context, req dto.ListLoansRequest) (dto.ListLoansResponse, error) {
	var loans []model.LoanSummary
	err := uc.uow.Do(ctx, func(ctx context.Context, store port.Store) error {
		var err error
		loans, err = store.ListActiveLoans(ctx, req.UserID)
		return err
	})
	if err != nil {
		return dto.ListLoansResponse{}, fmt.Errorf("list loans: %w", err)
	}

	resp := dto.ListLoansResponse{Loans: make([]dto.LoanResponse, len(loans))}
	for i, l := range loans {
		resp.Loans[i] = toLoanSummaryResponse(l)
	}
	return resp, nil
}

// PaymentHistoryUseCase lists a user's recent payments.
type PaymentHistoryUseCase struct {
	uow port.UnitOfWork
}

// NewPaymentHistoryUseCase wires dependencies.
func NewPaymentHistoryUseCase(uow port.UnitOfWork) *PaymentHistoryUseCase {
	return &PaymentHistoryUseCase{uow: uow}
}

// Execute returns up to PaymentHistoryLimit payments, newest first.
func (uc *PaymentHistoryUseCase) Execute(ctx context.Context, req dto.PaymentHistoryRequest) (dto.PaymentHistoryResponse, error) {
	var records []model.PaymentRecord
	err := uc.uow.Do(ctx, func(ctx context.Context, store port.Store) error {
		var err error
		records, err = store.PaymentHistory(ctx, req.UserID, PaymentHistoryLimit)
		return err
	})
	if err != nil {
		return dto.PaymentHistoryResponse{}, fmt.Errorf("payment history: %w", err)
	}

	resp := dto.PaymentHistoryResponse{Payments: make([]dto.PaymentResponse, len(records))}
	for i, r := range records {
		resp.Payments[i] = toPaymentResponse(r)
	}
	return resp, nil
}

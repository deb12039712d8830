package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/dto"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/event"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/port"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/money"
)

// SubmitSettlementRequestUseCase records a customer's request to pay
// against an active loan.
type SubmitSettlementRequestUseCase struct {
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewSubmitSettlementRequestUseCase wires dependencies.
func NewSubmitSettlementRequestUseCase(uow port.UnitOfWork, logger *slog.Logger) *SubmitSettlementRequestUseCase {
	return &SubmitSettlementRequestUseCase{uow: uow, logger: logger}
}

// Execute inserts a pending settlement after checking it does not exceed
// the outstanding balance.
func (uc *SubmitSettlementRequestUseCase) Execute(
	ctx context.Context,
	req dto.SubmitSettlementRequest,
) (resp dto.PaymentResponse, err error) {
	ctx, span := tracer.Start(ctx, "SubmitSettlementRequest")
	span.SetAttributes(attribute.Int64("user.id", req.UserID), attribute.Int64("account.id", req.LoanID))
	defer func() { endSpan(span, err) }()

	// 1. Validate input.
	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		return dto.PaymentResponse{}, model.NewValidationError("amount", "must be a number")
	}
	request, err := model.NewSettlementRequest(req.LoanID, amount, time.Now().UTC())
	if err != nil {
		return dto.PaymentResponse{}, err
	}

	var record model.PaymentRecord
	err = uc.uow.Do(ctx, func(ctx context.Context, store port.Store) error {
		collector := &events.EventCollector{}

		// 2. The loan must be active and owned by the caller.
		account, err := store.FindAccountForUpdate(ctx, req.UserID, req.LoanID)
		if err != nil {
			return fmt.Errorf("find account: %w", err)
		}
		if !account.Status().Equal(valueobject.AccountStatusActive) {
			return fmt.Errorf("account %d is %s: %w", account.ID(), account.Status(), model.ErrNotFound)
		}
		if err := account.CheckSettlement(amount); err != nil {
			return fmt.Errorf("check settlement: %w", err)
		}

		// 3. Insert the request.
		request, err = store.InsertObligation(ctx, request)
		if err != nil {
			return fmt.Errorf("insert settlement request: %w", err)
		}
		record = model.PaymentRecord{Obligation: request, AccountType: account.Type()}

		collector.Record(event.NewSettlementRequestSubmitted(request.ID(), req.UserID, account.ID(), request.AmountDue()))
		return flushOutbox(ctx, store, collector)
	})
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("submit settlement request: %w", err)
	}

	uc.logger.Info("settlement request submitted",
		"user_id", req.UserID,
		"account_id", req.LoanID,
		"payment_id", request.ID(),
		"amount", request.AmountDue().String(),
	)
	return toPaymentResponse(record), nil
}

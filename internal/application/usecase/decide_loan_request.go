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
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/service"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
)

// DecideLoanRequestUseCase approves or rejects a pending account.
type DecideLoanRequestUseCase struct {
	uow    port.UnitOfWork
	engine *service.ScoreEngine
	logger *slog.Logger
}

// NewDecideLoanRequestUseCase wires dependencies.
func NewDecideLoanRequestUseCase(uow port.UnitOfWork, engine *service.ScoreEngine, logger *slog.Logger) *DecideLoanRequestUseCase {
	return &DecideLoanRequestUseCase{uow: uow, engine: engine, logger: logger}
}

// Execute applies the decision. Approval activates the account, schedules
// its first obligation and rescores the user with the approval inquiry
// penalty, all in one unit.
func (uc *DecideLoanRequestUseCase) Execute(
	ctx context.Context,
	req dto.DecideLoanRequest,
) (resp dto.DecisionResponse, err error) {
	ctx, span := tracer.Start(ctx, "DecideLoanRequest")
	span.SetAttributes(
		attribute.Int64("user.id", req.UserID),
		attribute.Int64("account.id", req.AccountID),
		attribute.String("decision.action", req.Action),
	)
	defer func() { endSpan(span, err) }()

	action, err := valueobject.NewDecisionAction(req.Action)
	if err != nil {
		return dto.DecisionResponse{}, model.NewValidationError("action", "must be APPROVE or REJECT")
	}
	if req.AccountID <= 0 {
		return dto.DecisionResponse{}, model.NewValidationError("request_id", "is required")
	}
	now := time.Now().UTC()

	resp = dto.DecisionResponse{
		RequestType: string(valueobject.RequestTypeLoan),
		RequestID:   req.AccountID,
		UserID:      req.UserID,
	}
	err = uc.uow.Do(ctx, func(ctx context.Context, store port.Store) error {
		collector := &events.EventCollector{}

		// 1. Lock the account.
		account, err := store.FindAccountForUpdate(ctx, req.UserID, req.AccountID)
		if err != nil {
			return fmt.Errorf("find account: %w", err)
		}

		if action == valueobject.DecisionReject {
			// 2a. Reject; nothing else changes.
			account, err = account.Reject()
			if err != nil {
				return fmt.Errorf("reject account: %w", err)
			}
			if err := store.UpdateAccount(ctx, account); err != nil {
				return fmt.Errorf("update account: %w", err)
			}
			collector.Record(event.NewLoanRequestRejected(account.ID(), req.UserID))
			resp.Status = account.Status().String()
			return flushOutbox(ctx, store, collector)
		}

		// 2b. Activate and schedule the first obligation.
		account, obligation, err := account.Approve(now)
		if err != nil {
			return fmt.Errorf("approve account: %w", err)
		}
		if err := store.UpdateAccount(ctx, account); err != nil {
			return fmt.Errorf("update account: %w", err)
		}
		obligation, err = store.InsertObligation(ctx, obligation)
		if err != nil {
			return fmt.Errorf("insert obligation: %w", err)
		}
		collector.Record(event.NewLoanRequestApproved(
			account.ID(), req.UserID, account.Balance(), obligation.ID(), obligation.DueDate(),
		))

		// 3. Rescore with the approval inquiry penalty.
		snapshot, err := recordSnapshot(ctx, store, uc.engine, collector, req.UserID, service.LoanApprovalInquiryPenalty, now)
		if err != nil {
			return err
		}

		rescored := toSnapshotResponse(snapshot)
		resp.Status = account.Status().String()
		resp.Rescored = &rescored
		return flushOutbox(ctx, store, collector)
	})
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("decide loan request %d: %w", req.AccountID, err)
	}

	uc.logger.Info("loan request decided",
		"user_id", req.UserID,
		"account_id", req.AccountID,
		"action", string(action),
		"status", resp.Status,
	)
	return resp, nil
}

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

// DecideSettlementRequestUseCase approves or rejects a pending settlement.
type DecideSettlementRequestUseCase struct {
	uow    port.UnitOfWork
	engine *service.ScoreEngine
	logger *slog.Logger
}

// NewDecideSettlementRequestUseCase wires dependencies.
func NewDecideSettlementRequestUseCase(uow port.UnitOfWork, engine *service.ScoreEngine, logger *slog.Logger) *DecideSettlementRequestUseCase {
	return &DecideSettlementRequestUseCase{uow: uow, engine: engine, logger: logger}
}

// Execute applies the decision. An approved settlement is credited to the
// earliest due obligation and the account balance, then the user is
// rescored: with the recovery bonus when the account closed on time, with
// no inquiry change otherwise.
func (uc *DecideSettlementRequestUseCase) Execute(
	ctx context.Context,
	req dto.DecideSettlementRequest,
) (resp dto.DecisionResponse, err error) {
	ctx, span := tracer.Start(ctx, "DecideSettlementRequest")
	span.SetAttributes(
		attribute.Int64("user.id", req.UserID),
		attribute.Int64("payment.id", req.PaymentID),
		attribute.String("decision.action", req.Action),
	)
	defer func() { endSpan(span, err) }()

	action, err := valueobject.NewDecisionAction(req.Action)
	if err != nil {
		return dto.DecisionResponse{}, model.NewValidationError("action", "must be APPROVE or REJECT")
	}
	if req.PaymentID <= 0 {
		return dto.DecisionResponse{}, model.NewValidationError("request_id", "is required")
	}
	now := time.Now().UTC()

	resp = dto.DecisionResponse{
		RequestType: string(valueobject.RequestTypeSettlement),
		RequestID:   req.PaymentID,
		UserID:      req.UserID,
	}
	err = uc.uow.Do(ctx, func(ctx context.Context, store port.Store) error {
		collector := &events.EventCollector{}

		// 1. Lock the request and its account.
		request, err := store.FindObligationForUpdate(ctx, req.UserID, req.PaymentID)
		if err != nil {
			return fmt.Errorf("find settlement request: %w", err)
		}
		if !request.Status().Equal(valueobject.PaymentStatusPendingApproval) {
			return fmt.Errorf("settlement request %d is %s: %w", request.ID(), request.Status(), model.ErrNotFound)
		}
		account, err := store.FindAccountForUpdate(ctx, req.UserID, request.AccountID())
		if err != nil {
			return fmt.Errorf("find account: %w", err)
		}
		if !account.Status().Equal(valueobject.AccountStatusActive) {
			return fmt.Errorf("account %d is %s: %w", account.ID(), account.Status(), model.ErrNotFound)
		}

		if action == valueobject.DecisionReject {
			// 2a. Reject; balances and obligations stay as they are.
			request, err = request.RejectSettlement()
			if err != nil {
				return fmt.Errorf("reject settlement: %w", err)
			}
			if err := store.UpdateObligation(ctx, request); err != nil {
				return fmt.Errorf("update settlement request: %w", err)
			}
			collector.Record(event.NewSettlementRequestRejected(request.ID(), req.UserID, account.ID()))
			resp.Status = request.Status().String()
			return flushOutbox(ctx, store, collector)
		}

		amount := request.AmountDue()

		// 2b. Refuse settlements above the outstanding balance.
		if err := account.CheckSettlement(amount); err != nil {
			return fmt.Errorf("check settlement: %w", err)
		}

		// 3. Credit the earliest due obligation.
		late := false
		target, found, err := store.EarliestDueForUpdate(ctx, account.ID())
		if err != nil {
			return fmt.Errorf("find earliest due obligation: %w", err)
		}
		if found {
			target, late, err = target.ApplyPayment(amount, now)
			if err != nil {
				return fmt.Errorf("apply payment: %w", err)
			}
			if err := store.UpdateObligation(ctx, target); err != nil {
				return fmt.Errorf("update obligation: %w", err)
			}
		}

		// 4. Reduce the balance, closing the account at zero.
		account, err = account.ApplySettlement(amount)
		if err != nil {
			return fmt.Errorf("apply settlement: %w", err)
		}
		if err := store.UpdateAccount(ctx, account); err != nil {
			return fmt.Errorf("update account: %w", err)
		}

		// 5. Close the request as its own payment record.
		request, err = request.ApproveSettlement(now)
		if err != nil {
			return fmt.Errorf("approve settlement: %w", err)
		}
		if err := store.UpdateObligation(ctx, request); err != nil {
			return fmt.Errorf("update settlement request: %w", err)
		}
		collector.Record(event.NewSettlementRequestApproved(
			request.ID(), req.UserID, account.ID(), amount, account.Balance(), account.IsClosed(), late,
		))

		// 6. Rescore.
		penalty := 0
		if account.IsClosed() && !late {
			penalty = service.SettlementRecoveryBonus
		}
		snapshot, err := recordSnapshot(ctx, store, uc.engine, collector, req.UserID, penalty, now)
		if err != nil {
			return err
		}

		rescored := toSnapshotResponse(snapshot)
		remaining := account.Balance()
		resp.Status = request.Status().String()
		resp.Rescored = &rescored
		resp.RemainingBalance = &remaining
		resp.AccountStatus = account.Status().String()
		return flushOutbox(ctx, store, collector)
	})
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("decide settlement request %d: %w", req.PaymentID, err)
	}

	uc.logger.Info("settlement request decided",
		"user_id", req.UserID,
		"payment_id", req.PaymentID,
		"action", string(action),
		"status", resp.Status,
		"account_status", resp.AccountStatus,
	)
	return resp, nil
}

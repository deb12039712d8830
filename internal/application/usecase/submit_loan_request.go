package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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

// SubmitLoanRequestUseCase records a customer's application for a facility.
type SubmitLoanRequestUseCase struct {
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewSubmitLoanRequestUseCase wires dependencies.
func NewSubmitLoanRequestUseCase(uow port.UnitOfWork, logger *slog.Logger) *SubmitLoanRequestUseCase {
	return &SubmitLoanRequestUseCase{uow: uow, logger: logger}
}

// Execute validates the application, stores the applicant's employment
// details and inserts a pending account.
func (uc *SubmitLoanRequestUseCase) Execute(
	ctx context.Context,
	req dto.SubmitLoanRequest,
) (resp dto.LoanResponse, err error) {
	ctx, span := tracer.Start(ctx, "SubmitLoanRequest")
	span.SetAttributes(attribute.Int64("user.id", req.UserID), attribute.String("loan.category", req.Category))
	defer func() { endSpan(span, err) }()

	// 1. Validate input.
	accountType, err := valueobject.AccountTypeFromCategory(req.Category)
	if err != nil {
		return dto.LoanResponse{}, model.NewValidationError("category", "must be general, emi or cc")
	}
	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		return dto.LoanResponse{}, model.NewValidationError("amount", "must be a number")
	}
	employment := strings.TrimSpace(req.EmploymentType)
	if employment == "" {
		return dto.LoanResponse{}, model.NewValidationError("employment_type", "is required")
	}
	income, err := money.ParseAmount(req.MonthlyIncome)
	if err != nil || !income.IsPositive() {
		return dto.LoanResponse{}, model.NewValidationError("monthly_income", "must be greater than zero")
	}

	// 2. Build the pending account.
	account, err := model.NewLoanRequest(
		req.UserID, accountType, amount, strings.TrimSpace(req.Purpose), req.TenureMonths, time.Now().UTC(),
	)
	if err != nil {
		return dto.LoanResponse{}, err
	}

	err = uc.uow.Do(ctx, func(ctx context.Context, store port.Store) error {
		collector := &events.EventCollector{}

		// 3. Update the applicant.
		if _, err := store.FindUser(ctx, model.ApplicantLookup{UserID: req.UserID}); err != nil {
			return fmt.Errorf("find user: %w", err)
		}
		if err := store.UpdateEmployment(ctx, req.UserID, employment, income); err != nil {
			return fmt.Errorf("update employment: %w", err)
		}

		// 4. Insert the account.
		inserted, err := store.InsertAccount(ctx, account)
		if err != nil {
			return fmt.Errorf("insert account: %w", err)
		}
		account = inserted
		collector.Record(event.NewLoanRequestSubmitted(
			account.ID(), req.UserID, account.Type().String(), account.Balance(), account.Purpose(), account.TenureMonths(),
		))
		return flushOutbox(ctx, store, collector)
	})
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("submit loan request: %w", err)
	}

	uc.logger.Info("loan request submitted",
		"user_id", req.UserID,
		"account_id", account.ID(),
		"account_type", account.Type().String(),
		"amount", account.Balance().String(),
	)
	return toLoanResponse(account), nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/dto"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/port"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/service"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
)

// GetEvaluationUseCase composes the underwriting view of an applicant.
type GetEvaluationUseCase struct {
	uow      port.UnitOfWork
	engine   *service.ScoreEngine
	composer *service.EvaluationComposer
	logger   *slog.Logger
}

// NewGetEvaluationUseCase wires dependencies.
func NewGetEvaluationUseCase(
	uow port.UnitOfWork,
	engine *service.ScoreEngine,
	composer *service.EvaluationComposer,
	logger *slog.Logger,
) *GetEvaluationUseCase {
	return &GetEvaluationUseCase{uow: uow, engine: engine, composer: composer, logger: logger}
}

// Execute resolves the applicant and composes the evaluation. When
// restrictTo is positive the applicant must be that user.
func (uc *GetEvaluationUseCase) Execute(
	ctx context.Context,
	req dto.GetEvaluationRequest,
	restrictTo int64,
) (resp dto.EvaluationResponse, err error) {
	ctx, span := tracer.Start(ctx, "GetEvaluation")
	span.SetAttributes(attribute.String("applicant.id", req.ApplicantID))
	defer func() { endSpan(span, err) }()

	// 1. Parse the applicant reference.
	lookup, err := model.ParseApplicantLookup(req.ApplicantID)
	if err != nil {
		return dto.EvaluationResponse{}, err
	}
	now := time.Now().UTC()

	var in service.EvaluationInput
	err = uc.uow.Do(ctx, func(ctx context.Context, store port.Store) error {
		// 2. Resolve the applicant.
		user, err := store.FindUser(ctx, lookup)
		if err != nil {
			return fmt.Errorf("find user %s: %w", lookup, err)
		}
		if restrictTo > 0 && user.ID != restrictTo {
			return fmt.Errorf("evaluation of %s: %w", lookup, model.ErrForbidden)
		}

		// 3. Make sure there is something to evaluate.
		collector := &events.EventCollector{}
		latest, _, err := ensureSnapshot(ctx, store, uc.engine, collector, user.ID, now)
		if err != nil {
			return err
		}
		if err := flushOutbox(ctx, store, collector); err != nil {
			return err
		}

		// 4. Recent history.
		history, err := store.RecentSnapshots(ctx, user.ID, service.HistoryLength)
		if err != nil {
			return fmt.Errorf("list snapshots: %w", err)
		}

		// 5. Pending requests: loans first, then settlements.
		pending, err := pendingRequests(ctx, store, user.ID)
		if err != nil {
			return err
		}

		// 6. Live utilization.
		facts, err := store.LoadFacts(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("load facts: %w", err)
		}

		in = service.EvaluationInput{
			User:           user,
			Latest:         latest,
			History:        history,
			Pending:        pending,
			UtilizationPct: facts.UtilizationPct(),
			Now:            now,
		}
		return nil
	})
	if err != nil {
		return dto.EvaluationResponse{}, fmt.Errorf("get evaluation: %w", err)
	}

	if derived := valueobject.RiskLevelFromScore(in.Latest.Score); !derived.Equal(in.Latest.RiskLevel) {
		uc.logger.Warn("stored risk level disagrees with score",
			"user_id", in.User.ID,
			"score", in.Latest.Score,
			"stored", in.Latest.RiskLevel.String(),
			"derived", derived.String(),
		)
	}

	return toEvaluationResponse(uc.composer.Compose(in)), nil
}

func pendingRequests(ctx context.Context, store port.Store, userID int64) ([]model.PendingRequest, error) {
	accounts, err := store.ListAccounts(ctx, userID, valueobject.AccountStatusPendingApproval)
	if err != nil {
		return nil, fmt.Errorf("list pending accounts: %w", err)
	}
	settlements, err := store.ListPendingSettlements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pending settlements: %w", err)
	}

	pending := make([]model.PendingRequest, 0, len(accounts)+len(settlements))
	for _, a := range accounts {
		pending = append(pending, model.PendingLoan(a))
	}
	for _, s := range settlements {
		pending = append(pending, model.PendingSettlement(s, userID))
	}
	return pending, nil
}

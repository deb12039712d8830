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
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
)

// ComputeSnapshotUseCase scores a user from the current ledger and appends
// the result to the user's score history.
type ComputeSnapshotUseCase struct {
	uow    port.UnitOfWork
	engine *service.ScoreEngine
	logger *slog.Logger
}

// NewComputeSnapshotUseCase wires dependencies.
func NewComputeSnapshotUseCase(uow port.UnitOfWork, engine *service.ScoreEngine, logger *slog.Logger) *ComputeSnapshotUseCase {
	return &ComputeSnapshotUseCase{uow: uow, engine: engine, logger: logger}
}

// Execute appends a new snapshot. InquiryPenalty lowers the carried
// inquiries factor; a negative value raises it.
func (uc *ComputeSnapshotUseCase) Execute(
	ctx context.Context,
	req dto.ComputeSnapshotRequest,
) (resp dto.SnapshotResponse, err error) {
	ctx, span := tracer.Start(ctx, "ComputeSnapshot")
	span.SetAttributes(attribute.Int64("user.id", req.UserID), attribute.Int("inquiry.penalty", req.InquiryPenalty))
	defer func() { endSpan(span, err) }()

	if req.UserID <= 0 {
		return dto.SnapshotResponse{}, model.NewValidationError("user_id", "is required")
	}
	now := time.Now().UTC()

	var snapshot model.ScoreSnapshot
	err = uc.uow.Do(ctx, func(ctx context.Context, store port.Store) error {
		collector := &events.EventCollector{}

		// 1. Score and append.
		s, err := recordSnapshot(ctx, store, uc.engine, collector, req.UserID, req.InquiryPenalty, now)
		if err != nil {
			return err
		}
		snapshot = s

		// 2. Outbox.
		return flushOutbox(ctx, store, collector)
	})
	if err != nil {
		return dto.SnapshotResponse{}, fmt.Errorf("compute snapshot: %w", err)
	}

	uc.logger.Info("score snapshot recorded",
		"user_id", snapshot.UserID,
		"score", snapshot.Score,
		"risk_level", snapshot.RiskLevel.String(),
		"inquiry_penalty", req.InquiryPenalty,
	)
	return toSnapshotResponse(snapshot), nil
}

// EnsureSnapshotUseCase makes sure a user has at least one snapshot.
type EnsureSnapshotUseCase struct {
	uow    port.UnitOfWork
	engine *service.ScoreEngine
	logger *slog.Logger
}

// NewEnsureSnapshotUseCase wires dependencies.
func NewEnsureSnapshotUseCase(uow port.UnitOfWork, engine *service.ScoreEngine, logger *slog.Logger) *EnsureSnapshotUseCase {
	return &EnsureSnapshotUseCase{uow: uow, engine: engine, logger: logger}
}

// Execute returns the latest snapshot, computing a baseline when the user
// has none. Repeated calls append at most one snapshot.
func (uc *EnsureSnapshotUseCase) Execute(
	ctx context.Context,
	req dto.EnsureSnapshotRequest,
) (resp dto.SnapshotResponse, err error) {
	ctx, span := tracer.Start(ctx, "EnsureSnapshot")
	span.SetAttributes(attribute.Int64("user.id", req.UserID))
	defer func() { endSpan(span, err) }()

	if req.UserID <= 0 {
		return dto.SnapshotResponse{}, model.NewValidationError("user_id", "is required")
	}
	now := time.Now().UTC()

	var (
		snapshot model.ScoreSnapshot
		created  bool
	)
	err = uc.uow.Do(ctx, func(ctx context.Context, store port.Store) error {
		collector := &events.EventCollector{}
		s, c, err := ensureSnapshot(ctx, store, uc.engine, collector, req.UserID, now)
		if err != nil {
			return err
		}
		snapshot, created = s, c
		return flushOutbox(ctx, store, collector)
	})
	if err != nil {
		return dto.SnapshotResponse{}, fmt.Errorf("ensure snapshot: %w", err)
	}

	if created {
		uc.logger.Info("baseline score snapshot recorded", "user_id", snapshot.UserID, "score", snapshot.Score)
	}
	return toSnapshotResponse(snapshot), nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/event"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/port"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/service"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
)

var tracer = otel.Tracer("credit-service/usecase")

// endSpan records err on the span before ending it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// recordSnapshot scores the user inside an open unit of work and appends
// the snapshot. The per-user scoring lock is held until the unit ends.
func recordSnapshot(
	ctx context.Context,
	store port.Store,
	engine *service.ScoreEngine,
	collector *events.EventCollector,
	userID int64,
	inquiryPenalty int,
	now time.Time,
) (model.ScoreSnapshot, error) {
	// 1. Serialise scoring for this user.
	if err := store.LockScoring(ctx, userID); err != nil {
		return model.ScoreSnapshot{}, fmt.Errorf("lock scoring: %w", err)
	}

	// 2. Read ledger facts.
	facts, err := store.LoadFacts(ctx, userID)
	if err != nil {
		return model.ScoreSnapshot{}, fmt.Errorf("load facts: %w", err)
	}

	// 3. Carry forward from the previous snapshot, if any.
	previous := model.DefaultFactorSet()
	latest, found, err := store.LatestSnapshot(ctx, userID)
	if err != nil {
		return model.ScoreSnapshot{}, fmt.Errorf("find latest snapshot: %w", err)
	}
	if found {
		previous = latest.Factors
	}

	// 4. Compute and append.
	snapshot := engine.Compute(facts, previous, inquiryPenalty, now)
	snapshot, err = store.AppendSnapshot(ctx, snapshot)
	if err != nil {
		return model.ScoreSnapshot{}, fmt.Errorf("append snapshot: %w", err)
	}

	collector.Record(event.NewScoreSnapshotRecorded(
		snapshot.ID, userID, snapshot.Score, snapshot.RiskLevel.String(), inquiryPenalty, snapshot.CalculatedAt,
	))
	return snapshot, nil
}

// ensureSnapshot returns the user's latest snapshot, computing a baseline
// when there is none. created reports whether a snapshot was appended.
func ensureSnapshot(
	ctx context.Context,
	store port.Store,
	engine *service.ScoreEngine,
	collector *events.EventCollector,
	userID int64,
	now time.Time,
) (snapshot model.ScoreSnapshot, created bool, err error) {
	if err := store.LockScoring(ctx, userID); err != nil {
		return model.ScoreSnapshot{}, false, fmt.Errorf("lock scoring: %w", err)
	}
	latest, found, err := store.LatestSnapshot(ctx, userID)
	if err != nil {
		return model.ScoreSnapshot{}, false, fmt.Errorf("find latest snapshot: %w", err)
	}
	if found {
		return latest, false, nil
	}
	snapshot, err = recordSnapshot(ctx, store, engine, collector, userID, 0, now)
	if err != nil {
		return model.ScoreSnapshot{}, false, err
	}
	return snapshot, true, nil
}

// flushOutbox stores every collected event in the outbox of the open unit.
func flushOutbox(ctx context.Context, store port.Store, collector *events.EventCollector) error {
	pending := collector.ClearEvents()
	if len(pending) == 0 {
		return nil
	}
	entries, err := events.NewOutboxEntries(pending)
	if err != nil {
		return fmt.Errorf("build outbox entries: %w", err)
	}
	if err := store.Store(ctx, entries); err != nil {
		return fmt.Errorf("store outbox entries: %w", err)
	}
	return nil
}

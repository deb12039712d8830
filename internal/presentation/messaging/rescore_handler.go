package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/dto"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	pkgkafka "github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/kafka"
)

// SnapshotEnsurer is satisfied by *usecase.EnsureSnapshotUseCase.
type SnapshotEnsurer interface {
	Execute(ctx context.Context, req dto.EnsureSnapshotRequest) (dto.SnapshotResponse, error)
}

// rescoreMessage is the payload of a rescore request, typically published
// by the identity service after signup.
type rescoreMessage struct {
	UserID int64 `json:"user_id"`
}

// RescoreHandler makes sure every announced user has a baseline snapshot.
type RescoreHandler struct {
	ensure SnapshotEnsurer
	logger *slog.Logger
}

// NewRescoreHandler creates a handler backed by ensure.
func NewRescoreHandler(ensure SnapshotEnsurer, logger *slog.Logger) *RescoreHandler {
	return &RescoreHandler{ensure: ensure, logger: logger}
}

// Handle processes one message. Malformed payloads and unknown users are
// logged and acknowledged; other failures are returned so the message is
// not committed.
func (h *RescoreHandler) Handle(ctx context.Context, msg pkgkafka.Message) error {
	var payload rescoreMessage
	if err := json.Unmarshal(msg.Value, &payload); err != nil || payload.UserID <= 0 {
		h.logger.WarnContext(ctx, "dropping malformed rescore message",
			"key", string(msg.Key),
			"error", err,
		)
		return nil
	}

	snapshot, err := h.ensure.Execute(ctx, dto.EnsureSnapshotRequest{UserID: payload.UserID})
	switch {
	case errors.Is(err, model.ErrNotFound):
		h.logger.WarnContext(ctx, "rescore for unknown user ignored", "user_id", payload.UserID)
		return nil
	case err != nil:
		return fmt.Errorf("rescore user %d: %w", payload.UserID, err)
	}

	h.logger.DebugContext(ctx, "rescore handled",
		"user_id", payload.UserID,
		"score", snapshot.Score,
		"risk_level", snapshot.RiskLevel,
	)
	return nil
}

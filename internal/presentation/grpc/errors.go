package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
)

// toStatus maps application errors onto gRPC status codes. Errors that are
// already statuses pass through unchanged.
func toStatus(ctx context.Context, logger *slog.Logger, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var validationErr *model.ValidationError
	var conflictErr *model.SettlementConflictError

	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.Is(err, model.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrNotFound), errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &conflictErr):
		return status.Errorf(codes.FailedPrecondition,
			"settlement amount exceeds outstanding balance: outstanding=%s requested=%s",
			conflictErr.Outstanding.StringFixed(2), conflictErr.Requested.StringFixed(2))
	case errors.Is(err, model.ErrConflict):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrForbidden):
		return status.Error(codes.PermissionDenied, "insufficient permissions")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		logger.ErrorContext(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

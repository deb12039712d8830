package grpc

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/auth"
)

// publicMethods skip authentication.
var publicMethods = []string{
	"/grpc.health.v1.Health/Check",
	"/grpc.health.v1.Health/Watch",
}

// rolePolicy guards administrative methods. Methods absent here only need
// an authenticated caller; GetEvaluation narrows non-admins in the handler.
var rolePolicy = auth.MethodRoles{
	MethodComputeSnapshot:         {auth.RoleAdmin},
	MethodDecideRequest:           {auth.RoleAdmin},
	MethodDecideLoanRequest:       {auth.RoleAdmin},
	MethodDecideSettlementRequest: {auth.RoleAdmin},
}

// metricsInterceptor counts RPCs and records their latency per method and
// status code.
func metricsInterceptor(meter metric.Meter, logger *slog.Logger) grpc.UnaryServerInterceptor {
	requests, err := meter.Int64Counter("credit_grpc_requests_total",
		metric.WithDescription("gRPC requests handled, by method and status code."))
	if err != nil {
		logger.Warn("grpc request counter unavailable", "error", err)
	}
	latency, err := meter.Float64Histogram("credit_grpc_request_duration_seconds",
		metric.WithDescription("gRPC request latency."),
		metric.WithUnit("s"))
	if err != nil {
		logger.Warn("grpc latency histogram unavailable", "error", err)
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := metric.WithAttributes(
			attribute.String("method", info.FullMethod),
			attribute.String("code", status.Code(err).String()),
		)
		if requests != nil {
			requests.Add(ctx, 1, attrs)
		}
		if latency != nil {
			latency.Record(ctx, time.Since(start).Seconds(), attrs)
		}
		return resp, err
	}
}

package grpc

import (
	"fmt"
	"log/slog"
	"net"

	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/auth"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/tlsutil"
)

// ServerOptions configures the transport around the handler.
type ServerOptions struct {
	ServiceName string
	TLS         tlsutil.ServerConfig
	Reflection  bool
}

// Server wraps a gRPC server with the credit handler registered.
type Server struct {
	gs      *grpc.Server
	health  *health.Server
	handler *CreditHandler
	logger  *slog.Logger
}

// NewServer creates and configures the gRPC server. Interceptors run in
// order: metrics, authentication, role policy.
func NewServer(handler *CreditHandler, jwtService *auth.JWTService, opts ServerOptions, logger *slog.Logger) (*Server, error) {
	serverOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			metricsInterceptor(otel.Meter("credit-service/grpc"), logger),
			auth.UnaryAuthInterceptor(jwtService, publicMethods),
			auth.RequireRoles(rolePolicy),
		),
	}

	if opts.TLS.Enabled() {
		creds, err := tlsutil.ServerCredentials(opts.TLS)
		if err != nil {
			return nil, fmt.Errorf("grpc tls: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
		logger.Info("gRPC TLS enabled", "cert", opts.TLS.CertFile, "mutual", opts.TLS.ClientCAFile != "")
	} else {
		logger.Info("gRPC TLS not configured, running without TLS")
	}

	gs := grpc.NewServer(serverOpts...)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(gs, healthSrv)
	healthSrv.SetServingStatus(opts.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	if opts.Reflection {
		reflection.Register(gs)
	}

	RegisterCreditRiskServiceServer(gs, handler)

	return &Server{
		gs:      gs,
		health:  healthSrv,
		handler: handler,
		logger:  logger,
	}, nil
}

// Serve starts the gRPC server on the specified address.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.ServeListener(lis)
}

// ServeListener serves on an existing listener.
func (s *Server) ServeListener(lis net.Listener) error {
	s.logger.Info("gRPC server listening", "addr", lis.Addr().String())
	return s.gs.Serve(lis)
}

// GracefulStop marks the service as not serving and drains in-flight calls.
func (s *Server) GracefulStop() {
	s.logger.Info("gRPC server shutting down")
	s.health.Shutdown()
	s.gs.GracefulStop()
}

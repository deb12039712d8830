package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/application/usecase"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/service"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/infrastructure/config"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/infrastructure/kafka"
	pgRepo "github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/infrastructure/postgres"
	grpcPresentation "github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/presentation/grpc"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/presentation/messaging"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/presentation/rest"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/auth"
	pkgkafka "github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/kafka"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/observability"
	pkgpostgres "github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/postgres"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/tlsutil"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting credit-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"kafka", cfg.Kafka.Enabled(),
	)

	// Initialize tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Insecure:    cfg.Telemetry.OTLPInsecure,
		SampleRatio: cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdownTracer(context.Background()) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without /metrics", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort
	}

	// Database connection.
	dbCfg := pkgpostgres.Config{
		URL:      cfg.DB.URL,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		MaxConns: int32(cfg.DB.MaxConns), //nolint:gosec // small configured value
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	dbCancel()
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if cfg.DB.MigrateOnStart {
		if err := pkgpostgres.RunMigrations(dbCfg.DSN(), pgRepo.Migrations, pgRepo.MigrationsDir); err != nil {
			logger.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("database schema up to date")
	}

	// Wire infrastructure adapters.
	store := pgRepo.NewStore(pool)
	engine := service.NewScoreEngine()

	// Wire use cases.
	decideLoanUC := usecase.NewDecideLoanRequestUseCase(store, engine, logger)
	decideSettlementUC := usecase.NewDecideSettlementRequestUseCase(store, engine, logger)
	ensureSnapshotUC := usecase.NewEnsureSnapshotUseCase(store, engine, logger)
	useCases := grpcPresentation.UseCases{
		ComputeSnapshot:         usecase.NewComputeSnapshotUseCase(store, engine, logger),
		GetEvaluation:           usecase.NewGetEvaluationUseCase(store, engine, service.NewEvaluationComposer(), logger),
		DecideRequest:           usecase.NewDecideRequestUseCase(decideLoanUC, decideSettlementUC),
		DecideLoanRequest:       decideLoanUC,
		DecideSettlementRequest: decideSettlementUC,
		SubmitLoanRequest:       usecase.NewSubmitLoanRequestUseCase(store, logger),
		SubmitSettlementRequest: usecase.NewSubmitSettlementRequestUseCase(store, logger),
		ListLoans:               usecase.NewListLoansUseCase(store),
		PaymentHistory:          usecase.NewPaymentHistoryUseCase(store),
	}

	jwtSvc, err := newJWTService(cfg.Auth)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewCreditHandler(useCases, logger)
	grpcServer, err := grpcPresentation.NewServer(handler, jwtSvc, grpcPresentation.ServerOptions{
		ServiceName: cfg.ServiceName,
		TLS: tlsutil.ServerConfig{
			CertFile:     cfg.TLS.CertFile,
			KeyFile:      cfg.TLS.KeyFile,
			ClientCAFile: cfg.TLS.ClientCAFile,
		},
		Reflection: cfg.GRPCReflection,
	}, logger)
	if err != nil {
		logger.Error("failed to create gRPC server", "error", err)
		os.Exit(1)
	}

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, metricsHandler, cfg.ServiceName, logger).RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Background workers stop with workerCtx.
	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	var workers sync.WaitGroup

	if cfg.Kafka.Enabled() {
		closeKafka, err := startKafka(workerCtx, &workers, cfg, pgRepo.NewOutboxRepo(pool), ensureSnapshotUC, logger)
		if err != nil {
			logger.Error("failed to start kafka workers", "error", err)
			os.Exit(1)
		}
		defer closeKafka()
	} else {
		logger.Info("KAFKA_BROKERS not set, outbox relay disabled")
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	stopWorkers()
	workers.Wait()

	logger.Info("credit-service stopped")
}

// newJWTService builds a validation-only JWT service: public key preferred,
// shared secret as fallback.
func newJWTService(cfg config.AuthConfig) (*auth.JWTService, error) {
	jwtCfg := auth.JWTConfig{Issuer: cfg.Issuer}
	if cfg.JWTPublicKeyFile != "" {
		keyData, err := auth.LoadKeyFromFile(cfg.JWTPublicKeyFile)
		if err != nil {
			return nil, err
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	} else {
		jwtCfg.Secret = cfg.JWTSecret
	}
	return auth.NewJWTService(jwtCfg)
}

// startKafka launches the outbox relay and, when a rescore topic is
// configured, the rescore consumer. The returned func closes the clients.
func startKafka(
	ctx context.Context,
	workers *sync.WaitGroup,
	cfg config.Config,
	outbox *pgRepo.OutboxRepo,
	ensure *usecase.EnsureSnapshotUseCase,
	logger *slog.Logger,
) (func(), error) {
	kafkaCfg := pkgkafka.Config{
		Brokers:       cfg.Kafka.Brokers,
		ConsumerGroup: cfg.Kafka.ConsumerGroup,
		ClientID:      cfg.ServiceName,
		TLS:           cfg.Kafka.TLS,
		SASLEnabled:   cfg.Kafka.SASLMechanism != "",
		SASLMechanism: cfg.Kafka.SASLMechanism,
		SASLUsername:  cfg.Kafka.SASLUsername,
		SASLPassword:  cfg.Kafka.SASLPassword,
	}

	producer, err := pkgkafka.NewProducer(kafkaCfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	closers := []func() error{producer.Close}

	relay := kafka.NewOutboxRelay(outbox, producer, cfg.Kafka.EventsTopic, cfg.Kafka.RelayInterval, cfg.Kafka.RelayBatch, logger)
	workers.Add(1)
	go func() {
		defer workers.Done()
		relay.Run(ctx)
	}()

	if cfg.Kafka.RescoreTopic != "" {
		rescore := messaging.NewRescoreHandler(ensure, logger)
		consumer, err := pkgkafka.NewConsumer(kafkaCfg, cfg.Kafka.RescoreTopic, rescore.Handle, logger)
		if err != nil {
			_ = producer.Close()
			return nil, fmt.Errorf("kafka consumer: %w", err)
		}
		closers = append(closers, consumer.Close)

		workers.Add(1)
		go func() {
			defer workers.Done()
			if err := consumer.Start(ctx); err != nil {
				logger.Error("rescore consumer stopped", "error", err)
			}
		}()
	}

	return func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Warn("kafka close", "error", err)
			}
		}
	}, nil
}

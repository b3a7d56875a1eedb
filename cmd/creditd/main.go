package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coopcredit/credit-application-service/internal/application/usecase"
	"github.com/coopcredit/credit-application-service/internal/domain/port"
	"github.com/coopcredit/credit-application-service/internal/domain/service"
	"github.com/coopcredit/credit-application-service/internal/infrastructure/adapter"
	"github.com/coopcredit/credit-application-service/internal/infrastructure/config"
	"github.com/coopcredit/credit-application-service/internal/infrastructure/kafka"
	"github.com/coopcredit/credit-application-service/internal/infrastructure/metrics"
	pgRepo "github.com/coopcredit/credit-application-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/coopcredit/credit-application-service/internal/presentation/grpc"
	"github.com/coopcredit/credit-application-service/internal/presentation/rest"
	"github.com/coopcredit/credit-application-service/pkg/auth"
	pkgkafka "github.com/coopcredit/credit-application-service/pkg/kafka"
	"github.com/coopcredit/credit-application-service/pkg/observability"
	pkgpostgres "github.com/coopcredit/credit-application-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting credit-application-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics. The Prometheus handler is mounted on the HTTP server.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	recorder, err := metrics.NewRecorder(cfg.ServiceName)
	if err != nil {
		logger.Error("failed to create metrics recorder", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	appRepo := pgRepo.NewCreditApplicationRepo(pool)
	memberRepo := pgRepo.NewMemberRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close() //nolint:errcheck // best-effort producer shutdown
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	var riskClient port.RiskCentralClient
	if cfg.RiskCentralURL != "" {
		riskClient = adapter.NewRiskCentralAdapter(adapter.RiskCentralConfig{
			BaseURL: cfg.RiskCentralURL,
			APIKey:  getEnv("RISK_CENTRAL_API_KEY", ""),
		})
		logger.Info("using risk central HTTP adapter", "url", cfg.RiskCentralURL)
	} else {
		riskClient = adapter.NewStubRiskCentralClient()
		logger.Info("using deterministic risk scoring stub")
	}

	eligibility := service.NewEligibilityEvaluator()
	gateway := service.NewRiskScoringGateway(riskClient, eligibility)

	// Wire use cases.
	createAppUC := usecase.NewCreateApplicationUseCase(appRepo, memberRepo, publisher, eligibility, recorder)
	getAppUC := usecase.NewGetApplicationUseCase(appRepo)
	listAppsUC := usecase.NewListApplicationsUseCase(appRepo)
	requestEvalUC := usecase.NewRequestEvaluationUseCase(appRepo, memberRepo, gateway, publisher, recorder)
	recordDecisionUC := usecase.NewRecordDecisionUseCase(appRepo, publisher, recorder)
	previewUC := usecase.NewPreviewAmortizationUseCase()
	registerMemberUC := usecase.NewRegisterMemberUseCase(memberRepo, publisher, recorder)
	manageMemberUC := usecase.NewManageMemberUseCase(memberRepo, publisher)
	getMemberUC := usecase.NewGetMemberUseCase(memberRepo)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtCfg.Secret = cfg.JWT.Secret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewHandler(
		createAppUC, getAppUC, listAppsUC, requestEvalUC, recordDecisionUC, previewUC,
		registerMemberUC, manageMemberUC, getMemberUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
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
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	logger.Info("credit-application-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

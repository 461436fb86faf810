package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	langopenai "github.com/tmc/langchaingo/llms/openai"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/gen/ent"
	pantryv1 "github.com/pantryops/pantryd/gen/proto/pantry/v1"
	"github.com/pantryops/pantryd/internal/agent"
	"github.com/pantryops/pantryd/internal/async"
	"github.com/pantryops/pantryd/internal/common"
	"github.com/pantryops/pantryd/internal/extract"
	extractopenai "github.com/pantryops/pantryd/internal/extract/openai"
	"github.com/pantryops/pantryd/internal/inventory"
	"github.com/pantryops/pantryd/internal/metrics"
	repo "github.com/pantryops/pantryd/internal/repository"
	svc "github.com/pantryops/pantryd/internal/server"
	"github.com/pantryops/pantryd/internal/storage"
	"github.com/pantryops/pantryd/internal/upload"
)

func main() {
	cfg := common.LoadConfig()

	logger, closeLog := common.SetupLogger(cfg.Server.LogFile, slog.LevelInfo)
	defer func() { _ = closeLog() }()
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database: Postgres through pgx, or embedded sqlite for local runs.
	var entc *ent.Client
	if cfg.Database.SQLitePath != "" {
		var err error
		entc, err = repo.OpenSQLite(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Error("failed to open sqlite database", "error", err, "path", cfg.Database.SQLitePath)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
	} else {
		client, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(client, pool, logger)
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		entc = client
	}

	// Repositories
	inventoryRepo := repo.NewInventoryRepository(entc, logger)
	auditRepo := repo.NewAuditRepository(entc, logger)
	uploadRepo := repo.NewUploadRepository(entc, logger)
	ingestionRepo := repo.NewIngestionRepository(entc, logger)
	metricsRepo := repo.NewMetricsRepository(entc, logger)

	agg := metrics.NewAggregator(metricsRepo, metricsRepo, logger)
	engine := inventory.NewEngine(inventoryRepo, auditRepo, logger)

	// Extraction: provider plus deterministic fallback.
	fallback, err := extract.NewFallbackParser(logger)
	if err != nil {
		logger.Error("failed to load fallback tables", "error", err)
		os.Exit(1)
	}
	provider := extractopenai.FromAppConfig(cfg.Extract, logger)
	extractor := extract.NewService(provider, fallback, cfg.Extract.Timeout, logger)

	// Agent controller model.
	model, err := langopenai.New(
		langopenai.WithToken(cfg.Extract.APIKey),
		langopenai.WithModel(cfg.Agent.Model),
		langopenai.WithBaseURL(cfg.Extract.BaseURL),
	)
	if err != nil {
		logger.Error("failed to create agent model", "error", err)
		os.Exit(1)
	}

	deps := &agent.Dependencies{
		Engine:      engine,
		Extractor:   extractor,
		Context:     inventoryRepo,
		Invocations: ingestionRepo,
		Logger:      logger,
	}
	runner := agent.NewRunner(model, deps, cfg.Agent.MaxTurns, logger)
	executor := agent.NewExecutor(runner, ingestionRepo, uploadRepo, agg, logger)

	// Upload pipeline.
	store, err := storage.NewS3Store(ctx, cfg.Storage.Region, logger)
	if err != nil {
		logger.Error("failed to init object store", "error", err)
		os.Exit(1)
	}
	uploadSvc := upload.NewService(uploadRepo, store, cfg.Storage.Bucket, cfg.Storage.UploadURLTTL, logger)
	textExtractor := upload.NewTextExtractor(extractor, logger)
	processor := upload.NewProcessor(uploadRepo, store, textExtractor, executor, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Agent.Workers),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	// Re-enqueue jobs that were still queued when the last process stopped.
	requeuePending(ctx, uploadRepo, queue, logger)

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	pantryv1.RegisterExtractionServiceServer(grpcServer, svc.NewExtractionService(extractor, agg, logger))
	pantryv1.RegisterInventoryServiceServer(grpcServer, svc.NewInventoryService(engine, logger))
	pantryv1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(executor, ingestionRepo, logger))
	pantryv1.RegisterUploadsServiceServer(grpcServer, svc.NewUploadsService(uploadSvc, queue, logger))
	pantryv1.RegisterMetricsServiceServer(grpcServer, svc.NewMetricsService(agg, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("pantryd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// requeuePending puts durably queued upload jobs back on the in-process queue
// after a restart.
func requeuePending(ctx context.Context, uploadRepo *repo.UploadRepository, queue async.Queue, logger *slog.Logger) {
	jobs, err := uploadRepo.JobsInState(ctx, constants.UploadJobStatusQueued, 512)
	if err != nil {
		logger.Warn("failed to list pending upload jobs", "error", err)
		return
	}
	for _, j := range jobs {
		if err := queue.Enqueue(ctx, async.Job{JobID: j.ID, UploadID: j.UploadID, SubmittedAt: time.Now().UTC()}); err != nil {
			logger.Warn("failed to requeue upload job", "job_id", j.ID, "error", err)
		}
	}
	if len(jobs) > 0 {
		logger.Info("requeued pending upload jobs", "count", len(jobs))
	}
}

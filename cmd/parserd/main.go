// Command parserd watches directories for new resumes, parses them
// through a worker pool, and serves gRPC health for orchestration.
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
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/haroldmt/resume-parser/internal/async"
	"github.com/haroldmt/resume-parser/internal/common"
	"github.com/haroldmt/resume-parser/internal/core"
	"github.com/haroldmt/resume-parser/internal/ingest"
	repo "github.com/haroldmt/resume-parser/internal/repository"
	ingestsvc "github.com/haroldmt/resume-parser/internal/services/ingest"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	roots := strings.Split(os.Getenv("WATCH_ROOTS"), string(os.PathListSeparator))
	roots = compact(roots)
	if len(roots) == 0 {
		logger.Error("WATCH_ROOTS env var is required (path-list of directories)")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbResult, err := repo.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()
	entc := dbResult.Client

	if dbResult.Pool != nil {
		if err := repo.HealthCheck(ctx, dbResult.Pool, 3*time.Second, logger); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
	}

	filesRepo := repo.NewResumeFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)

	pipeline := core.BuildPipeline(cfg, logger)
	proc := core.NewProcessor(logger, pipeline, filesRepo, jobsRepo)
	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	ingestor := ingest.NewFSIngestor(filesRepo, logger)
	svc := ingestsvc.NewService(ingestor, queue, logger)

	events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: true,
		Debounce:    500 * time.Millisecond,
	})
	if err != nil {
		logger.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}

	// gRPC health + reflection for orchestration probes
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	logger.Info("watching for resumes", "roots", roots)
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
			grpcServer.GracefulStop()
			shCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			queue.Shutdown(shCtx)
			cancel()
			return
		case err, ok := <-watchErrs:
			if ok && err != nil {
				logger.Warn("watcher error", "error", err)
			}
		case path, ok := <-events:
			if !ok {
				continue
			}
			result, err := svc.IngestFile(ctx, ingestsvc.FileIngestRequest{Path: path})
			if err != nil {
				logger.Warn("ingest failed", "path", path, "error", err)
				continue
			}
			if err := svc.ProcessIngestedFile(ctx, &result, true); err != nil {
				logger.Warn("enqueue failed", "path", path, "error", err)
			}
		}
	}
}

func compact(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Command dbhealth verifies database connectivity and reports pool
// statistics. Exit code 0 means healthy.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/haroldmt/resume-parser/internal/common"
	repo "github.com/haroldmt/resume-parser/internal/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" && cfg.Database.SQLitePath == "" {
		logger.Error("DB_URL or SQLITE_PATH env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dbResult, err := repo.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	if dbResult.Pool != nil {
		if err := repo.HealthCheck(ctx, dbResult.Pool, 3*time.Second, logger); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
		st := dbResult.Pool.Stat()
		logger.Info("database healthy",
			"total_conns", st.TotalConns(),
			"idle_conns", st.IdleConns(),
			"acquired_conns", st.AcquiredConns(),
		)
		return
	}
	logger.Info("sqlite database healthy")
}

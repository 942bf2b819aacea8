// Command resume-batch ingests every resume under a directory, parses
// them, and writes a candidate summary workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/haroldmt/resume-parser/internal/common"
	"github.com/haroldmt/resume-parser/internal/core"
	"github.com/haroldmt/resume-parser/internal/export"
	"github.com/haroldmt/resume-parser/internal/ingest"
	repo "github.com/haroldmt/resume-parser/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory to process resumes from (required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "candidates.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	dbResult, err := repo.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()
	entc := dbResult.Client

	filesRepo := repo.NewResumeFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)

	pipeline := core.BuildPipeline(cfg, logger)
	proc := core.NewProcessor(logger, pipeline, filesRepo, jobsRepo)
	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("directory ingest failed", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("ingest complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)

	parsed, failed := 0, 0
	for _, r := range results {
		if r.Err != "" || r.FileID == "" {
			continue
		}
		fileID, err := uuid.Parse(r.FileID)
		if err != nil {
			continue
		}
		if _, err := proc.ProcessFile(ctx, fileID); err != nil {
			logger.Warn("parse failed", "path", r.SourcePath, "error", err)
			failed++
			continue
		}
		parsed++
	}
	logger.Info("batch parse complete", "parsed", parsed, "failed", failed)

	svc := export.NewService(entc, jobsRepo, filesRepo, logger)
	xlsx, err := svc.ExportParsedXLSX(ctx, parsed+failed)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("write workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("workbook written", "path", *out, "bytes", len(xlsx))
}

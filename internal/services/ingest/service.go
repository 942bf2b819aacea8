package ingest

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/haroldmt/resume-parser/internal/async"
	"github.com/haroldmt/resume-parser/internal/common"
	"github.com/haroldmt/resume-parser/internal/ingest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service handles ingestion business logic.
type Service struct {
	ingestor ingest.Ingestor
	queue    async.Queue
	logger   *slog.Logger
}

// NewService creates a new ingest service.
func NewService(ing ingest.Ingestor, q async.Queue, logger *slog.Logger) *Service {
	return &Service{
		ingestor: ing,
		queue:    q,
		logger:   logger,
	}
}

// maxPathLen caps paths at a length every supported filesystem accepts.
func maxPathLen(fieldName string, value interface{}) *common.ValidationError {
	return common.MaxLength(fieldName, value, 4096)
}

// FileIngestRequest represents file ingestion parameters.
type FileIngestRequest struct {
	Path           string
	SkipDuplicates bool
}

// DirectoryIngestResult represents directory ingestion results.
type DirectoryIngestResult struct {
	Statistics ingest.DirStats
	Results    []ingest.IngestionResult
}

// IngestFile registers a single file and returns its ingest outcome.
func (s *Service) IngestFile(ctx context.Context, req FileIngestRequest) (ingest.IngestionResult, error) {
	path := strings.TrimSpace(req.Path)
	v := common.NewValidator().Field("path", path, common.Required, maxPathLen)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("ingest request rejected", "error", err)
		return ingest.IngestionResult{}, err
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return ingest.IngestionResult{}, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}

	s.logger.Info("file ingest succeeded", "file_id", r.FileID, "deduplicated", r.Deduplicated)

	return r, nil
}

// DirectoryIngestRequest represents directory ingestion parameters.
type DirectoryIngestRequest struct {
	RootPath       string
	SkipHidden     bool
	SkipDuplicates bool
}

// IngestDirectory ingests all matching files in a directory.
func (s *Service) IngestDirectory(ctx context.Context, req DirectoryIngestRequest) (*DirectoryIngestResult, error) {
	root := strings.TrimSpace(req.RootPath)
	v := common.NewValidator().Field("root_path", root, common.Required, maxPathLen)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("ingest directory request rejected", "error", err)
		return nil, err
	}

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", req.SkipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, req.SkipHidden)
	if err != nil {
		// DB and file errors are already logged in repository/ingest layers
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}

	s.logger.Info("directory ingest completed", "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	return &DirectoryIngestResult{
		Statistics: stats,
		Results:    results,
	}, nil
}

// ProcessIngestedFile enqueues an ingested file for parsing.
func (s *Service) ProcessIngestedFile(ctx context.Context, result *ingest.IngestionResult, skipDuplicates bool) error {
	if result.Err != "" || result.FileID == "" {
		return nil // nothing to process
	}

	fileUUID, err := uuid.Parse(result.FileID)
	if err != nil {
		s.logger.Error("invalid file_id: cannot enqueue", "file_id", result.FileID, "error", err)
		return common.InvalidArgumentErrorf("invalid file_id %q", result.FileID)
	}

	if result.Deduplicated && skipDuplicates {
		s.logger.Info("skipping processing (duplicate)", "file_id", result.FileID, "path", result.SourcePath)
		return nil
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		FileID:      fileUUID,
		Force:       !skipDuplicates && result.Deduplicated,
		SubmittedAt: time.Now(),
		TraceID:     uuid.NewString(),
	}); err != nil {
		s.logger.Error("enqueue failed for file", "file_id", result.FileID, "err", err)
		return common.InternalErrorf("enqueue failed: %v", err)
	}

	return nil
}

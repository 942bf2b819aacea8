// Package parse exposes the parsing pipeline as a request/response
// service with gRPC status codes at the boundary.
package parse

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haroldmt/resume-parser/internal/common"
	"github.com/haroldmt/resume-parser/internal/core"
	"github.com/haroldmt/resume-parser/internal/extract"
	"github.com/haroldmt/resume-parser/internal/parser"
	"github.com/haroldmt/resume-parser/internal/repository"
	"github.com/haroldmt/resume-parser/internal/utils"
)

// Service handles parse business logic.
type Service struct {
	proc     *core.Processor
	pipeline *parser.Processor
	jobsRepo repository.ParseJobRepository
	logger   *slog.Logger
}

func NewService(proc *core.Processor, pipeline *parser.Processor, jobs repository.ParseJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		proc:     proc,
		pipeline: pipeline,
		jobsRepo: jobs,
		logger:   logger,
	}
}

// ParseFileRequest identifies a previously ingested file.
type ParseFileRequest struct {
	FileID string
}

// ParseFile runs the pipeline for a stored file and returns the job ID.
func (s *Service) ParseFile(ctx context.Context, req ParseFileRequest) (string, error) {
	id := strings.TrimSpace(req.FileID)
	v := common.NewValidator().Field("file_id", id, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("invalid file_id format for parse", "file_id", req.FileID, "error", err)
		return "", err
	}
	fileID, _ := uuid.Parse(id)

	jobID, err := s.proc.ProcessFile(ctx, fileID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return jobID.String(), common.NotFoundError(err.Error())
		}
		return jobID.String(), mapExtractError(err)
	}
	return jobID.String(), nil
}

// ParseBytes runs the pipeline directly on document bytes without
// touching storage. Used by one-shot CLI parses.
func (s *Service) ParseBytes(ctx context.Context, filename string, data []byte, progress extract.ProgressFunc) (parser.Output, error) {
	if len(strings.TrimSpace(filename)) == 0 {
		return parser.Output{}, status.Error(codes.InvalidArgument, "filename is required")
	}

	out, err := s.pipeline.Process(ctx, extract.Document{Filename: filename, Data: data}, progress)
	if err != nil {
		return parser.Output{}, mapExtractError(err)
	}
	return out, nil
}

// ListRecentJobs returns the latest parse jobs, newest first.
func (s *Service) ListRecentJobs(ctx context.Context, limit int) ([]JobSummary, error) {
	rows, err := s.jobsRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}
	out := make([]JobSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, JobSummary{
			JobID:      r.ID.String(),
			FileID:     r.FileID.String(),
			Format:     r.Format,
			Status:     utils.StrOrEmpty(r.Status),
			Error:      utils.StrOrEmpty(r.ErrorMessage),
			StartedAt:  r.StartedAt,
			FinishedAt: utils.TimeOrZero(r.FinishedAt),
		})
	}
	return out, nil
}

// mapExtractError translates pipeline error kinds into status codes a
// caller can branch on.
func mapExtractError(err error) error {
	var ee *extract.Error
	if errors.As(err, &ee) {
		switch {
		case errors.Is(err, extract.ErrEmptyFile),
			errors.Is(err, extract.ErrFileTooLarge),
			errors.Is(err, extract.ErrUnsupportedFormat):
			return status.Error(codes.InvalidArgument, ee.Error())
		case errors.Is(err, extract.ErrExhausted):
			return status.Error(codes.FailedPrecondition, ee.Error())
		}
	}
	return status.Errorf(codes.Internal, "parse: %v", err)
}

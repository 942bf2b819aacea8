// Package core coordinates the parse pipeline against persistent
// storage: it loads ingested files, advances parse_job rows through
// their lifecycle, and stores the assembled result.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/haroldmt/resume-parser/constants"
	"github.com/haroldmt/resume-parser/internal/common"
	"github.com/haroldmt/resume-parser/internal/extract"
	"github.com/haroldmt/resume-parser/internal/ocr"
	"github.com/haroldmt/resume-parser/internal/parser"
	"github.com/haroldmt/resume-parser/internal/repository"
)

// Processor runs extraction and parsing for stored files.
type Processor struct {
	logger    *slog.Logger
	pipeline  *parser.Processor
	filesRepo repository.ResumeFileRepository
	jobsRepo  repository.ParseJobRepository
}

func NewProcessor(
	logger *slog.Logger,
	pipeline *parser.Processor,
	filesRepo repository.ResumeFileRepository,
	jobsRepo repository.ParseJobRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		pipeline:  pipeline,
		filesRepo: filesRepo,
		jobsRepo:  jobsRepo,
	}
}

// ProcessFile parses a previously ingested file, advancing its
// parse_job row from RUNNING through EXTRACTED to PARSED or FAILED.
// Returns the job ID.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	logger := p.logger
	if trace := common.RequestIDFromContext(ctx); trace != "" {
		logger = logger.With("trace_id", trace)
	}

	row, err := p.filesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.jobsRepo.Start(ctx, row.ID, format)
	if err != nil {
		return uuid.Nil, err
	}

	data, err := os.ReadFile(row.SourcePath)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, fmt.Sprintf("read source: %v", err))
		return job.ID, fmt.Errorf("read source: %w", err)
	}

	out, err := p.pipeline.Process(ctx, extract.Document{
		Filename: row.Filename,
		Data:     data,
	}, nil)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, err
	}

	diag := out.Diagnostics
	if err := p.jobsRepo.MarkExtracted(ctx, job.ID, out.Data.RawText, string(diag.Strategy), diag.ExtractionConfidence); err != nil {
		return job.ID, err
	}

	needsReview := !diag.Usable
	if format == constants.IMAGE && diag.ExtractionConfidence < ocr.ImageConfidenceThreshold {
		logger.Warn("image extraction confidence low; needs review",
			"file_id", fileID, "job_id", job.ID, "confidence", diag.ExtractionConfidence)
		needsReview = true
	}

	payload, err := json.Marshal(out.Data)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, fmt.Sprintf("marshal result: %v", err))
		return job.ID, fmt.Errorf("marshal result: %w", err)
	}
	if err := p.jobsRepo.FinishSuccess(ctx, job.ID, payload, diag.SectionConfidence, needsReview, diag.Warnings); err != nil {
		return job.ID, err
	}

	logger.Info("processor.parsed",
		"file_id", fileID,
		"job_id", job.ID,
		"strategy", diag.Strategy,
		"sections", len(diag.SectionsFound),
		"needs_review", needsReview,
	)
	return job.ID, nil
}

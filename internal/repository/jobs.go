package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/haroldmt/resume-parser/constants"
	"github.com/haroldmt/resume-parser/gen/ent"
	entjob "github.com/haroldmt/resume-parser/gen/ent/parsejob"
)

type ParseJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ParseJob, error)
	MarkExtracted(ctx context.Context, jobID uuid.UUID, rawText, strategy string, confidence float32) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID, parsed json.RawMessage, sectionConfidence float64, needsReview bool, warnings []string) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	ListRecent(ctx context.Context, limit int) ([]*ent.ParseJob, error)
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ParseJob, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("parse_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *parseJobRepo) MarkExtracted(ctx context.Context, jobID uuid.UUID, rawText, strategy string, confidence float32) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetRawText(rawText).
		SetExtractionStrategy(strategy).
		SetExtractionConfidence(confidence).
		SetStatus(string(constants.JobStatusExtracted)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job mark extracted failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *parseJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, parsed json.RawMessage, sectionConfidence float64, needsReview bool, warnings []string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetParsedJSON(parsed).
		SetSectionConfidence(sectionConfidence).
		SetNeedsReview(needsReview).
		SetWarnings(warnings).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished (PARSED)", "job_id", jobID, "needs_review", needsReview)
	return nil
}

func (r *parseJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *parseJobRepo) ListRecent(ctx context.Context, limit int) ([]*ent.ParseJob, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.ent.ParseJob.Query().
		Order(ent.Desc(entjob.FieldStartedAt)).
		Limit(limit).
		All(ctx)
}

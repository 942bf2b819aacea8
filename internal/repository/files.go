package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/haroldmt/resume-parser/gen/ent"
	entfile "github.com/haroldmt/resume-parser/gen/ent/resumefile"
	"github.com/haroldmt/resume-parser/internal/common"
)

type ResumeFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ResumeFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.ResumeFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ResumeFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ResumeFile, bool, error)
}

type resumeFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewResumeFileRepository(entc *ent.Client, logger *slog.Logger) ResumeFileRepository {
	return &resumeFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *resumeFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ResumeFile, error) {
	row, err := r.ent.ResumeFile.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.WrapError(common.ErrNotFound, "resume file "+id.String())
	}
	return row, err
}

func (r *resumeFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.ResumeFile, error) {
	row, err := r.ent.ResumeFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *resumeFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ResumeFile, error) {
	row, err := r.ent.ResumeFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create resume file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash resolves identical bytes to one row. The bool reports
// whether an existing row was reused.
func (r *resumeFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ResumeFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert resume file by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

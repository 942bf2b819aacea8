package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/haroldmt/resume-parser/constants"
	"github.com/haroldmt/resume-parser/internal/repository"
)

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	FilesRepo   repository.ResumeFileRepository
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> default set
	logger      *slog.Logger
}

func NewFSIngestor(f repository.ResumeFileRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		FilesRepo: f,
		logger:    logger,
	}
}

func (i *FSIngestor) allowed(ext string) bool {
	if i.AllowedExts == nil {
		return constants.IsAllowedExt(ext)
	}
	_, ok := i.AllowedExts[constants.NormalizeExt(ext)]
	return ok
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.logger.Error("ingest.abs_path", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !i.allowed(ext) {
		i.logger.Warn("ingest.unsupported_extension", "path", abs, "ext", ext)
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		i.logger.Error("ingest.open", "path", abs, "error", err)
		return out, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			i.logger.Warn("ingest.close", "path", abs, "error", err)
		}
	}()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		i.logger.Error("ingest.hash", "path", abs, "error", err)
		return out, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.FilesRepo.UpsertByHash(ctx, abs, filepath.Base(abs), ext, int(size), sum, now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		Format:       constants.MapExtToFormat(row.FileExt),
		UploadedAt:   row.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !i.allowed(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

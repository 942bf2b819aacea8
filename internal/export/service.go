package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/haroldmt/resume-parser/constants"
	"github.com/haroldmt/resume-parser/gen/ent"
	"github.com/haroldmt/resume-parser/internal/entity"
	"github.com/haroldmt/resume-parser/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	ent       *ent.Client
	jobsRepo  repository.ParseJobRepository
	filesRepo repository.ResumeFileRepository
	logger    *slog.Logger
}

func NewService(entc *ent.Client, jobs repository.ParseJobRepository, files repository.ResumeFileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, jobsRepo: jobs, filesRepo: files, logger: logger}
}

// ExportParsedXLSX returns an XLSX workbook (as bytes) summarizing the
// most recent successfully parsed resumes, one row per parse job.
func (s *Service) ExportParsedXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	jobs, err := s.jobsRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Candidates"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Email",
		"Phone",
		"Location",
		"Latest Title",
		"Latest Employer",
		"Skills",
		"Degree",
		"School",
		"Parsed At",
		"Needs Review",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	exported := 0
	for _, j := range jobs {
		if j.Status == nil || *j.Status != string(constants.JobStatusParsed) || len(j.ParsedJSON) == 0 {
			continue
		}
		var data entity.ParsedResumeData
		if err := json.Unmarshal(j.ParsedJSON, &data); err != nil {
			s.logger.Warn("export.skip_bad_json", "job_id", j.ID, "error", err)
			continue
		}

		filePath := ""
		if fileRow, err := s.filesRepo.GetByID(ctx, j.FileID); err == nil && fileRow != nil {
			filePath = fileRow.SourcePath
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		name := strings.TrimSpace(data.Contact.FirstName + " " + data.Contact.LastName)
		location := data.Contact.City
		if data.Contact.State != "" {
			if location != "" {
				location += ", "
			}
			location += data.Contact.State
		}
		var title, employer string
		if len(data.WorkExperiences) > 0 {
			title = data.WorkExperiences[0].JobTitle
			employer = data.WorkExperiences[0].Employer
		}

		write(1, name)
		write(2, data.Contact.Email)
		write(3, data.Contact.Phone)
		write(4, location)
		write(5, title)
		write(6, employer)
		write(7, truncate(strings.Join(data.Skills, ", "), 200))
		write(8, data.Education.Degree)
		write(9, data.Education.School)
		if j.FinishedAt != nil {
			write(10, j.FinishedAt.Format("2006-01-02 15:04"))
		}
		write(11, j.NeedsReview)
		write(12, filePath)

		row++
		exported++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // name
	_ = f.SetColWidth(sheet, "B", "B", 30) // email
	_ = f.SetColWidth(sheet, "C", "D", 18) // phone, location
	_ = f.SetColWidth(sheet, "E", "F", 26) // title, employer
	_ = f.SetColWidth(sheet, "G", "G", 48) // skills
	_ = f.SetColWidth(sheet, "H", "I", 28) // education
	_ = f.SetColWidth(sheet, "L", "L", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", exported,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

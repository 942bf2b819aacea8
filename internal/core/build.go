package core

import (
	"log/slog"

	"github.com/haroldmt/resume-parser/internal/common"
	"github.com/haroldmt/resume-parser/internal/extract"
	"github.com/haroldmt/resume-parser/internal/ocr"
	"github.com/haroldmt/resume-parser/internal/parser"
	"github.com/haroldmt/resume-parser/internal/sections"
)

// BuildPipeline wires the extraction orchestrator, section classifier,
// and assembler from loaded configuration.
func BuildPipeline(cfg *common.Config, logger *slog.Logger) *parser.Processor {
	if logger == nil {
		logger = slog.Default()
	}

	pages := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.Language,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
		Cleanup: ocr.CleanupConfig{
			AggressiveSubstitutions: cfg.OCR.AggressiveCleanup,
		},
	}, logger)

	orchestrator := extract.NewOrchestrator(extract.Config{
		MaxFileSize:     cfg.Extract.MaxFileSize,
		MinTextLength:   cfg.Extract.MinTextLength,
		MinUsableLength: cfg.Extract.MinUsableLength,
		WorkDir:         cfg.Extract.WorkDir,
	}, pages, logger)

	engine := sections.NewEngine(sections.DefaultRuleSet(), logger)
	return parser.NewProcessor(orchestrator, engine, logger)
}

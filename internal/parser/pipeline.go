// Package parser wires extraction, section classification, and field
// extraction into one pipeline and assembles the final record.
package parser

import (
	"context"
	"log/slog"
	"time"

	"github.com/haroldmt/resume-parser/internal/entity"
	"github.com/haroldmt/resume-parser/internal/extract"
	"github.com/haroldmt/resume-parser/internal/sections"
)

// Processor runs the full parse pipeline for one document.
type Processor struct {
	extractor  *extract.Orchestrator
	classifier *sections.Engine
	logger     *slog.Logger
}

func NewProcessor(extractor *extract.Orchestrator, classifier *sections.Engine, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{extractor: extractor, classifier: classifier, logger: logger}
}

// Diagnostics carries everything a caller needs to judge or debug a
// parse without re-running it.
type Diagnostics struct {
	Strategy             extract.Strategy  `json:"strategy"`
	Attempts             []extract.Attempt `json:"attempts"`
	Pages                int               `json:"pages"`
	ExtractionConfidence float32           `json:"extraction_confidence"`
	SectionConfidence    float64           `json:"section_confidence"`
	SectionsFound        []sections.Name   `json:"sections_found"`
	Usable               bool              `json:"usable"`
	Warnings             []string          `json:"warnings"`
	Elapsed              time.Duration     `json:"elapsed"`
}

// Output is one completed parse.
type Output struct {
	Data        entity.ParsedResumeData
	Sections    sections.Result
	Diagnostics Diagnostics
}

// Process extracts text from the document, classifies its sections,
// and assembles the parsed record. Extraction failure is the only
// error path; classification and field extraction always produce a
// result, degraded at worst.
func (p *Processor) Process(ctx context.Context, doc extract.Document, progress extract.ProgressFunc) (Output, error) {
	started := time.Now()

	ext, err := p.extractor.Extract(ctx, doc, progress)
	if err != nil {
		p.logger.Warn("parse.extract.failed", "filename", doc.Filename, "error", err)
		return Output{}, err
	}
	p.logger.Info("parse.extracted",
		"filename", doc.Filename,
		"strategy", ext.Strategy,
		"chars", len(ext.Text),
		"pages", ext.Pages)

	secs := p.classifier.Classify(ext.Text)
	if !secs.Usable() {
		p.logger.Warn("parse.sections.low_confidence",
			"filename", doc.Filename,
			"confidence", secs.Confidence,
			"warnings", len(secs.Warnings))
	}

	data := assemble(ext.Text, secs)
	if err := ValidateParsedResume(data); err != nil {
		// invariant breakage, not input badness; log and keep the data
		p.logger.Error("parse.schema.invalid", "filename", doc.Filename, "error", err)
	}

	found := make([]sections.Name, 0, len(secs.Boundaries))
	for _, b := range secs.Boundaries {
		found = append(found, b.Section)
	}

	out := Output{
		Data:     data,
		Sections: secs,
		Diagnostics: Diagnostics{
			Strategy:             ext.Strategy,
			Attempts:             ext.Attempts,
			Pages:                ext.Pages,
			ExtractionConfidence: ext.Confidence,
			SectionConfidence:    secs.Confidence,
			SectionsFound:        found,
			Usable:               secs.Usable(),
			Warnings:             append(append([]string{}, ext.Warnings...), secs.Warnings...),
			Elapsed:              time.Since(started),
		},
	}
	p.logger.Info("parse.done",
		"filename", doc.Filename,
		"sections", len(found),
		"experiences", len(data.WorkExperiences),
		"skills", len(data.Skills),
		"elapsed", out.Diagnostics.Elapsed)
	return out, nil
}

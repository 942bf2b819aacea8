package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/haroldmt/resume-parser/constants"
)

// Config tunes the orchestrator. Zero values fall back to defaults.
type Config struct {
	MaxFileSize       int64 // upload ceiling in bytes
	MinTextLength     int   // below this, escalate to OCR
	MinUsableLength   int   // below this, a strategy's output is unusable
	WorkDir           string
	AllowedMediaTypes map[string]struct{}
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = constants.MaxUploadBytes
	}
	if c.MinTextLength <= 0 {
		c.MinTextLength = 100
	}
	if c.MinUsableLength <= 0 {
		c.MinUsableLength = 40
	}
	if c.WorkDir == "" {
		c.WorkDir = os.TempDir()
	}
	if c.AllowedMediaTypes == nil {
		c.AllowedMediaTypes = defaultMediaTypes
	}
}

var defaultMediaTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/rtf": {},
	"text/rtf":        {},
	"text/plain":      {},
	"image/png":       {},
	"image/jpeg":      {},
	"image/tiff":      {},
}

// Orchestrator runs the escalation ladder: the cheapest strategy for the
// sniffed format first, OCR when the output is too short to be a real
// resume, and a typed failure only when nothing usable came out of any
// strategy. One orchestrator is safe for concurrent use; each run owns
// its own buffers and temp files.
type Orchestrator struct {
	cfg    Config
	pages  PageExtractor
	logger *slog.Logger
}

func NewOrchestrator(cfg Config, pages PageExtractor, logger *slog.Logger) *Orchestrator {
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{cfg: cfg, pages: pages, logger: logger}
}

// Extract validates the document, routes it to the format's extractor,
// escalates to OCR when needed, and returns the best text produced.
func (o *Orchestrator) Extract(ctx context.Context, doc Document, progress ProgressFunc) (Result, error) {
	notify := func(done, total int, label string) {
		if progress != nil {
			progress(done, total, label)
		}
	}
	notify(0, 4, "validating")

	if err := o.validate(doc); err != nil {
		o.logger.Warn("extract.validate.failed", "file", doc.Filename, "err", err)
		return Result{}, err
	}

	format := SniffFormat(doc.Data, doc.Filename)
	if format == "" {
		if doc.MediaType != "" {
			return Result{}, newUnsupportedFormat(doc.Filename, doc.MediaType)
		}
		// Nothing declared, nothing sniffed: decode optimistically.
		format = constants.TXT
	}
	o.logger.Debug("extract.route", "file", doc.Filename, "format", format)
	notify(1, 4, "extracting text")

	var res Result
	var err error
	switch format {
	case constants.PDF:
		res, err = o.extractPDF(ctx, doc, notify)
	case constants.DOCX:
		res, err = o.extractDocx(ctx, doc)
	case constants.IMAGE:
		res, err = o.extractImage(ctx, doc, notify)
	default:
		res, err = o.extractText(doc)
	}
	if err != nil {
		return res, err
	}

	res.Confidence = textConfidence(res.Text)
	notify(4, 4, "done")
	o.logger.Info("extract.ok",
		"file", doc.Filename,
		"strategy", res.Strategy,
		"chars", len(res.Text),
		"pages", res.Pages,
		"attempts", len(res.Attempts),
	)
	return res, nil
}

func (o *Orchestrator) validate(doc Document) error {
	if doc.Size() == 0 {
		return newEmptyFile(doc.Filename)
	}
	if doc.Size() > o.cfg.MaxFileSize {
		return newFileTooLarge(doc.Filename, doc.Size(), o.cfg.MaxFileSize)
	}
	// An empty declared media type gets the benefit of the doubt; a
	// declared one must be on the allow-list or carry an allowed extension.
	if doc.MediaType != "" {
		mt := strings.ToLower(strings.TrimSpace(strings.Split(doc.MediaType, ";")[0]))
		if _, ok := o.cfg.AllowedMediaTypes[mt]; !ok {
			if !constants.IsAllowedExt(filepath.Ext(doc.Filename)) {
				return newUnsupportedFormat(doc.Filename, doc.MediaType)
			}
		}
	}
	return nil
}

// extractPDF tries the native text layer first and escalates to OCR when
// the output is shorter than a minimum-viable resume, which almost always
// means a scanned, image-only document. OCR output replaces the native
// text only when it is strictly longer and itself usable.
func (o *Orchestrator) extractPDF(ctx context.Context, doc Document, notify ProgressFunc) (Result, error) {
	path, cleanup, err := o.spill(doc, ".pdf")
	if err != nil {
		return Result{}, fmt.Errorf("spill pdf: %w", err)
	}
	defer cleanup()

	res := Result{Strategy: StrategyPDFText}

	start := time.Now()
	text, pages, warns, err := o.pages.PDFText(ctx, path)
	text = NormalizeText(text)
	att := Attempt{Strategy: StrategyPDFText, Chars: len(text), Duration: time.Since(start)}
	if err != nil {
		att.Err = err.Error()
		o.logger.Warn("extract.native.failed", "file", doc.Filename, "err", err)
	}
	res.Attempts = append(res.Attempts, att)
	res.Warnings = append(res.Warnings, warns...)
	res.Text, res.Pages = text, pages

	if err == nil && len(text) >= o.cfg.MinTextLength {
		return res, nil
	}

	notify(2, 4, "running ocr")
	o.logger.Info("extract.ocr.escalate", "file", doc.Filename, "native_chars", len(text))

	start = time.Now()
	ocrText, ocrPages, ocrWarns, ocrErr := o.pages.PDFOCR(ctx, path, notify)
	ocrText = NormalizeText(ocrText)
	ocrAtt := Attempt{Strategy: StrategyOCR, Chars: len(ocrText), Duration: time.Since(start)}
	if ocrErr != nil {
		ocrAtt.Err = ocrErr.Error()
		o.logger.Warn("extract.ocr.failed", "file", doc.Filename, "err", ocrErr)
	}
	res.Attempts = append(res.Attempts, ocrAtt)
	res.Warnings = append(res.Warnings, ocrWarns...)

	if ocrErr == nil && len(ocrText) > len(res.Text) && len(ocrText) >= o.cfg.MinUsableLength {
		res.Text, res.Pages, res.Strategy = ocrText, ocrPages, StrategyOCR
	}

	if len(res.Text) < o.cfg.MinUsableLength {
		return res, newExhausted(res.Attempts, firstError(err, ocrErr))
	}
	return res, nil
}

func (o *Orchestrator) extractDocx(ctx context.Context, doc Document) (Result, error) {
	res := Result{Strategy: StrategyDocx}

	start := time.Now()
	text, err := ExtractDocx(doc.Data)
	att := Attempt{Strategy: StrategyDocx, Chars: len(text), Duration: time.Since(start)}
	if err != nil {
		att.Err = err.Error()
		o.logger.Warn("extract.docx.failed", "file", doc.Filename, "err", err)
	}
	res.Attempts = append(res.Attempts, att)
	res.Text = text

	if err == nil && len(text) >= o.cfg.MinTextLength {
		return res, nil
	}

	// A broken or near-empty archive still sometimes carries readable
	// text fragments; raw decode is the only remaining rung.
	start = time.Now()
	raw := DecodeText(doc.Data)
	res.Attempts = append(res.Attempts, Attempt{Strategy: StrategyRawText, Chars: len(raw), Duration: time.Since(start)})
	if len(raw) > len(res.Text) {
		res.Text, res.Strategy = raw, StrategyRawText
	}

	if res.Text == "" {
		return res, newExhausted(res.Attempts, err)
	}
	return res, nil
}

func (o *Orchestrator) extractImage(ctx context.Context, doc Document, notify ProgressFunc) (Result, error) {
	ext := filepath.Ext(doc.Filename)
	if ext == "" {
		ext = ".png"
	}
	path, cleanup, err := o.spill(doc, ext)
	if err != nil {
		return Result{}, fmt.Errorf("spill image: %w", err)
	}
	defer cleanup()

	notify(2, 4, "running ocr")

	res := Result{Strategy: StrategyOCR, Pages: 1}
	start := time.Now()
	text, warns, err := o.pages.ImageOCR(ctx, path)
	text = NormalizeText(text)
	att := Attempt{Strategy: StrategyOCR, Chars: len(text), Duration: time.Since(start)}
	if err != nil {
		att.Err = err.Error()
	}
	res.Attempts = append(res.Attempts, att)
	res.Warnings = append(res.Warnings, warns...)
	res.Text = text

	if err != nil || len(text) < o.cfg.MinUsableLength {
		return res, newExhausted(res.Attempts, err)
	}
	return res, nil
}

func (o *Orchestrator) extractText(doc Document) (Result, error) {
	res := Result{Strategy: StrategyRawText, Pages: 1}
	start := time.Now()
	text := DecodeText(doc.Data)
	res.Attempts = append(res.Attempts, Attempt{Strategy: StrategyRawText, Chars: len(text), Duration: time.Since(start)})
	res.Text = text
	if text == "" {
		return res, newExhausted(res.Attempts, nil)
	}
	return res, nil
}

// spill writes the payload to a temp file for the exec-backed tools.
func (o *Orchestrator) spill(doc Document, ext string) (string, func(), error) {
	f, err := os.CreateTemp(o.cfg.WorkDir, "resume-*"+ext)
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }
	if _, err := f.Write(doc.Data); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

// textConfidence is a length/quality signal in 0..1, not a calibrated
// probability.
func textConfidence(text string) float32 {
	if text == "" {
		return 0
	}
	lengthFactor := float64(len(text)) / 800.0
	if lengthFactor > 1 {
		lengthFactor = 1
	}
	return float32(lengthFactor * PrintableRatio(text))
}

func firstError(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

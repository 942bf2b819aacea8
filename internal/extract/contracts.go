package extract

import (
	"context"
	"time"
)

// Document is an uploaded resume as handed over by the upload layer:
// raw bytes plus whatever the client declared about them. It is consumed
// once by the orchestrator and not retained.
type Document struct {
	Filename  string
	MediaType string // declared by the client; may be empty
	Data      []byte
}

// Size returns the byte length of the document.
func (d Document) Size() int64 { return int64(len(d.Data)) }

// Strategy identifies one method of turning document bytes into text.
type Strategy string

const (
	StrategyPDFText Strategy = "pdf-text" // native PDF text layer
	StrategyDocx    Strategy = "docx"     // word-processor markup
	StrategyRawText Strategy = "raw-text" // plain text / RTF decode
	StrategyOCR     Strategy = "ocr"      // rasterize + recognize
)

// Attempt records the outcome of one strategy for diagnostics.
type Attempt struct {
	Strategy Strategy
	Chars    int
	Duration time.Duration
	Err      string // empty on success
}

// Result is the best text the orchestrator could produce.
// Text is never reported as absent via a nil; an empty string plus the
// attempts list is the failure representation.
type Result struct {
	Text       string
	Strategy   Strategy
	Attempts   []Attempt
	Pages      int
	Confidence float32
	Warnings   []string
}

// ProgressFunc reports coarse progress to the caller. It is purely
// advisory and safe to pass as nil. Alias so implementations do not need
// to import this package.
type ProgressFunc = func(done, total int, label string)

// PageExtractor is the seam to the exec-backed extraction engine
// (pdftotext / pdftoppm / tesseract). Stubbed in tests.
type PageExtractor interface {
	// PDFText reads the native text layer of a PDF file.
	PDFText(ctx context.Context, path string) (text string, pages int, warnings []string, err error)
	// PDFOCR rasterizes each page and recognizes text, skipping pages
	// that fail and reporting them in warnings.
	PDFOCR(ctx context.Context, path string, progress ProgressFunc) (text string, pages int, warnings []string, err error)
	// ImageOCR recognizes text from a single image file.
	ImageOCR(ctx context.Context, path string) (text string, warnings []string, err error)
}

package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PDFText reads the native text layer of a PDF.
func (e *Extractor) PDFText(ctx context.Context, path string) (string, int, []string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, fmt.Errorf("pdftotext: %w", err)
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

// PDFOCR rasterizes each page with pdftoppm and recognizes it with
// tesseract. Pages that fail recognition are skipped and reported in
// warnings; the run fails only when no page rendered at all.
func (e *Extractor) PDFOCR(ctx context.Context, path string, progress func(done, total int, label string)) (string, int, []string, error) {
	tmpDir, err := os.MkdirTemp("", "rp-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("ocr.tmpdir.remove_failed", "dir", tmpDir, "err", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, fmt.Errorf("pdftoppm: %w", err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	for i, img := range matches {
		if progress != nil {
			progress(i, len(matches), fmt.Sprintf("ocr page %d/%d", i+1, len(matches)))
		}
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			e.logger.Warn("ocr.page.failed", "page", i+1, "err", err)
			warns = append(warns, fmt.Sprintf("page %d: %v", i+1, err))
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	text := CleanupText(b.String(), e.cfg.Cleanup)
	return text, len(matches), warns, nil
}

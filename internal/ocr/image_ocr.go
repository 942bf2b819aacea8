package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ImageConfidenceThreshold flags single-image OCR results for review.
const ImageConfidenceThreshold = 0.6

// ImageOCR recognizes text from one image file.
func (e *Extractor) ImageOCR(ctx context.Context, path string) (string, []string, error) {
	txt, warns, err := e.tesseractOCR(ctx, path)
	if err != nil {
		return "", warns, err
	}
	txt = CleanupText(txt, e.cfg.Cleanup)

	if e.cfg.EnableTSVConfidence {
		if conf, w, err2 := e.tesseractTSVConfidence(ctx, path); err2 == nil {
			warns = append(warns, w...)
			if conf > 0 && conf < ImageConfidenceThreshold {
				warns = append(warns, fmt.Sprintf("low ocr confidence: %.2f", conf))
			}
		} else {
			warns = append(warns, err2.Error())
		}
	}
	return txt, warns, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return txt, nil, nil
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns mean word conf in 0..1.
func (e *Extractor) tesseractTSVConfidence(ctx context.Context, path string) (float32, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}
	lines := strings.Split(string(out), "\n")
	// columns: level .. height, conf, text; conf is the 11th of 12
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue // skip header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[10]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil, nil
	}
	mean := sum / n // 0..100
	return float32(mean / 100.0), nil, nil
}

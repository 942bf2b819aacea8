package ocr

import (
	"regexp"
	"strings"
)

// CleanupConfig tunes the post-recognition text cleanup. The blanket
// single-character substitutions help on low-quality scans but corrupt
// clean ones, so they are opt-in.
type CleanupConfig struct {
	// AggressiveSubstitutions enables blanket fixes for common
	// misrecognitions (standalone "|" -> "I", "0"/"O" swaps in words).
	AggressiveSubstitutions bool
	// KeepPageBreaks preserves form feeds instead of folding them into
	// newlines.
	KeepPageBreaks bool
}

var (
	reCRLF       = regexp.MustCompile("\r\n?")
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reBoxNoise   = regexp.MustCompile(`(?m)^\s*[_\-|]{3,}\s*$`)

	rePipeAsI    = regexp.MustCompile(`(^|\s)\|(\s|$)`)
	reZeroInWord = regexp.MustCompile(`([A-Za-z])0([A-Za-z])`)
	reCaseSeam   = regexp.MustCompile(`([a-z])([A-Z][a-z])`)
	reDigitSeam  = regexp.MustCompile(`([A-Za-z]{2,})(\d{4})`)
)

// CleanupText collapses noisy whitespace and repairs common OCR
// artifacts. Conservative by default: keeps line breaks, collapses >2
// blank lines into one.
func CleanupText(s string, cfg CleanupConfig) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	if !cfg.KeepPageBreaks {
		s = strings.ReplaceAll(s, "\f", "\n")
	}
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")

	// OCR loses the space at word seams like "SeniorEngineer" and
	// "Engineer2020"; reinsert at case and digit boundaries.
	s = reCaseSeam.ReplaceAllString(s, "$1 $2")
	s = reDigitSeam.ReplaceAllString(s, "$1 $2")

	if cfg.AggressiveSubstitutions {
		s = rePipeAsI.ReplaceAllString(s, "${1}I${2}")
		s = reZeroInWord.ReplaceAllString(s, "${1}o${2}")
	}

	return strings.TrimSpace(s)
}

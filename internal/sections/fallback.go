package sections

import (
	"regexp"
	"strings"
)

// fallbackMatch marks boundaries synthesized by keyword density rather
// than a recognized header line.
const fallbackMatch = "fallback"

const fallbackConfidence = 0.4

var (
	reFallbackTitle = regexp.MustCompile(`(?i)\b(engineer|developer|manager|analyst|consultant|director|designer|architect|administrator|specialist|coordinator|intern)\b`)
	reFallbackDate  = regexp.MustCompile(`(?i)\b(19|20)\d{2}\b|\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(19|20)\d{2}`)
	reFallbackEdu   = regexp.MustCompile(`(?i)\b(university|college|institute|bachelor|master|ph\.?d|b\.?s\.?|m\.?s\.?|b\.?a\.?|m\.?a\.?|diploma|degree)\b`)
)

// fallbackBoundaries synthesizes pseudo-sections for text with no
// recognizable headers, anchoring on lines whose content looks like the
// body of an experience or education section.
func fallbackBoundaries(lines []string, rules RuleSet) []Boundary {
	var bs []Boundary

	expLine := -1
	for i, l := range lines {
		if reFallbackTitle.MatchString(l) && hasNearbyDate(lines, i, rules.ContextWindow) {
			expLine = i
			break
		}
	}
	if expLine >= 0 {
		bs = append(bs, Boundary{
			Section:    Experience,
			StartLine:  expLine,
			Header:     strings.TrimSpace(lines[expLine]),
			Confidence: fallbackConfidence,
			MatchedBy:  fallbackMatch,
		})
	}

	eduLine := -1
	for i, l := range lines {
		if i == expLine {
			continue
		}
		if reFallbackEdu.MatchString(l) {
			eduLine = i
			break
		}
	}
	if eduLine >= 0 {
		bs = append(bs, Boundary{
			Section:    Education,
			StartLine:  eduLine,
			Header:     strings.TrimSpace(lines[eduLine]),
			Confidence: fallbackConfidence,
			MatchedBy:  fallbackMatch,
		})
	}

	return bs
}

func hasNearbyDate(lines []string, idx, window int) bool {
	lo := idx - window
	if lo < 0 {
		lo = 0
	}
	hi := idx + window
	if hi >= len(lines) {
		hi = len(lines) - 1
	}
	for j := lo; j <= hi; j++ {
		if reFallbackDate.MatchString(lines[j]) {
			return true
		}
	}
	return false
}

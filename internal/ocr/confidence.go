package ocr

import (
	"regexp"
	"strings"
)

var (
	reEmailish = regexp.MustCompile(`\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)
	reDateish  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	rePhoneish = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

var sectionWords = []string{"experience", "education", "skills", "summary", "objective"}

// HeuristicConfidence scores decoded text on whether it looks like a
// resume at all: contact markers, years, section headings, enough bulk.
func HeuristicConfidence(txt string) float32 {
	low := strings.ToLower(txt)
	score := float32(0.2) // base
	if reEmailish.MatchString(low) {
		score += 0.2
	}
	if reDateish.MatchString(low) {
		score += 0.15
	}
	if rePhoneish.MatchString(low) {
		score += 0.1
	}
	for _, w := range sectionWords {
		if strings.Contains(low, w) {
			score += 0.1
			break
		}
	}
	if len(txt) > 300 {
		score += 0.15
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

package entities

import (
	"regexp"
	"strings"
)

var (
	reObjectivePhrase = regexp.MustCompile(`(?i)\b(seeking|looking\s+for|objective|aspiring|position\s+(as|in)|opportunity\s+to)\b`)

	summaryKeywords = []string{
		"experience", "years", "skilled", "professional", "proven",
		"expertise", "background", "passionate", "driven", "track record",
	}
)

// ExtractSummary picks the professional summary, trying in order: the
// summary or objective span, a keyword-dense sentence block near the
// top, an objective phrase, the first substantial paragraph, and as a
// last resort the first meaningful line.
func ExtractSummary(fullText, sectionText string) string {
	if s := strings.TrimSpace(sectionText); len(s) > 50 {
		return collapseWhitespace(s)
	}

	paragraphs := splitParagraphs(fullText)
	head := paragraphs
	if len(head) > 6 {
		head = head[:6]
	}

	for _, p := range head {
		if keywordHits(p) >= 2 || (keywordHits(p) >= 1 && len(p) > 100) {
			if !looksLikeContactBlock(p) {
				return collapseWhitespace(p)
			}
		}
	}

	for _, p := range head {
		if reObjectivePhrase.MatchString(p) && !looksLikeContactBlock(p) {
			return collapseWhitespace(p)
		}
	}

	for _, p := range paragraphs {
		if len(p) > 120 && !looksLikeContactBlock(p) && !startsWithBulletGlyph(p) {
			return collapseWhitespace(p)
		}
	}

	for _, l := range splitTrimmed(fullText) {
		if len(l) >= 40 && len(l) <= 300 && !looksLikeContactBlock(l) && !startsWithBulletGlyph(l) {
			return l
		}
	}
	return ""
}

func keywordHits(p string) int {
	low := strings.ToLower(p)
	n := 0
	for _, kw := range summaryKeywords {
		if strings.Contains(low, kw) {
			n++
		}
	}
	return n
}

func looksLikeContactBlock(p string) bool {
	return reEmail.MatchString(p) || rePhone.MatchString(p) || reLinkedIn.MatchString(p)
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

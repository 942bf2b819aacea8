package entities

import (
	"regexp"
	"sort"
	"strings"

	"github.com/haroldmt/resume-parser/internal/entity"
)

const (
	entryLookahead = 15
	maxFallbackXP  = 5
)

var (
	// "Senior Engineer at Acme Corp", "Engineer, Acme Corp",
	// "Engineer - Acme Corp"
	reTitleAtCompany = regexp.MustCompile(`^(.{2,60}?)\s+(?:at|@)\s+(.{2,60})$`)
	reTitleSepComp   = regexp.MustCompile(`^([^,|–—-]{2,60}?)\s*[,|–—]\s*(.{2,60})$`)

	reCompanySuffix = regexp.MustCompile(`(?i)\b(inc|llc|ltd|corp|co|gmbh|plc|group|labs|technologies|solutions|systems|software|consulting)\b\.?`)
	reRemote        = regexp.MustCompile(`(?i)\bremote\b`)
)

// ExtractExperience builds the work history from the experience span,
// falling back to scanning the whole document when the span is empty.
// It always returns at least one entry; callers rely on a non-empty
// slice for form binding.
func ExtractExperience(fullText, sectionText string) []entity.WorkExperience {
	text := sectionText
	if strings.TrimSpace(text) == "" {
		text = fullText
	}
	lines := splitTrimmed(text)

	var out []entity.WorkExperience
	used := make(map[int]bool)
	for i := 0; i < len(lines); i++ {
		if used[i] || !candidateEntryLine(lines, i) {
			continue
		}
		xp, consumed := buildEntry(lines, i)
		if xp.IsEmpty() {
			continue
		}
		for _, j := range consumed {
			used[j] = true
		}
		out = append(out, xp)
	}

	if len(out) == 0 {
		out = fallbackEntries(lines)
	}

	out = filterEmpty(out)
	if len(out) == 0 {
		out = []entity.WorkExperience{{}}
	}
	for i := range out {
		out[i].ID = i + 1
	}
	return out
}

// candidateEntryLine reports whether lines[i] starts a new entry. Bare
// structural titles need a date within the next two lines so that names
// and stray capitalized lines do not spawn entries of their own.
func candidateEntryLine(lines []string, i int) bool {
	if looksLikeTitleLine(lines[i]) {
		return true
	}
	return structuralTitle(lines[i]) && dateWithin(lines, i+1, 2)
}

// looksLikeTitleLine accepts short lines that contain a job-title word
// or read as "Title at Company" / "Title, Company Inc".
func looksLikeTitleLine(line string) bool {
	if line == "" || len(line) > 90 || startsWithBulletGlyph(line) || startsWithActionVerb(line) {
		return false
	}
	low := strings.ToLower(line)
	for _, w := range jobTitleWords {
		if containsWord(low, w) {
			return notDateOnly(line)
		}
	}
	if reTitleAtCompany.MatchString(line) {
		return notDateOnly(line)
	}
	if m := reTitleSepComp.FindStringSubmatch(line); m != nil && reCompanySuffix.MatchString(m[2]) {
		return notDateOnly(line)
	}
	return false
}

// lines that are never entry titles even when short and capitalized
var nonTitleLines = map[string]struct{}{
	"experience": {}, "work experience": {}, "professional experience": {},
	"employment": {}, "employment history": {}, "work history": {},
	"education": {}, "skills": {}, "summary": {}, "objective": {},
	"projects": {}, "certifications": {}, "awards": {}, "references": {},
	"remote": {}, "present": {},
}

// structuralTitle accepts short capitalized lines that are not dates,
// institutions, companies, or locations.
func structuralTitle(line string) bool {
	if line == "" || len(line) > 60 || startsWithBulletGlyph(line) || startsWithActionVerb(line) {
		return false
	}
	if strings.ContainsAny(line, "0123456789@") || strings.Contains(strings.ToLower(line), "http") {
		return false
	}
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > 5 {
		return false
	}
	for _, w := range words {
		if isConnectorWord(w) {
			continue
		}
		if w[0] < 'A' || w[0] > 'Z' {
			return false
		}
	}
	if _, ok := nonTitleLines[strings.ToLower(line)]; ok {
		return false
	}
	return !isInstitutionLine(line) && !reCompanySuffix.MatchString(line) && !reCityStateZip.MatchString(line)
}

func isConnectorWord(w string) bool {
	switch strings.ToLower(w) {
	case "of", "and", "the", "for", "to", "in", "&":
		return true
	}
	return false
}

// dateWithin looks for a parseable date on lines[from : from+n].
func dateWithin(lines []string, from, n int) bool {
	end := from + n
	if end > len(lines) {
		end = len(lines)
	}
	for j := from; j < end; j++ {
		if s, _, cur := ParseDateRange(lines[j]); s != nil || cur {
			return true
		}
	}
	return false
}

// a line that is only a date range is a continuation, not a title
func notDateOnly(line string) bool {
	stripped := reMonthYear.ReplaceAllString(line, "")
	stripped = reYear.ReplaceAllString(stripped, "")
	return len(strings.TrimSpace(stripped)) > 3
}

// buildEntry assembles one entry from a title line and the lines that
// follow it, stopping at the next title line.
func buildEntry(lines []string, idx int) (entity.WorkExperience, []int) {
	var xp entity.WorkExperience
	consumed := []int{idx}

	title := lines[idx]
	if m := reTitleAtCompany.FindStringSubmatch(title); m != nil {
		xp.JobTitle = strings.TrimSpace(m[1])
		xp.Employer = strings.TrimSpace(m[2])
	} else if m := reTitleSepComp.FindStringSubmatch(title); m != nil && reCompanySuffix.MatchString(m[2]) {
		xp.JobTitle = strings.TrimSpace(m[1])
		xp.Employer = strings.TrimSpace(m[2])
	} else {
		xp.JobTitle = strings.TrimSpace(title)
	}

	var bullets []string
	end := idx + entryLookahead
	if end > len(lines) {
		end = len(lines)
	}
	for j := idx + 1; j < end; j++ {
		l := lines[j]
		if l == "" {
			continue
		}
		if candidateEntryLine(lines, j) {
			break
		}
		if xp.StartDate == nil {
			if s, e, cur := ParseDateRange(l); s != nil || cur {
				xp.StartDate, xp.EndDate, xp.Current = s, e, cur
				consumed = append(consumed, j)
				// company or location may share the date line
				rest := stripDates(l)
				fillCompanyLocation(&xp, rest)
				continue
			}
		}
		if strings.EqualFold(l, "remote") {
			xp.Remote = true
			consumed = append(consumed, j)
			continue
		}
		if startsWithBulletGlyph(l) || startsWithActionVerb(l) {
			bullets = append(bullets, strings.TrimLeft(l, "•-*·▪●◦‣– "))
			consumed = append(consumed, j)
			continue
		}
		if xp.Employer == "" && reCompanySuffix.MatchString(l) && len(l) < 60 {
			xp.Employer = l
			consumed = append(consumed, j)
			continue
		}
		if xp.Location == "" {
			if m := reCityStateZip.FindStringSubmatch(l); m != nil && len(l) < 50 {
				xp.Location = strings.TrimSpace(m[1]) + ", " + m[2]
				consumed = append(consumed, j)
			}
		}
	}

	// dates can also sit on the title line itself
	if xp.StartDate == nil {
		if s, e, cur := ParseDateRange(title); s != nil || cur {
			xp.StartDate, xp.EndDate, xp.Current = s, e, cur
		}
	}
	if xp.Current {
		xp.EndDate = nil
	}
	xp.Remote = xp.Remote || reRemote.MatchString(title) || reRemote.MatchString(xp.Location)
	if xp.Remote && strings.EqualFold(xp.Location, "remote") {
		xp.Location = ""
	}
	xp.Accomplishments = strings.Join(bullets, "\n")
	return xp, consumed
}

func fillCompanyLocation(xp *entity.WorkExperience, rest string) {
	rest = strings.Trim(rest, " ,|–—-")
	if rest == "" {
		return
	}
	if m := reCityStateZip.FindStringSubmatch(rest); m != nil && xp.Location == "" {
		xp.Location = strings.TrimSpace(m[1]) + ", " + m[2]
		rest = strings.Trim(strings.Replace(rest, m[0], "", 1), " ,|–—-")
	}
	if rest != "" && xp.Employer == "" && len(rest) < 60 {
		xp.Employer = rest
	}
}

// fallbackEntries scores every line for title and company words plus
// date proximity when structured entry detection found nothing.
func fallbackEntries(lines []string) []entity.WorkExperience {
	type scored struct {
		idx   int
		score int
	}
	var cands []scored
	for i, l := range lines {
		if l == "" || len(l) > 90 {
			continue
		}
		low := strings.ToLower(l)
		score := 0
		for _, w := range jobTitleWords {
			if containsWord(low, w) {
				score += 2
			}
		}
		if reCompanySuffix.MatchString(l) {
			score++
		}
		if score == 0 {
			continue
		}
		if s, _, cur := ParseDateRange(l); s != nil || cur {
			score += 3
		} else if dateWithin(lines, i+1, 1) {
			score += 2
		}
		cands = append(cands, scored{i, score})
	}
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].score > cands[b].score })
	if len(cands) > maxFallbackXP {
		cands = cands[:maxFallbackXP]
	}
	var out []entity.WorkExperience
	for _, c := range cands {
		xp, _ := buildEntry(lines, c.idx)
		if !xp.IsEmpty() {
			out = append(out, xp)
		}
	}
	return out
}

func filterEmpty(in []entity.WorkExperience) []entity.WorkExperience {
	out := in[:0]
	for _, xp := range in {
		if !xp.IsEmpty() {
			out = append(out, xp)
		}
	}
	return out
}

func stripDates(s string) string {
	s = reMonthYear.ReplaceAllString(s, "")
	s = reNumMonthYear.ReplaceAllString(s, "")
	s = reYear.ReplaceAllString(s, "")
	s = rePresent.ReplaceAllString(s, "")
	return s
}

func startsWithBulletGlyph(line string) bool {
	for _, g := range []string{"•", "-", "*", "·", "▪", "●", "◦", "‣", "–"} {
		if strings.HasPrefix(line, g+" ") {
			return true
		}
	}
	return false
}

func startsWithActionVerb(line string) bool {
	word := strings.ToLower(firstWord(line))
	for _, v := range actionVerbs {
		if word == v {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return strings.Trim(f[0], ".,;:")
}

func containsWord(haystack, word string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], word)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isWordChar(haystack[i-1])
		after := i+len(word) == len(haystack) || !isWordChar(haystack[i+len(word)])
		if before && after {
			return true
		}
		idx = i + len(word)
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func splitTrimmed(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = strings.TrimSpace(l)
	}
	return out
}

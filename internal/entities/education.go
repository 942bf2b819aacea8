package entities

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/haroldmt/resume-parser/internal/entity"
)

var (
	// "Bachelor of Science in Computer Science", "BS in CS",
	// "Master of Arts"
	reDegreeLine = regexp.MustCompile(`(?i)\b(bachelor|master|doctor(ate)?|ph\.?d|mba|b\.?sc?\.?|m\.?sc?\.?|b\.?a\.?|m\.?a\.?|b\.?eng\.?|m\.?eng\.?|associate)\b[^,\n]*`)

	reFieldOfStudy = regexp.MustCompile(`(?i)\bin\s+([A-Za-z][A-Za-z&\s]{2,50}?)(?:\s*[,(\n]|$)`)

	reGradMonth = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\b`)
)

// ExtractEducation finds the highest-signal education entry: a degree
// line and the institution nearest to it. The education span is
// preferred; the full text is scanned when the span has nothing.
func ExtractEducation(fullText, sectionText string) entity.Education {
	if edu := educationFrom(sectionText); edu != (entity.Education{}) {
		return edu
	}
	return educationFrom(fullText)
}

func educationFrom(text string) entity.Education {
	var edu entity.Education
	if strings.TrimSpace(text) == "" {
		return edu
	}
	lines := splitTrimmed(text)

	degLine := -1
	for i, l := range lines {
		if m := reDegreeLine.FindString(l); m != "" {
			deg := m
			// the degree name ends where the study field begins
			if loc := reFieldOfStudy.FindStringIndex(deg); loc != nil {
				deg = deg[:loc[0]]
			}
			edu.Degree = strings.TrimSpace(strings.Trim(deg, ".,"))
			degLine = i
			break
		}
	}

	instLine := -1
	for i, l := range lines {
		if isInstitutionLine(l) {
			// institution alone is enough, but prefer one near the degree
			if instLine < 0 {
				instLine = i
			}
			if degLine >= 0 && abs(i-degLine) <= 5 {
				instLine = i
				break
			}
		}
	}
	if instLine >= 0 {
		edu.School = cleanInstitution(lines[instLine])
	}

	if degLine >= 0 {
		// the study field follows the last "in": "Bachelor of Science
		// in Computer Science"
		if ms := reFieldOfStudy.FindAllStringSubmatch(lines[degLine], -1); len(ms) > 0 {
			field := strings.TrimSpace(ms[len(ms)-1][1])
			if !strings.EqualFold(field, "science") && !strings.EqualFold(field, "arts") {
				edu.Field = titleCaseWords(field)
			}
		}
	}

	edu.GradYear, edu.GradMonth = gradDate(lines, degLine, instLine)

	if instLine >= 0 {
		edu.Location = locationNear(lines, instLine)
	}
	return edu
}

func isInstitutionLine(l string) bool {
	if l == "" || len(l) > 90 {
		return false
	}
	low := strings.ToLower(l)
	for _, kw := range institutionKeywords {
		if containsWord(low, kw) {
			return true
		}
	}
	return false
}

func cleanInstitution(l string) string {
	// isolate the institution from comma-packed lines:
	// "Bachelor of Science, Example University, 2021"
	for _, seg := range strings.Split(l, ",") {
		if isInstitutionLine(strings.TrimSpace(seg)) {
			l = seg
			break
		}
	}
	l = stripDates(l)
	if m := reCityStateZip.FindStringIndex(l); m != nil {
		l = l[:m[0]]
	}
	return strings.Trim(strings.TrimSpace(l), ".,|–—-")
}

// gradDate looks for a plausible graduation year near the degree or
// institution lines, taking the latest one found.
func gradDate(lines []string, degLine, instLine int) (year, month string) {
	maxYear := 0
	limit := time.Now().Year() + 10
	consider := func(i int) {
		if i < 0 || i >= len(lines) {
			return
		}
		for _, m := range reYear.FindAllString(lines[i], -1) {
			y, _ := strconv.Atoi(m)
			if y >= 1980 && y <= limit && y > maxYear {
				maxYear = y
				if mo := reGradMonth.FindString(lines[i]); mo != "" {
					month = titleCaseWords(mo)
				}
			}
		}
	}
	for _, anchor := range []int{degLine, instLine} {
		if anchor < 0 {
			continue
		}
		for d := -2; d <= 2; d++ {
			consider(anchor + d)
		}
	}
	if maxYear == 0 {
		return "", ""
	}
	return strconv.Itoa(maxYear), month
}

func locationNear(lines []string, anchor int) string {
	for d := 0; d <= 2; d++ {
		for _, i := range []int{anchor + d, anchor - d} {
			if i < 0 || i >= len(lines) {
				continue
			}
			if m := reCityStateZip.FindStringSubmatch(lines[i]); m != nil {
				return strings.TrimSpace(m[1]) + ", " + m[2]
			}
		}
	}
	return ""
}

func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

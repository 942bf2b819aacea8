package entities

import (
	"regexp"
	"strings"

	"github.com/haroldmt/resume-parser/internal/entity"
)

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	rePhone = regexp.MustCompile(`(\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

	reLinkedIn = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`)
	reWebsite  = regexp.MustCompile(`(?i)(?:https?://|www\.)(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}(?:/[^\s,;]*)?`)

	// "City, ST" with an optional ZIP.
	reCityStateZip = regexp.MustCompile(`\b([A-Z][A-Za-z.\s]*?),\s*([A-Z]{2})(?:\s+(\d{5}(?:-\d{4})?))?\b`)

	// Two to four capitalized words, allowing middle initials and hyphens.
	reNameLine = regexp.MustCompile(`^([A-Z][a-zA-Z'-]*\.?\s+){1,3}[A-Z][a-zA-Z'-]+$`)
)

// ExtractContact pulls contact details from the contact span, falling
// back to the full text field by field. It never fails; absent fields
// stay empty.
func ExtractContact(fullText, sectionText string) entity.ContactInfo {
	var c entity.ContactInfo

	c.Email = firstMatch(reEmail, sectionText, fullText)
	c.Phone = strings.TrimSpace(firstMatch(rePhone, sectionText, fullText))
	c.LinkedInURL = firstMatch(reLinkedIn, sectionText, fullText)
	c.City, c.State, c.ZipCode = extractLocation(sectionText, fullText)
	c.FirstName, c.LastName = extractName(fullText, sectionText, c.Email)

	// A personal site is any URL that is not a LinkedIn profile.
	for _, src := range []string{sectionText, fullText} {
		for _, m := range reWebsite.FindAllString(src, 8) {
			if strings.Contains(strings.ToLower(m), "linkedin.com") {
				continue
			}
			c.WebsiteURL = m
			break
		}
		if c.WebsiteURL != "" {
			break
		}
	}

	return c
}

func firstMatch(re *regexp.Regexp, section, full string) string {
	if m := re.FindString(section); m != "" {
		return m
	}
	return re.FindString(full)
}

func extractLocation(section, full string) (city, state, zip string) {
	for _, src := range []string{section, full} {
		if m := reCityStateZip.FindStringSubmatch(src); m != nil {
			return strings.TrimSpace(m[1]), m[2], m[3]
		}
	}
	return "", "", ""
}

// extractName tries, in order: a name-shaped line in the contact span,
// a name-shaped line among the first lines of the document, the line
// directly above the email address, and the email local part.
func extractName(fullText, sectionText, email string) (first, last string) {
	if n := nameShapedLine(sectionText, 10); n != "" {
		return splitName(n)
	}
	if n := nameShapedLine(fullText, 5); n != "" {
		return splitName(n)
	}

	if email != "" {
		lines := strings.Split(fullText, "\n")
		for i, l := range lines {
			if strings.Contains(l, email) && i > 0 {
				prev := strings.TrimSpace(lines[i-1])
				if reNameLine.MatchString(prev) {
					return splitName(prev)
				}
			}
		}
		if n := nameFromEmail(email); n != "" {
			return splitName(n)
		}
	}
	return "", ""
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}

func nameShapedLine(text string, maxLines int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" || len(l) > 40 {
			continue
		}
		if reEmail.MatchString(l) || rePhone.MatchString(l) {
			continue
		}
		if reNameLine.MatchString(l) {
			return l
		}
	}
	return ""
}

// nameFromEmail turns "jane.doe@example.com" into "Jane Doe". Local
// parts without a separator or with digits are left alone.
func nameFromEmail(email string) string {
	local, _, ok := strings.Cut(email, "@")
	if !ok {
		return ""
	}
	if strings.ContainsAny(local, "0123456789") {
		return ""
	}
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	if len(parts) < 2 {
		return ""
	}
	for i, p := range parts {
		if p == "" {
			return ""
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, " ")
}

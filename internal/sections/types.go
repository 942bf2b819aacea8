// Package sections locates named resume sections in extracted text.
// Classification is pure pattern/keyword scoring: no I/O, no shared
// mutable state, deterministic for identical input.
package sections

import "strings"

// Name is one of the closed set of section identities.
type Name string

const (
	Contact        Name = "contact"
	Summary        Name = "summary"
	Objective      Name = "objective"
	Experience     Name = "experience"
	Education      Name = "education"
	Skills         Name = "skills"
	Projects       Name = "projects"
	Certifications Name = "certifications"
	Languages      Name = "languages"
	Volunteer      Name = "volunteer"
	Publications   Name = "publications"
	Awards         Name = "awards"
	References     Name = "references"
	Unknown        Name = "unknown"
)

// Boundary is one detected section span. StartLine is the header line;
// EndLine is exclusive. Boundaries are sorted by StartLine and never
// overlap; each Name appears at most once.
type Boundary struct {
	Section    Name
	StartLine  int
	EndLine    int
	Header     string
	Confidence float64
	MatchedBy  string
}

// Result is the outcome of classifying one document.
type Result struct {
	Spans      map[Name]string
	Boundaries []Boundary
	Confidence float64 // mean of boundary confidences, 0 when none
	Warnings   []string
}

// Span returns the text of a section, or "" when it was not found.
func (r Result) Span(n Name) string { return r.Spans[n] }

// Usable reports whether the classification is trustworthy enough to
// parse from directly. Callers may proceed anyway but should surface
// the result as low-confidence.
func (r Result) Usable() bool {
	hasAnchor := strings.TrimSpace(r.Spans[Contact]) != "" || strings.TrimSpace(r.Spans[Experience]) != ""
	return hasAnchor && r.Confidence > 0.3 && len(r.Warnings) < 5
}

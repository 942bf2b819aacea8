package parser

import (
	"strings"

	"github.com/haroldmt/resume-parser/internal/entities"
	"github.com/haroldmt/resume-parser/internal/entity"
	"github.com/haroldmt/resume-parser/internal/sections"
)

// assemble runs every field extractor against the classified spans and
// merges the results into one record. It never fails: any field an
// extractor could not find stays at its zero value, and the work
// history always carries at least one entry.
func assemble(fullText string, secs sections.Result) entity.ParsedResumeData {
	contactSpan := secs.Span(sections.Contact)
	summarySpan := secs.Span(sections.Summary)
	if summarySpan == "" {
		summarySpan = secs.Span(sections.Objective)
	}

	data := entity.ParsedResumeData{
		Contact:         entities.ExtractContact(fullText, contactSpan),
		WorkExperiences: entities.ExtractExperience(fullText, secs.Span(sections.Experience)),
		Education:       entities.ExtractEducation(fullText, secs.Span(sections.Education)),
		Skills:          dedupeSkills(entities.ExtractSkills(fullText, secs.Span(sections.Skills))),
		Summary:         entities.ExtractSummary(fullText, summarySpan),
		RawText:         fullText,
	}
	data.Contact.Summary = data.Summary

	if len(data.WorkExperiences) == 0 {
		data.WorkExperiences = []entity.WorkExperience{{ID: 1}}
	}
	if data.Skills == nil {
		data.Skills = []string{}
	}
	return data
}

func dedupeSkills(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haroldmt/resume-parser/internal/entity"
	"github.com/haroldmt/resume-parser/internal/sections"
)

func classify(t *testing.T, text string) sections.Result {
	t.Helper()
	return sections.NewEngine(sections.DefaultRuleSet(), nil).Classify(text)
}

func TestAssembleFullResume(t *testing.T) {
	secs := classify(t, sampleResume)
	data := assemble(sampleResume, secs)

	assert.Equal(t, "jane.doe@example.com", data.Contact.Email)
	require.NotEmpty(t, data.WorkExperiences)
	assert.Equal(t, "Acme Corp", data.WorkExperiences[0].Employer)
	assert.Equal(t, "Bachelor of Science", data.Education.Degree)
	assert.NotEmpty(t, data.Skills)
	assert.Equal(t, sampleResume, data.RawText)
	assert.Equal(t, data.Summary, data.Contact.Summary)
	assert.Contains(t, data.Summary, "Results-driven")
}

func TestAssembleEmptyInputInvariants(t *testing.T) {
	data := assemble("", sections.Result{Spans: map[sections.Name]string{}})

	require.Len(t, data.WorkExperiences, 1)
	assert.Equal(t, 1, data.WorkExperiences[0].ID)
	assert.NotNil(t, data.Skills)
	assert.NoError(t, ValidateParsedResume(data))
}

func TestAssembleCurrentRoleHasNoEndDate(t *testing.T) {
	secs := classify(t, sampleResume)
	data := assemble(sampleResume, secs)

	require.NotEmpty(t, data.WorkExperiences)
	xp := data.WorkExperiences[0]
	assert.True(t, xp.Current)
	assert.Nil(t, xp.EndDate)
}

func TestDedupeSkills(t *testing.T) {
	got := dedupeSkills([]string{"Go", "go", " GO ", "Python", "", "python"})
	assert.Equal(t, []string{"Go", "Python"}, got)
}

func TestValidateParsedResumeAccepts(t *testing.T) {
	secs := classify(t, sampleResume)
	data := assemble(sampleResume, secs)
	assert.NoError(t, ValidateParsedResume(data))
}

func TestValidateParsedResumeRejectsEmptyHistory(t *testing.T) {
	data := entity.ParsedResumeData{
		WorkExperiences: []entity.WorkExperience{},
		Skills:          []string{},
	}
	assert.Error(t, ValidateParsedResume(data))
}

func TestValidateParsedResumeRejectsBadZip(t *testing.T) {
	data := assemble("", sections.Result{Spans: map[sections.Name]string{}})
	data.Contact.ZipCode = "not-a-zip"
	assert.Error(t, ValidateParsedResume(data))
}

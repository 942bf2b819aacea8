package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haroldmt/resume-parser/internal/extract"
	"github.com/haroldmt/resume-parser/internal/sections"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567
San Francisco, CA 94107

Summary
Results-driven engineer with 8 years of experience building distributed
systems and leading small teams.

Experience
Senior Software Engineer at Acme Corp
Jan 2020 - Present
- Led the payments platform team
- Reduced p99 latency by 40 percent

Education
Bachelor of Science in Computer Science, Example University, 2016

Skills
Go, Python, PostgreSQL, Kubernetes, AWS
`

// noPages fails every exec-backed call; plain-text documents never
// reach it.
type noPages struct{}

func (noPages) PDFText(context.Context, string) (string, int, []string, error) {
	return "", 0, nil, errors.New("not available in tests")
}

func (noPages) PDFOCR(context.Context, string, extract.ProgressFunc) (string, int, []string, error) {
	return "", 0, nil, errors.New("not available in tests")
}

func (noPages) ImageOCR(context.Context, string) (string, []string, error) {
	return "", nil, errors.New("not available in tests")
}

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()
	orch := extract.NewOrchestrator(extract.Config{WorkDir: t.TempDir()}, noPages{}, nil)
	return NewProcessor(orch, sections.NewEngine(sections.DefaultRuleSet(), nil), nil)
}

func TestProcessPlainText(t *testing.T) {
	p := newTestProcessor(t)
	doc := extract.Document{Filename: "resume.txt", Data: []byte(sampleResume)}

	out, err := p.Process(context.Background(), doc, nil)
	require.NoError(t, err)

	assert.Equal(t, "Jane", out.Data.Contact.FirstName)
	assert.Equal(t, "jane.doe@example.com", out.Data.Contact.Email)
	require.NotEmpty(t, out.Data.WorkExperiences)
	assert.Equal(t, "Senior Software Engineer", out.Data.WorkExperiences[0].JobTitle)
	assert.Equal(t, "Acme Corp", out.Data.WorkExperiences[0].Employer)
	assert.Equal(t, "Example University", out.Data.Education.School)
	assert.Contains(t, out.Data.Skills, "Go")

	assert.Equal(t, extract.StrategyRawText, out.Diagnostics.Strategy)
	assert.True(t, out.Diagnostics.Usable)
	assert.Contains(t, out.Diagnostics.SectionsFound, sections.Experience)
	assert.Greater(t, out.Diagnostics.SectionConfidence, 0.6)
}

func TestProcessExtractionFailure(t *testing.T) {
	p := newTestProcessor(t)
	doc := extract.Document{Filename: "empty.txt"}

	_, err := p.Process(context.Background(), doc, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, extract.ErrEmptyFile))
}

func TestProcessDegradedInputStillAssembles(t *testing.T) {
	// Headerless fragment: classification falls back, assembly still
	// returns a complete record with placeholder work history.
	p := newTestProcessor(t)
	doc := extract.Document{Filename: "note.txt", Data: []byte("just a line of notes about nothing")}

	out, err := p.Process(context.Background(), doc, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out.Data.WorkExperiences)
	assert.NotNil(t, out.Data.Skills)
	assert.False(t, out.Diagnostics.Usable)
}

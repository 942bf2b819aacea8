package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSummaryFromSection(t *testing.T) {
	section := "Results-driven engineer with 8 years of experience\nbuilding distributed systems."
	got := ExtractSummary("irrelevant", section)
	assert.Equal(t, "Results-driven engineer with 8 years of experience building distributed systems.", got)
}

func TestExtractSummaryKeywordParagraph(t *testing.T) {
	full := `Jane Doe
jane.doe@example.com

Seasoned professional with proven expertise in cloud infrastructure
and a track record of shipping reliable systems.

Experience
Senior Engineer at Acme`

	got := ExtractSummary(full, "")
	assert.Contains(t, got, "proven expertise")
	assert.NotContains(t, got, "jane.doe@example.com")
}

func TestExtractSummaryObjectivePhrase(t *testing.T) {
	full := "Jane Doe\n\nSeeking a backend role on a small team.\n\nExperience follows."
	got := ExtractSummary(full, "")
	assert.Equal(t, "Seeking a backend role on a small team.", got)
}

func TestExtractSummaryEmpty(t *testing.T) {
	assert.Empty(t, ExtractSummary("", ""))
	assert.Empty(t, ExtractSummary("\n\n\n", ""))
}

package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanupTextWhitespace(t *testing.T) {
	in := "Jane Doe\r\nSenior   Engineer\t\tAcme\n\n\n\n\nSkills"
	got := CleanupText(in, CleanupConfig{})
	assert.Equal(t, "Jane Doe\nSenior Engineer Acme\n\nSkills", got)
}

func TestCleanupTextFormFeeds(t *testing.T) {
	in := "page one\fpage two"
	assert.Equal(t, "page one\npage two", CleanupText(in, CleanupConfig{}))
	assert.Equal(t, "page one\fpage two", CleanupText(in, CleanupConfig{KeepPageBreaks: true}))
}

func TestCleanupTextSeamRepair(t *testing.T) {
	got := CleanupText("SeniorEngineer at Acme2019", CleanupConfig{})
	assert.Equal(t, "Senior Engineer at Acme 2019", got)
}

func TestCleanupTextAggressiveOptIn(t *testing.T) {
	in := "| worked on C0RE systems"

	conservative := CleanupText(in, CleanupConfig{})
	assert.Contains(t, conservative, "|")

	aggressive := CleanupText(in, CleanupConfig{AggressiveSubstitutions: true})
	assert.Contains(t, aggressive, "I worked")
	assert.Contains(t, aggressive, "CoRE")
}

func TestCleanupTextEmpty(t *testing.T) {
	assert.Equal(t, "", CleanupText("", CleanupConfig{}))
}

func TestHeuristicConfidence(t *testing.T) {
	garbage := HeuristicConfidence("%%%###")
	resume := HeuristicConfidence(
		"Jane Doe\njane.doe@example.com\n(555) 123-4567\n\nExperience\nSenior Engineer, 2019",
	)
	assert.Greater(t, resume, garbage)
	assert.LessOrEqual(t, resume, float32(1.0))
	assert.GreaterOrEqual(t, garbage, float32(0.2))
}

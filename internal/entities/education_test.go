package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEducationSingleLine(t *testing.T) {
	section := "Bachelor of Science in Computer Science, Example University, 2021"

	edu := ExtractEducation(section, section)
	assert.Equal(t, "Bachelor of Science", edu.Degree)
	assert.Equal(t, "Computer Science", edu.Field)
	assert.Equal(t, "Example University", edu.School)
	assert.Equal(t, "2021", edu.GradYear)
}

func TestExtractEducationMultiLine(t *testing.T) {
	section := `Master of Science in Electrical Engineering
Example Institute of Technology
Boston, MA
May 2018`

	edu := ExtractEducation(section, section)
	assert.Equal(t, "Master of Science", edu.Degree)
	assert.Equal(t, "Electrical Engineering", edu.Field)
	assert.Equal(t, "Example Institute of Technology", edu.School)
	assert.Equal(t, "Boston, MA", edu.Location)
	assert.Equal(t, "2018", edu.GradYear)
	assert.Equal(t, "May", edu.GradMonth)
}

func TestExtractEducationInstitutionOnly(t *testing.T) {
	section := "Example Community College, 2015 - 2017"

	edu := ExtractEducation(section, section)
	assert.Empty(t, edu.Degree)
	assert.Equal(t, "Example Community College", edu.School)
	assert.Equal(t, "2017", edu.GradYear)
}

func TestExtractEducationFullTextFallback(t *testing.T) {
	full := `Jane Doe

Experience
Senior Engineer at Acme Corp

Education
MBA, Example Business School, 2019`

	edu := ExtractEducation(full, "")
	assert.Equal(t, "MBA", edu.Degree)
	assert.Equal(t, "Example Business School", edu.School)
	assert.Equal(t, "2019", edu.GradYear)
}

func TestExtractEducationEmpty(t *testing.T) {
	edu := ExtractEducation("", "")
	assert.Empty(t, edu.Degree)
	assert.Empty(t, edu.School)
	assert.Empty(t, edu.GradYear)
}

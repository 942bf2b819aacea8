package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsFromSection(t *testing.T) {
	section := `Languages: Go, Python, SQL
Frameworks: React, Django
Infrastructure: Docker, Kubernetes, AWS`

	skills := ExtractSkills(section, section)
	assert.Contains(t, skills, "Go")
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "React")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "AWS")
}

func TestExtractSkillsDeduplicatesCaseInsensitively(t *testing.T) {
	section := "python, Python, PYTHON, go"
	skills := ExtractSkills(section, section)

	count := 0
	for _, s := range skills {
		if s == "python" || s == "Python" || s == "PYTHON" {
			count++
		}
	}
	assert.Equal(t, 1, count, "got %v", skills)
}

func TestExtractSkillsFamilyOrdering(t *testing.T) {
	// Languages outrank infrastructure regardless of mention order.
	section := "docker, kubernetes, python"
	skills := ExtractSkills(section, section)
	require.NotEmpty(t, skills)

	idx := func(want string) int {
		for i, s := range skills {
			if s == want {
				return i
			}
		}
		t.Fatalf("%s not in %v", want, skills)
		return -1
	}
	assert.Less(t, idx("python"), idx("docker"))
}

func TestExtractSkillsCanonicalCasing(t *testing.T) {
	// No skills span; known mentions in the body are backfilled with
	// display casing.
	full := "Built services in javascript and node.js on aws with ci/cd pipelines."
	skills := ExtractSkills(full, "")

	assert.Contains(t, skills, "JavaScript")
	assert.Contains(t, skills, "Node.js")
	assert.Contains(t, skills, "AWS")
	assert.Contains(t, skills, "CI/CD")
}

func TestExtractSkillsCap(t *testing.T) {
	long := ""
	for i := 0; i < 80; i++ {
		long += "Skill" + string(rune('A'+i%26)) + string(rune('0'+i/26)) + ", "
	}
	skills := ExtractSkills(long, long)
	assert.LessOrEqual(t, len(skills), 50)
}

func TestExtractSkillsEmpty(t *testing.T) {
	assert.Empty(t, ExtractSkills("", ""))
}

package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567
San Francisco, CA 94107

Summary
Results-driven engineer with 8 years of experience building distributed
systems and leading small teams through ambiguous problems.

Experience
Senior Software Engineer at Acme Corp
Jan 2020 - Present
- Led the payments platform team of five engineers
- Reduced p99 latency by 40 percent

Education
Bachelor of Science in Computer Science, Example University, 2016

Skills
Go, Python, PostgreSQL, Kubernetes, AWS
`

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(DefaultRuleSet(), nil)
}

func TestClassifyHeaders(t *testing.T) {
	e := newTestEngine(t)
	res := e.Classify(sampleResume)

	for _, want := range []Name{Summary, Experience, Education, Skills} {
		b := findBoundary(t, res, want)
		assert.True(t, strings.HasPrefix(b.MatchedBy, "header:"), "section %s matched by %s", want, b.MatchedBy)
		assert.Greater(t, b.Confidence, 0.6, "section %s", want)
	}

	assert.Contains(t, res.Span(Experience), "Acme Corp")
	assert.Contains(t, res.Span(Education), "Example University")
	assert.Contains(t, res.Span(Skills), "Kubernetes")
}

func TestClassifyContactWithoutHeader(t *testing.T) {
	// The contact block at the top carries no "Contact" heading; the
	// contextual email/phone rules must find it anyway.
	e := newTestEngine(t)
	res := e.Classify(sampleResume)

	b := findBoundary(t, res, Contact)
	assert.Equal(t, "context", b.MatchedBy)
	assert.Contains(t, res.Span(Contact), "jane.doe@example.com")
}

func TestClassifyBoundariesSortedAndNonOverlapping(t *testing.T) {
	e := newTestEngine(t)
	res := e.Classify(sampleResume)
	require.NotEmpty(t, res.Boundaries)

	for i := 1; i < len(res.Boundaries); i++ {
		prev, cur := res.Boundaries[i-1], res.Boundaries[i]
		assert.Less(t, prev.StartLine, cur.StartLine)
		assert.LessOrEqual(t, prev.EndLine, cur.StartLine)
	}
	last := res.Boundaries[len(res.Boundaries)-1]
	assert.Equal(t, len(splitLines(sampleResume)), last.EndLine)
}

func TestClassifyDeterministic(t *testing.T) {
	e := newTestEngine(t)
	a := e.Classify(sampleResume)
	b := e.Classify(sampleResume)
	assert.Equal(t, a, b)
}

func TestClassifyDuplicateHeaderFirstWins(t *testing.T) {
	text := `Experience
Senior Engineer at Acme Corp
2019 - 2021

Experience
Junior Engineer at Initech
2016 - 2019
`
	e := newTestEngine(t)
	res := e.Classify(text)

	b := findBoundary(t, res, Experience)
	assert.Equal(t, 0, b.StartLine)
	assert.Contains(t, res.Span(Experience), "Acme Corp")

	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "duplicate") {
			found = true
		}
	}
	assert.True(t, found, "expected a duplicate-header warning, got %v", res.Warnings)
}

func TestClassifyFallbackSynthesis(t *testing.T) {
	// No recognizable headers at all: the fallback scan keys off job
	// titles with nearby dates and degree language.
	text := `Jane Doe

Software Engineer, Acme Corp, 2019 - 2022
Built internal tools.

Bachelor of Science, Example University
`
	e := newTestEngine(t)
	res := e.Classify(text)

	b := findBoundary(t, res, Experience)
	assert.Equal(t, "fallback", b.MatchedBy)
	assert.InDelta(t, 0.4, b.Confidence, 0.001)
	assert.Contains(t, res.Span(Experience), "Acme Corp")

	edu := findBoundary(t, res, Education)
	assert.Equal(t, "fallback", edu.MatchedBy)
}

func TestClassifyEmptyText(t *testing.T) {
	e := newTestEngine(t)
	res := e.Classify("")
	assert.Empty(t, res.Boundaries)
	assert.False(t, res.Usable())
}

func TestUsable(t *testing.T) {
	e := newTestEngine(t)
	assert.True(t, e.Classify(sampleResume).Usable())

	// A skills-only fragment has no contact or experience span.
	res := e.Classify("Skills\nGo, Python, SQL\n")
	assert.False(t, res.Usable())
}

func TestClassifyConfidenceIsMean(t *testing.T) {
	e := newTestEngine(t)
	res := e.Classify(sampleResume)
	require.NotEmpty(t, res.Boundaries)

	var sum float64
	for _, b := range res.Boundaries {
		sum += b.Confidence
	}
	assert.InDelta(t, sum/float64(len(res.Boundaries)), res.Confidence, 1e-9)
}

func findBoundary(t *testing.T, res Result, n Name) Boundary {
	t.Helper()
	for _, b := range res.Boundaries {
		if b.Section == n {
			return b
		}
	}
	t.Fatalf("section %s not found in %+v", n, res.Boundaries)
	return Boundary{}
}

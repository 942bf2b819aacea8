package sections

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
)

// Engine scores lines against a RuleSet. It holds no mutable state;
// one Engine is safe for concurrent use.
type Engine struct {
	rules  RuleSet
	logger *slog.Logger
}

func NewEngine(rules RuleSet, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{rules: rules, logger: logger}
}

// Thresholds for header acceptance and contextual-rule acceptance.
const (
	headerAcceptThreshold  = 0.6
	contextAcceptThreshold = 0.5
	keywordBoostPerHit     = 0.15
	keywordBoostCap        = 0.3
	minHeaderLineLen       = 3
)

// contextMatch marks boundaries found by contextual rules rather than a
// direct header pattern.
const contextMatch = "context"

// Classify splits text into lines, locates section headers, and returns
// the named spans with per-boundary and overall confidence.
func (e *Engine) Classify(text string) Result {
	lines := splitLines(text)
	res := Result{Spans: make(map[Name]string)}

	found := make(map[Name]*Boundary)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < minHeaderLineLen {
			continue
		}
		for _, sr := range e.rules.Sections {
			conf, matchedBy := e.scoreLine(lines, i, trimmed, sr)
			if conf <= headerAcceptThreshold {
				continue
			}
			if prev, dup := found[sr.Section]; dup {
				e.logger.Debug("sections.duplicate_header",
					"section", sr.Section, "line", i, "kept_line", prev.StartLine)
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("duplicate %q header at line %d ignored", sr.Section, i+1))
				continue
			}
			b := Boundary{
				Section:    sr.Section,
				StartLine:  i,
				Header:     trimmed,
				Confidence: conf,
				MatchedBy:  matchedBy,
			}
			found[sr.Section] = &b
			res.Boundaries = append(res.Boundaries, b)
			break // a line names at most one section
		}
	}

	if len(res.Boundaries) == 0 {
		res.Boundaries = fallbackBoundaries(lines, e.rules)
		if len(res.Boundaries) > 0 {
			res.Warnings = append(res.Warnings, "no section headers found; used keyword-density fallback")
		}
	}

	sortBoundaries(res.Boundaries)
	resolveEnds(res.Boundaries, len(lines))

	var sum float64
	for i := range res.Boundaries {
		b := &res.Boundaries[i]
		content := contentBetween(lines, b.StartLine+1, b.EndLine)
		if b.MatchedBy == fallbackMatch || b.MatchedBy == contextMatch {
			// the anchor line is content here, not a heading
			content = contentBetween(lines, b.StartLine, b.EndLine)
		}
		res.Spans[b.Section] = content
		sum += b.Confidence
	}
	if n := len(res.Boundaries); n > 0 {
		res.Confidence = sum / float64(n)
	}

	res.Warnings = append(res.Warnings, coverageWarnings(res)...)
	return res
}

// scoreLine returns the confidence that a line is the header of the
// given section, and the id of the signal that matched.
func (e *Engine) scoreLine(lines []string, idx int, line string, sr SectionRules) (float64, string) {
	conf := 0.0
	matchedBy := ""

	for pi, p := range sr.Headers {
		if p.MatchString(line) {
			conf = sr.Base
			matchedBy = fmt.Sprintf("header:%d", pi)
			break
		}
	}

	// Contextual rules only weigh in when no direct pattern matched,
	// and only when the line itself carries a signal (contains or
	// structure rule). Before/after rules add supporting weight but
	// cannot claim a line on their own, or every line near experience
	// content would outrank the real header.
	if conf == 0 && len(sr.Context) > 0 {
		var matched, total float64
		onLine := false
		for _, r := range sr.Context {
			total += r.Weight
			if e.ruleHits(lines, idx, line, r) {
				matched += r.Weight
				if r.Kind == RuleContains || r.Kind == RuleStructure {
					onLine = true
				}
			}
		}
		if onLine && total > 0 {
			ratio := matched / total
			if ratio > contextAcceptThreshold {
				conf = ratio
				matchedBy = contextMatch
			}
		}
	}

	if conf == 0 {
		return 0, ""
	}

	boost := 0.0
	low := strings.ToLower(line)
	for _, kw := range sr.Keywords {
		if strings.Contains(low, kw) {
			boost += keywordBoostPerHit
		}
	}
	if boost > keywordBoostCap {
		boost = keywordBoostCap
	}
	conf += boost
	if conf > 1.0 {
		conf = 1.0
	}
	return conf, matchedBy
}

func (e *Engine) ruleHits(lines []string, idx int, line string, r ContextRule) bool {
	window := e.rules.ContextWindow
	var targets []string
	switch r.Kind {
	case RuleContains, RuleStructure:
		targets = []string{line}
	case RuleBefore:
		for j := idx + 1; j < len(lines) && j <= idx+window; j++ {
			targets = append(targets, lines[j])
		}
	case RuleAfter:
		for j := idx - 1; j >= 0 && j >= idx-window; j-- {
			targets = append(targets, lines[j])
		}
	}
	for _, t := range targets {
		if r.Structure != "" {
			if checkStructure(t, r.Structure) {
				return true
			}
			continue
		}
		if r.Pattern != nil && r.Pattern.MatchString(t) {
			return true
		}
	}
	return false
}

func checkStructure(line string, s StructureCheck) bool {
	trimmed := strings.TrimSpace(line)
	switch s {
	case StructParagraph:
		return len(trimmed) > 50
	case StructBulletList:
		return startsWithBullet(trimmed)
	case StructShortCaps:
		if len(trimmed) == 0 || len(trimmed) > 30 {
			return false
		}
		hasLetter := false
		for _, r := range trimmed {
			if unicode.IsLetter(r) {
				hasLetter = true
				if !unicode.IsUpper(r) {
					return false
				}
			}
		}
		return hasLetter
	}
	return false
}

var bulletGlyphs = []string{"•", "-", "*", "·", "▪", "●", "◦", "‣", "–"}

func startsWithBullet(line string) bool {
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(line, g+" ") || line == g {
			return true
		}
	}
	return false
}

// splitLines normalizes endings and tabs but keeps empty lines so that
// boundary indices stay stable against the source text.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	return strings.Split(text, "\n")
}

func sortBoundaries(bs []Boundary) {
	for i := 1; i < len(bs); i++ {
		for j := i; j > 0 && bs[j].StartLine < bs[j-1].StartLine; j-- {
			bs[j], bs[j-1] = bs[j-1], bs[j]
		}
	}
}

// resolveEnds sets each boundary's end to the next boundary's start,
// and the last one to the end of the text.
func resolveEnds(bs []Boundary, totalLines int) {
	for i := range bs {
		if i+1 < len(bs) {
			bs[i].EndLine = bs[i+1].StartLine
		} else {
			bs[i].EndLine = totalLines
		}
	}
}

func contentBetween(lines []string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return ""
	}
	var out []string
	for _, l := range lines[start:end] {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, "\n")
}

func coverageWarnings(res Result) []string {
	var warns []string
	for _, n := range []Name{Contact, Experience, Education} {
		if len(strings.TrimSpace(res.Spans[n])) < 10 {
			warns = append(warns, fmt.Sprintf("%s section missing or too short", n))
		}
	}
	for _, b := range res.Boundaries {
		if b.Confidence < 0.7 {
			warns = append(warns, fmt.Sprintf("low confidence (%.2f) for %s section", b.Confidence, b.Section))
		}
		if len(strings.TrimSpace(res.Spans[b.Section])) < 20 {
			warns = append(warns, fmt.Sprintf("%s section content under 20 characters", b.Section))
		}
	}
	return warns
}

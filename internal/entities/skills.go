package entities

import (
	"regexp"
	"strings"
)

var (
	reSkillSep = regexp.MustCompile(`[,;•|/]|\s{3,}`)

	// technical-token shapes: "CI/CD", "C++", "Node.js", "scikit-learn"
	reTechToken = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+#.]*([./-][A-Za-z0-9+#.]+)*$`)
)

// ExtractSkills collects skills from the skills span, backfilled by
// known-skill mentions anywhere in the document. Results keep family
// priority order (languages before frameworks before infrastructure),
// are deduplicated case-insensitively, and are capped at 50.
func ExtractSkills(fullText, sectionText string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(strings.Trim(s, ".:"))
		if s == "" || len(s) > 40 {
			return
		}
		key := strings.ToLower(s)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	// explicit skill lists first
	for _, line := range splitTrimmed(sectionText) {
		if line == "" {
			continue
		}
		// drop "Languages:"-style prefixes
		if i := strings.Index(line, ":"); i > 0 && i < 30 {
			line = line[i+1:]
		}
		for _, tok := range reSkillSep.Split(line, -1) {
			tok = strings.TrimSpace(strings.Trim(tok, "•-* "))
			if tok == "" {
				continue
			}
			if isKnownSkill(tok) || (reTechToken.MatchString(tok) && len(strings.Fields(tok)) <= 3) {
				add(tok)
			}
		}
	}

	// then known skills mentioned anywhere, in family priority order
	low := strings.ToLower(fullText)
	for _, fam := range skillFamilies {
		for _, sk := range fam.Skills {
			if containsWord(low, sk) {
				add(canonicalSkill(sk))
			}
		}
	}

	out = reorderByFamily(out)
	if len(out) > maxSkills {
		out = out[:maxSkills]
	}
	return out
}

func isKnownSkill(tok string) bool {
	low := strings.ToLower(tok)
	for _, fam := range skillFamilies {
		for _, sk := range fam.Skills {
			if low == sk {
				return true
			}
		}
	}
	return false
}

// canonicalSkill restores display casing for skills matched against
// the lowercase tables.
func canonicalSkill(sk string) string {
	switch sk {
	case "aws", "gcp", "sql", "html", "css", "php", "nlp", "tdd", "pmp", "mba":
		return strings.ToUpper(sk)
	case "ci/cd":
		return "CI/CD"
	case "javascript":
		return "JavaScript"
	case "typescript":
		return "TypeScript"
	case "postgresql":
		return "PostgreSQL"
	case "mysql":
		return "MySQL"
	case "mongodb":
		return "MongoDB"
	case "graphql":
		return "GraphQL"
	case "grpc":
		return "gRPC"
	case "node.js":
		return "Node.js"
	case "next.js":
		return "Next.js"
	}
	return titleCaseWords(sk)
}

// reorderByFamily moves skills belonging to earlier families to the
// front, keeping relative order within each tier. Unrecognized skills
// keep their position after all known tiers.
func reorderByFamily(skills []string) []string {
	rank := func(s string) int {
		low := strings.ToLower(s)
		for i, fam := range skillFamilies {
			for _, sk := range fam.Skills {
				if low == sk {
					return i
				}
			}
		}
		return len(skillFamilies)
	}
	out := make([]string, 0, len(skills))
	for tier := 0; tier <= len(skillFamilies); tier++ {
		for _, s := range skills {
			if rank(s) == tier {
				out = append(out, s)
			}
		}
	}
	return out
}

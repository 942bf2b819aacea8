package sections

import "regexp"

// RuleKind distinguishes the four contextual rule types.
type RuleKind string

const (
	RuleContains  RuleKind = "contains"  // pattern within the line itself
	RuleBefore    RuleKind = "before"    // pattern within the following lines
	RuleAfter     RuleKind = "after"     // pattern within the preceding lines
	RuleStructure RuleKind = "structure" // shape heuristic
)

// StructureCheck names a shape heuristic for RuleStructure rules.
type StructureCheck string

const (
	StructParagraph  StructureCheck = "paragraph"   // line longer than 50 chars
	StructBulletList StructureCheck = "bullet-list" // starts with a bullet glyph
	StructShortCaps  StructureCheck = "short-caps"  // short all-caps line
)

// ContextRule is one weighted contextual signal for a section. A
// structure check on a Before/After rule applies to the surrounding
// window instead of the line itself.
type ContextRule struct {
	Kind      RuleKind
	Pattern   *regexp.Regexp // nil for structure checks
	Structure StructureCheck
	Weight    float64
}

// SectionRules is the full pattern/keyword configuration for one section.
type SectionRules struct {
	Section  Name
	Base     float64 // confidence contributed by a direct header match
	Headers  []*regexp.Regexp
	Context  []ContextRule
	Keywords []string
}

// RuleSet is an immutable, versioned pattern table. Passing it in
// explicitly (rather than reading module globals) leaves room for
// per-locale or per-tenant sets later.
type RuleSet struct {
	Version       string
	Sections      []SectionRules // declaration order decides match priority
	ContextWindow int            // lines scanned by before/after rules
}

func hdr(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)^\s*(\d+[.)]\s*)?(`+p+`)\s*:?\s*$`))
	}
	return out
}

func rx(p string) *regexp.Regexp { return regexp.MustCompile(`(?i)` + p) }

// DefaultRuleSet returns the built-in English pattern tables.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Version:       "2025-08",
		ContextWindow: 10,
		Sections: []SectionRules{
			{
				Section: Contact,
				Base:    0.8,
				Headers: hdr(`contact(\s+info(rmation)?)?`, `personal\s+(details|information)`),
				Context: []ContextRule{
					{Kind: RuleContains, Pattern: rx(`[a-z0-9._%+-]+@[a-z0-9.-]+`), Weight: 2},
					{Kind: RuleContains, Pattern: rx(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`), Weight: 2},
					{Kind: RuleBefore, Pattern: rx(`linkedin\.com|github\.com`), Weight: 1},
				},
				Keywords: []string{"email", "phone", "address"},
			},
			{
				Section: Summary,
				Base:    0.85,
				Headers: hdr(
					`(professional\s+|career\s+|executive\s+)?summary`,
					`profile`, `about(\s+me)?`, `summary\s+of\s+qualifications`,
				),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`\b(years?\s+of\s+experience|seasoned|results[-\s]driven|proven)\b`), Weight: 2},
					{Kind: RuleBefore, Structure: StructParagraph, Weight: 1},
				},
				Keywords: []string{"summary", "profile", "overview"},
			},
			{
				Section: Objective,
				Base:    0.85,
				Headers: hdr(`(career\s+)?objective(s)?`, `career\s+goal(s)?`),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`\b(seeking|looking\s+for|position\s+(as|in)|opportunity)\b`), Weight: 2},
					{Kind: RuleBefore, Structure: StructParagraph, Weight: 1},
				},
				Keywords: []string{"objective", "seeking", "goal"},
			},
			{
				Section: Experience,
				Base:    0.95,
				Headers: hdr(
					`(work|professional|employment|relevant)\s+experience`,
					`experience`, `experiance`, `expereince`, // common misspellings
					`work\s+history`, `employment(\s+history)?`, `career\s+history`,
					`professional\s+background`,
				),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`\b(19|20)\d{2}\s*[-–—]\s*((19|20)\d{2}|present|current)\b`), Weight: 2},
					{Kind: RuleBefore, Pattern: rx(`\b(engineer|manager|developer|analyst|director|consultant|coordinator)\b`), Weight: 2},
					{Kind: RuleBefore, Structure: StructBulletList, Weight: 1},
				},
				Keywords: []string{"experience", "employment", "work"},
			},
			{
				Section: Education,
				Base:    0.95,
				Headers: hdr(
					`education(al)?(\s+(background|history))?`,
					`academic\s+(background|history|qualifications)`,
					`qualifications`, `degrees`,
				),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`\b(university|college|institute|bachelor|master|ph\.?d|b\.?s\.?|m\.?s\.?|mba)\b`), Weight: 3},
					{Kind: RuleBefore, Pattern: rx(`\b(19|20)\d{2}\b`), Weight: 1},
				},
				Keywords: []string{"degree", "university", "college", "gpa"},
			},
			{
				Section: Skills,
				Base:    0.9,
				Headers: hdr(
					`(technical\s+|core\s+|key\s+)?skills(\s+(&|and)\s+\w+)?`,
					`technologies`, `competencies`, `areas\s+of\s+expertise`, `expertise`,
					`technical\s+proficienc(y|ies)`, `tools\s+(&|and)\s+technologies`,
				),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`,.*,`), Weight: 1},
					{Kind: RuleBefore, Pattern: rx(`\b(python|java(script)?|sql|aws|docker|react|excel)\b`), Weight: 2},
					{Kind: RuleBefore, Structure: StructBulletList, Weight: 1},
				},
				Keywords: []string{"skills", "proficient", "technologies"},
			},
			{
				Section: Projects,
				Base:    0.85,
				Headers: hdr(`(personal\s+|key\s+|selected\s+|academic\s+)?projects`, `portfolio`),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`\b(built|developed|created|designed|implemented)\b`), Weight: 2},
					{Kind: RuleBefore, Pattern: rx(`github\.com`), Weight: 1},
				},
				Keywords: []string{"project", "built", "developed"},
			},
			{
				Section: Certifications,
				Base:    0.9,
				Headers: hdr(`certification(s)?`, `certificates?`, `licenses?(\s+(&|and)\s+certifications?)?`, `credentials`),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`\b(certified|certification|aws|pmp|cisco|comptia|scrum)\b`), Weight: 2},
				},
				Keywords: []string{"certified", "certification", "license"},
			},
			{
				Section: Languages,
				Base:    0.85,
				Headers: hdr(`languages?`, `language\s+proficienc(y|ies)`),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`\b(english|spanish|french|german|mandarin|fluent|native|conversational)\b`), Weight: 3},
				},
				Keywords: []string{"fluent", "native", "bilingual"},
			},
			{
				Section: Volunteer,
				Base:    0.85,
				Headers: hdr(`volunteer(ing)?(\s+(experience|work))?`, `community\s+(service|involvement)`),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`\b(volunteer|nonprofit|charity|community)\b`), Weight: 2},
				},
				Keywords: []string{"volunteer", "community", "nonprofit"},
			},
			{
				Section: Publications,
				Base:    0.85,
				Headers: hdr(`publications?`, `papers`, `research(\s+publications)?`),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`\b(journal|conference|proceedings|published|doi)\b`), Weight: 2},
				},
				Keywords: []string{"published", "journal", "conference"},
			},
			{
				Section: Awards,
				Base:    0.85,
				Headers: hdr(`awards?(\s+(&|and)\s+honors?)?`, `honors?(\s+(&|and)\s+awards?)?`, `achievements?`, `recognition`),
				Context: []ContextRule{
					{Kind: RuleBefore, Pattern: rx(`\b(award|winner|recipient|honou?r|dean'?s\s+list)\b`), Weight: 2},
				},
				Keywords: []string{"award", "honor", "achievement"},
			},
			{
				Section: References,
				Base:    0.8,
				Headers: hdr(`references?(\s+available.*)?`),
				Context: []ContextRule{
					{Kind: RuleContains, Pattern: rx(`available\s+(up)?on\s+request`), Weight: 2},
				},
				Keywords: []string{"references", "request"},
			},
		},
	}
}

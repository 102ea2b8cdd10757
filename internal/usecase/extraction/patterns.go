package extraction

import "regexp"

// Pattern is one commitment-recognition rule. Arity is the number of
// capture groups the rule yields: 1 for (task), 2 for (owner, task).
type Pattern struct {
	Name  string
	Regex *regexp.Regexp
	Arity int
}

// MatchCandidate is one pattern match against one sentence.
type MatchCandidate struct {
	Pattern  string
	Sentence string
	Span     string
	Groups   []string
}

// DefaultPatterns returns the rule table in precedence order. Cue words are
// matched case-insensitively, name spans case-sensitively.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:  "modal",
			Regex: regexp.MustCompile(`\b(?i:` + modalCues + `)\s+(.+?)(?:\.|$)`),
			Arity: 1,
		},
		{
			Name:  "label",
			Regex: regexp.MustCompile(`\b(?i:` + labelCues + `):\s*(.+?)(?:\.|$)`),
			Arity: 1,
		},
		{
			Name: "assignment",
			Regex: regexp.MustCompile(`\b(?i:` + assignmentCues + `):\s*(` + nameSpan + `)\s+(?i:` +
				subjectModalCues + `)\s+(.+?)(?:\.|$)`),
			Arity: 2,
		},
		{
			Name:  "subject",
			Regex: regexp.MustCompile(`\b(` + nameSpan + `)\s+(?i:` + subjectModalCues + `)\s+(.+?)(?:\.|$)`),
			Arity: 2,
		},
	}
}

// Matcher applies an ordered pattern table to sentences.
type Matcher struct {
	patterns []Pattern
}

// NewMatcher builds a Matcher. A nil or empty table falls back to
// DefaultPatterns.
func NewMatcher(patterns []Pattern) *Matcher {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &Matcher{patterns: patterns}
}

// Match runs every pattern over sentence and keeps every non-overlapping
// match, in pattern order and then position order.
func (m *Matcher) Match(sentence string) []MatchCandidate {
	var out []MatchCandidate
	for _, p := range m.patterns {
		for _, sub := range p.Regex.FindAllStringSubmatch(sentence, -1) {
			groups := make([]string, 0, p.Arity)
			for i := 1; i < len(sub) && len(groups) < p.Arity; i++ {
				groups = append(groups, sub[i])
			}
			out = append(out, MatchCandidate{
				Pattern:  p.Name,
				Sentence: sentence,
				Span:     sub[0],
				Groups:   groups,
			})
		}
	}
	return out
}

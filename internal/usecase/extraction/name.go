package extraction

import (
	"regexp"
	"strings"
)

// nameSpan is the capitalized-name shape shared by the pattern table, the
// owner fallback regexes and LooksLikeName. Keep them on this one fragment.
const nameSpan = `[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`

// modalCues and labelCues are the cue vocabularies. Order matters inside an
// alternation only for readability; RE2 picks the leftmost match.
const (
	modalCues        = `will|should|must|need to|going to|plan to`
	subjectModalCues = `will|should|must|need to|going to`
	labelCues        = `action|task|todo|follow up|follow-up`
	assignmentCues   = `assign|assigned to|owner|responsible`
)

var namePattern = regexp.MustCompile(`^` + nameSpan + `$`)

// reservedTokens are words that look like names but label meeting structure.
var reservedTokens = map[string]struct{}{
	"Action":  {},
	"Task":    {},
	"Todo":    {},
	"Follow":  {},
	"Up":      {},
	"Meeting": {},
	"Project": {},
}

// subjectWords are title-cased at sentence start but never name a person.
var subjectWords = map[string]struct{}{
	"We": {}, "You": {}, "They": {}, "He": {}, "She": {}, "It": {},
	"This": {}, "That": {}, "These": {}, "Those": {},
	"Everyone": {}, "Someone": {}, "Somebody": {}, "Everybody": {},
	"Nobody": {}, "Anyone": {}, "Let": {}, "The": {},
	"Our": {}, "My": {}, "Your": {}, "Their": {}, "Please": {},
}

// LooksLikeName reports whether candidate is plausibly a person's name:
// one or more title-case ASCII words, none of them reserved.
func LooksLikeName(candidate string) bool {
	if len(candidate) < 2 {
		return false
	}
	if !namePattern.MatchString(candidate) {
		return false
	}
	for _, w := range strings.Fields(candidate) {
		if _, ok := reservedTokens[w]; ok {
			return false
		}
		if _, ok := subjectWords[w]; ok {
			return false
		}
	}
	return true
}

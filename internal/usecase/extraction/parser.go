package extraction

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

var (
	leadingModal = regexp.MustCompile(`^(?i:` + modalCues + `)\s+`)
	leadingLabel = regexp.MustCompile(`^(?i:` + labelCues + `):\s*`)
)

// ownerPatterns are scanned in order when the detector proposes nobody.
var ownerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(` + nameSpan + `)\s+(?i:` + subjectModalCues + `)`),
	regexp.MustCompile(`\b(?i:` + assignmentCues + `):\s*(` + nameSpan + `)`),
}

// Parser resolves an owner and a task for each match candidate.
type Parser struct {
	detector PersonDetector
}

// NewParser creates a Parser. A nil detector means no NLP proposals, so
// owners come only from captured groups and the owner regexes.
func NewParser(detector PersonDetector) *Parser {
	return &Parser{detector: detector}
}

// Parse turns a candidate into an ActionItem. The bool is false only when
// neither a task nor the source sentence has any text.
func (p *Parser) Parse(c MatchCandidate) (entities.ActionItem, bool) {
	task := leadingModal.ReplaceAllString(c.Sentence, "")
	task = leadingLabel.ReplaceAllString(task, "")
	task = strings.TrimSpace(task)

	switch len(c.Groups) {
	case 1:
		task = c.Groups[0]
	case 2:
		if LooksLikeName(c.Groups[0]) {
			return entities.ActionItem{Owner: c.Groups[0], Task: c.Groups[1]}, true
		}
		task = c.Groups[1]
	}

	if p.detector != nil {
		if people := p.detector.DetectPeople(c.Sentence); len(people) > 0 {
			return p.attribute(people[0], task, c.Sentence)
		}
	}

	for _, re := range ownerPatterns {
		m := re.FindStringSubmatch(c.Sentence)
		if m == nil || m[1] == "" {
			continue
		}
		if LooksLikeName(m[1]) {
			return p.attribute(m[1], task, c.Sentence)
		}
	}

	return withFallback(entities.Unassigned, task, c.Sentence)
}

func (p *Parser) attribute(owner, task, sentence string) (entities.ActionItem, bool) {
	task = removeName(task, owner)
	task = strings.TrimSpace(leadingModal.ReplaceAllString(task, ""))
	return withFallback(owner, task, sentence)
}

// withFallback keeps the whole sentence when the task came out empty, even
// though that puts the owner's name back into the task text.
func withFallback(owner, task, sentence string) (entities.ActionItem, bool) {
	if task == "" {
		task = sentence
	}
	if task == "" {
		return entities.ActionItem{}, false
	}
	return entities.ActionItem{Owner: owner, Task: task}, true
}

func removeName(task, name string) string {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(name))
	if err != nil {
		return task
	}
	return strings.TrimSpace(re.ReplaceAllString(task, ""))
}

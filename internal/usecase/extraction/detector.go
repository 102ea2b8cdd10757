package extraction

import (
	"bufio"
	_ "embed"
	"regexp"
	"strings"
	"unicode"
)

// PersonDetector proposes person names found in a sentence, best first.
// Implementations must not panic and may return nil.
type PersonDetector interface {
	DetectPeople(sentence string) []string
}

//go:embed names.txt
var namesLexicon string

var (
	wordPattern      = regexp.MustCompile(`[A-Za-z]+`)
	titleCasePattern = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

var honorifics = map[string]struct{}{
	"Mr": {}, "Mrs": {}, "Ms": {}, "Dr": {}, "Prof": {},
}

// LexiconDetector finds people by matching known given names and
// honorific-introduced spans. It is deterministic and has no I/O.
type LexiconDetector struct {
	names map[string]struct{}
}

// NewLexiconDetector loads the embedded given-name lexicon.
func NewLexiconDetector() *LexiconDetector {
	return NewLexiconDetectorWithNames(parseLexicon(namesLexicon))
}

// NewLexiconDetectorWithNames builds a detector over an explicit name list.
// Names are compared case-insensitively.
func NewLexiconDetectorWithNames(names []string) *LexiconDetector {
	d := &LexiconDetector{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			d.names[n] = struct{}{}
		}
	}
	return d
}

func parseLexicon(raw string) []string {
	var names []string
	sc := bufio.NewScanner(strings.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names
}

// DetectPeople returns name runs in sentence order. A run starts at a
// lexicon name written with an uppercase initial ("John", "JOHN") and
// absorbs directly following title-case words ("John Smith"). An honorific
// followed by title-case words also yields a run, without the honorific.
func (d *LexiconDetector) DetectPeople(sentence string) []string {
	locs := wordPattern.FindAllStringIndex(sentence, -1)
	var people []string
	seen := make(map[string]struct{})

	for i := 0; i < len(locs); i++ {
		word := sentence[locs[i][0]:locs[i][1]]
		start := -1

		if _, ok := honorifics[word]; ok {
			if i+1 < len(locs) && adjacent(sentence, locs[i], locs[i+1]) && isSurname(sentence[locs[i+1][0]:locs[i+1][1]]) {
				i++
				start = i
			}
		} else if unicode.IsUpper(rune(word[0])) {
			if _, ok := d.names[strings.ToLower(word)]; ok {
				start = i
			}
		}
		if start < 0 {
			continue
		}

		end := start
		for end+1 < len(locs) && adjacent(sentence, locs[end], locs[end+1]) &&
			isSurname(sentence[locs[end+1][0]:locs[end+1][1]]) {
			end++
		}

		name := sentence[locs[start][0]:locs[end][1]]
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			people = append(people, name)
		}
		i = end
	}
	return people
}

// adjacent reports whether only whitespace separates two word locations.
func adjacent(s string, a, b []int) bool {
	gap := s[a[1]:b[0]]
	return gap != "" && strings.TrimSpace(gap) == ""
}

func isSurname(w string) bool {
	if !titleCasePattern.MatchString(w) {
		return false
	}
	if _, ok := reservedTokens[w]; ok {
		return false
	}
	_, ok := subjectWords[w]
	return !ok
}

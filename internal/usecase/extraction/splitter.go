package extraction

import (
	"regexp"
	"strings"
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// SplitSentences breaks text on runs of '.', '!' and '?'. Fragments are
// trimmed and empty ones dropped. Abbreviations such as "Dr." end a sentence.
func SplitSentences(text string) []string {
	parts := sentenceBreak.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sentences = append(sentences, p)
	}
	return sentences
}

// Package extraction finds action items in meeting transcripts.
//
// The pipeline is split into sentences, matched against an ordered
// pattern table, resolved into (owner, task) pairs, deduplicated, and
// finally cleaned. It performs no I/O beyond what the injected
// PersonDetector does and never fails: unusable input yields no items.
package extraction

import (
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

// Extractor runs the extraction pipeline. It holds no per-call state and is
// safe for concurrent use when its PersonDetector is.
type Extractor struct {
	matcher *Matcher
	parser  *Parser
	logger  *zap.Logger
}

// NewExtractor wires the default pattern table with detector. A nil
// detector defaults to the embedded-lexicon detector.
func NewExtractor(detector PersonDetector, logger *zap.Logger) *Extractor {
	if detector == nil {
		detector = NewLexiconDetector()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		matcher: NewMatcher(nil),
		parser:  NewParser(detector),
		logger:  logger,
	}
}

// ExtractActions returns the cleaned, deduplicated action items in text.
// Items whose task is nothing but markers are dropped after cleaning.
func (e *Extractor) ExtractActions(text string) []entities.ActionItem {
	raw := e.ExtractRaw(text)
	items := raw[:0]
	for _, it := range raw {
		task := CleanTask(it.Task)
		if task == "" {
			e.logger.Warn("extraction.empty_task",
				zap.String("owner", it.Owner),
				zap.String("raw_task", it.Task),
			)
			continue
		}
		items = append(items, entities.ActionItem{Owner: CleanOwner(it.Owner), Task: task})
	}
	return items
}

// ExtractRaw runs the pipeline without the final cleaning pass, so items
// carry the owner and task text exactly as parsed.
func (e *Extractor) ExtractRaw(text string) []entities.ActionItem {
	sentences := SplitSentences(text)

	var candidates []MatchCandidate
	for _, s := range sentences {
		candidates = append(candidates, e.matcher.Match(s)...)
	}

	items := make([]entities.ActionItem, 0, len(candidates))
	for _, c := range candidates {
		item, ok := e.parser.Parse(c)
		if !ok {
			e.logger.Warn("extraction.empty_task",
				zap.String("pattern", c.Pattern),
				zap.String("sentence", c.Sentence),
			)
			continue
		}
		items = append(items, item)
	}

	unique := Dedupe(items)
	e.logger.Debug("extraction.completed",
		zap.Int("sentences", len(sentences)),
		zap.Int("candidates", len(candidates)),
		zap.Int("actions", len(unique)),
	)
	return unique
}

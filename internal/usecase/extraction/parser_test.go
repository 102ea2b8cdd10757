package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

type stubDetector []string

func (s stubDetector) DetectPeople(string) []string { return s }

func TestParser_CapturedOwner(t *testing.T) {
	p := NewParser(stubDetector{"Sarah"})

	item, ok := p.Parse(MatchCandidate{
		Pattern:  "subject",
		Sentence: "John will send the report",
		Groups:   []string{"John", "send the report"},
	})
	assert.True(t, ok)
	assert.Equal(t, entities.ActionItem{Owner: "John", Task: "send the report"}, item)
}

func TestParser_RejectedCaptureFallsThrough(t *testing.T) {
	p := NewParser(nil)

	item, ok := p.Parse(MatchCandidate{
		Pattern:  "subject",
		Sentence: "Action Items will be reviewed",
		Groups:   []string{"Action Items", "be reviewed"},
	})
	assert.True(t, ok)
	assert.Equal(t, entities.ActionItem{Owner: entities.Unassigned, Task: "be reviewed"}, item)
}

func TestParser_DetectorOwnerIsRemovedFromTask(t *testing.T) {
	p := NewParser(stubDetector{"Sarah", "John"})

	item, ok := p.Parse(MatchCandidate{
		Pattern:  "modal",
		Sentence: "we will ask Sarah for the numbers",
		Groups:   []string{"ask Sarah for the numbers"},
	})
	assert.True(t, ok)
	assert.Equal(t, "Sarah", item.Owner)
	assert.Equal(t, "ask  for the numbers", item.Task)
}

func TestParser_OwnerRegexFallback(t *testing.T) {
	p := NewParser(nil)

	item, ok := p.Parse(MatchCandidate{
		Pattern:  "modal",
		Sentence: "Mary should review it",
		Groups:   []string{"review it"},
	})
	assert.True(t, ok)
	assert.Equal(t, entities.ActionItem{Owner: "Mary", Task: "review it"}, item)

	item, ok = p.Parse(MatchCandidate{
		Pattern:  "label",
		Sentence: "Responsible: Priya",
		Groups:   []string{"Priya"},
	})
	assert.True(t, ok)
	// task equals the owner, so the whole sentence is kept
	assert.Equal(t, entities.ActionItem{Owner: "Priya", Task: "Responsible: Priya"}, item)
}

func TestParser_LabelStrippedFromSentence(t *testing.T) {
	p := NewParser(nil)

	item, ok := p.Parse(MatchCandidate{
		Pattern:  "other",
		Sentence: "Task: book the room",
	})
	assert.True(t, ok)
	assert.Equal(t, entities.ActionItem{Owner: entities.Unassigned, Task: "book the room"}, item)
}

func TestParser_EmptyTaskUsesSentence(t *testing.T) {
	p := NewParser(nil)

	item, ok := p.Parse(MatchCandidate{
		Pattern:  "modal",
		Sentence: "John will",
		Groups:   []string{""},
	})
	assert.True(t, ok)
	assert.Equal(t, entities.ActionItem{Owner: "John", Task: "John will"}, item)
}

func TestParser_NothingToReport(t *testing.T) {
	p := NewParser(nil)

	_, ok := p.Parse(MatchCandidate{Pattern: "modal", Groups: []string{""}})
	assert.False(t, ok)
}

func TestCleanOwner(t *testing.T) {
	assert.Equal(t, "John", CleanOwner("  John "))
	assert.Equal(t, entities.Unassigned, CleanOwner(""))
	assert.Equal(t, entities.Unassigned, CleanOwner(" \t"))
}

func TestCleanTask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"send the report", "send the report"},
		{"  send   the\treport  ", "send the report"},
		{": send it", "send it"},
		{"- send it", "send it"},
		{": - send it", "send it"},
		{"-- send it", "send it"},
		{"--x", "x"},
		{"::x", "x"},
		{"review pre-reads - then sign off", "review pre-reads - then sign off"},
		{"", ""},
		{" : ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := CleanTask(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CleanTask(got))
		})
	}
}

func TestDedupe(t *testing.T) {
	items := []entities.ActionItem{
		{Owner: "JOHN", Task: "Send the Report"},
		{Owner: "Mary", Task: "review"},
		{Owner: "John", Task: "send the report"},
		{Owner: "Mary", Task: "Review"},
		{Owner: "Mary", Task: "review the budget"},
	}

	got := Dedupe(items)
	assert.Equal(t, []entities.ActionItem{
		{Owner: "JOHN", Task: "Send the Report"},
		{Owner: "Mary", Task: "review"},
		{Owner: "Mary", Task: "review the budget"},
	}, got)

	assert.Empty(t, Dedupe(nil))
}

package extraction

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-actions/internal/infrastructure/cache"
)

func TestLexiconDetector(t *testing.T) {
	d := NewLexiconDetectorWithNames([]string{"John", " mary ", ""})

	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{"single", "John will send the report", []string{"John"}},
		{"surname absorbed", "John Smith and Mary Jones will meet", []string{"John Smith", "Mary Jones"}},
		{"upper case", "JOHN will Send the Report", []string{"JOHN"}},
		{"lower case ignored", "john will send it", nil},
		{"punctuation stops run", "Assigned to: John Smith: he will finalize", []string{"John Smith"}},
		{"honorific", "ask Dr Patel to review", []string{"Patel"}},
		{"honorific without name", "Dr will see", nil},
		{"duplicates", "John told John", []string{"John"}},
		{"subject word not absorbed", "John We", []string{"John"}},
		{"unknown names", "Zebulon will call", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.DetectPeople(tt.sentence))
		})
	}
}

func TestLexiconDetector_EmbeddedNames(t *testing.T) {
	d := NewLexiconDetector()

	assert.Equal(t, []string{"Sarah"}, d.DetectPeople("Sarah should book the venue"))
	assert.Empty(t, d.DetectPeople("Will should book the venue"))
	assert.Empty(t, d.DetectPeople("We need to book the venue"))
}

type fakeNameSource struct {
	names []string
	err   error
	calls atomic.Int32
}

func (f *fakeNameSource) ExtractPersonNames(context.Context, string) ([]string, error) {
	f.calls.Add(1)
	return f.names, f.err
}

func TestRemoteDetector_FiltersUnmentionedNames(t *testing.T) {
	src := &fakeNameSource{names: []string{"Priya Raman", "Ghost", " "}}
	d := NewRemoteDetector(src, nil, nil, time.Second, time.Minute, nil)

	assert.Equal(t, []string{"Priya Raman"}, d.DetectPeople("Priya Raman will own the rollout"))
}

func TestRemoteDetector_CachesResults(t *testing.T) {
	store := cache.NewMemoryStore()
	defer store.Close()

	src := &fakeNameSource{names: []string{"Priya"}}
	d := NewRemoteDetector(src, nil, store, time.Second, time.Minute, nil)

	first := d.DetectPeople("Priya will own the rollout")
	second := d.DetectPeople("Priya will own the rollout")

	assert.Equal(t, []string{"Priya"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestRemoteDetector_FallsBackOnError(t *testing.T) {
	src := &fakeNameSource{err: errors.New("rate limited")}
	d := NewRemoteDetector(src, NewLexiconDetectorWithNames([]string{"john"}), nil, time.Second, time.Minute, nil)

	assert.Equal(t, []string{"John"}, d.DetectPeople("John will send the report"))
}

func TestRemoteDetector_InExtractor(t *testing.T) {
	src := &fakeNameSource{names: []string{"Priya"}}
	e := NewExtractor(NewRemoteDetector(src, nil, nil, time.Second, 0, nil), nil)

	got := e.ExtractActions("we will ask Priya about the budget.")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Priya", got[0].Owner)
		assert.Equal(t, "ask about the budget", got[0].Task)
	}
}

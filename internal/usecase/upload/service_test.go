package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	ucerrors "github.com/johnquangdev/meeting-actions/internal/usecase/errors"
)

type fakeExtractor struct {
	got string
}

func (f *fakeExtractor) ExtractActions(text string) []entities.ActionItem {
	f.got = text
	return []entities.ActionItem{{Owner: "John", Task: "send the report"}}
}

type fakeTranscriber struct {
	text string
	err  error
	read []byte
}

func (f *fakeTranscriber) Transcribe(_ context.Context, audio io.ReadSeeker) (string, error) {
	b, _ := io.ReadAll(audio)
	f.read = b
	return f.text, f.err
}

type nopCloser struct{ io.ReadSeeker }

func (nopCloser) Close() error { return nil }

type fakeStager struct {
	mu        sync.Mutex
	objects   map[string][]byte
	removed   []string
	putErr    error
	removeErr error
}

func newFakeStager() *fakeStager {
	return &fakeStager{objects: map[string][]byte{}}
}

func (f *fakeStager) Put(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = b
	return nil
}

func (f *fakeStager) Open(_ context.Context, name string) (io.ReadSeekCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.objects[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return nopCloser{bytes.NewReader(b)}, nil
}

func (f *fakeStager) Remove(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, name)
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.objects, name)
	return nil
}

func (f *fakeStager) ListFiles(_ context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for k := range f.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out, nil
}

func textFile(name, body string) File {
	return File{
		Name:        name,
		ContentType: "text/plain",
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        Kind
	}{
		{"notes.txt", "text/plain", KindText},
		{"notes.txt", "text/plain; charset=utf-8", KindText},
		{"notes", "application/octet-stream", KindText},
		{"notes.txt", "", KindText},
		{"call.mp3", "audio/mpeg", KindAudio},
		{"CALL.WAV", "application/octet-stream", KindAudio},
		{"call.m4a", "", KindAudio},
		{"deck.pdf", "application/pdf", KindRejected},
		{"image.png", "image/png", KindRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name, tt.contentType))
		})
	}
}

func TestProcess_TextFileIsStagedAndRemoved(t *testing.T) {
	ext := &fakeExtractor{}
	stager := newFakeStager()
	svc := NewService(ext, nil, stager, nil)

	res, err := svc.Process(context.Background(), textFile("notes.txt", "John will send the report."))
	require.NoError(t, err)

	assert.Equal(t, KindText, res.Kind)
	assert.Equal(t, "John will send the report.", res.Transcript)
	assert.Equal(t, "John will send the report.", ext.got)
	require.Len(t, res.Actions, 1)

	require.Len(t, stager.removed, 1)
	assert.True(t, strings.HasPrefix(stager.removed[0], StagePrefix))
	assert.True(t, strings.HasSuffix(stager.removed[0], "-notes.txt"))
	assert.Empty(t, stager.objects)
}

func TestProcess_WithoutStagerReadsBody(t *testing.T) {
	ext := &fakeExtractor{}
	svc := NewService(ext, nil, nil, nil)

	res, err := svc.Process(context.Background(), textFile("notes.txt", "Mary should review the budget."))
	require.NoError(t, err)
	assert.Equal(t, "Mary should review the budget.", res.Transcript)
}

func TestProcess_RejectsUnsupportedType(t *testing.T) {
	stager := newFakeStager()
	svc := NewService(&fakeExtractor{}, nil, stager, nil)

	_, err := svc.Process(context.Background(), File{
		Name:        "deck.pdf",
		ContentType: "application/pdf",
		Body:        strings.NewReader("%PDF"),
	})
	assert.ErrorIs(t, err, ucerrors.ErrUnsupportedFileType)
	assert.Empty(t, stager.removed)
}

func TestProcess_NoFile(t *testing.T) {
	svc := NewService(&fakeExtractor{}, nil, nil, nil)
	_, err := svc.Process(context.Background(), File{Name: "notes.txt"})
	assert.ErrorIs(t, err, ucerrors.ErrNoFile)
}

func TestProcess_AudioWithoutTranscriber(t *testing.T) {
	svc := NewService(&fakeExtractor{}, nil, newFakeStager(), nil)
	assert.False(t, svc.TranscriptionAvailable())

	_, err := svc.Process(context.Background(), File{
		Name:        "call.mp3",
		ContentType: "audio/mpeg",
		Body:        strings.NewReader("ID3"),
	})
	assert.ErrorIs(t, err, ucerrors.ErrTranscriberUnavailable)
}

func TestProcess_AudioIsTranscribed(t *testing.T) {
	ext := &fakeExtractor{}
	tr := &fakeTranscriber{text: "John will send the report."}
	stager := newFakeStager()
	svc := NewService(ext, tr, stager, nil)

	res, err := svc.Process(context.Background(), File{
		Name:        "call.mp3",
		ContentType: "audio/mpeg",
		Size:        5,
		Body:        strings.NewReader("audio"),
	})
	require.NoError(t, err)
	assert.Equal(t, KindAudio, res.Kind)
	assert.Equal(t, []byte("audio"), tr.read)
	assert.Equal(t, "John will send the report.", ext.got)
	assert.Len(t, stager.removed, 1)
}

func TestProcess_TranscriptionFailureStillCleansUp(t *testing.T) {
	tr := &fakeTranscriber{err: errors.New("upstream down")}
	stager := newFakeStager()
	svc := NewService(&fakeExtractor{}, tr, stager, nil)

	_, err := svc.Process(context.Background(), File{
		Name: "call.wav",
		Body: strings.NewReader("RIFF"),
	})
	assert.ErrorIs(t, err, ucerrors.ErrTranscriptionFailed)
	assert.Len(t, stager.removed, 1)
	assert.Empty(t, stager.objects)
}

func TestProcess_EmptyTranscript(t *testing.T) {
	stager := newFakeStager()
	svc := NewService(&fakeExtractor{}, nil, stager, nil)

	_, err := svc.Process(context.Background(), textFile("notes.txt", "  \n\t "))
	assert.ErrorIs(t, err, ucerrors.ErrEmptyTranscript)
	assert.Len(t, stager.removed, 1)
}

func TestProcess_StagingFailure(t *testing.T) {
	stager := newFakeStager()
	stager.putErr = errors.New("bucket unavailable")
	svc := NewService(&fakeExtractor{}, nil, stager, nil)

	_, err := svc.Process(context.Background(), textFile("notes.txt", "John will send it."))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stage upload")
}

func TestProcess_RemoveFailureDoesNotFailRequest(t *testing.T) {
	stager := newFakeStager()
	stager.removeErr = errors.New("transient")
	svc := NewService(&fakeExtractor{}, nil, stager, nil)

	res, err := svc.Process(context.Background(), textFile("notes.txt", "John will send it."))
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestSweepStale(t *testing.T) {
	stager := newFakeStager()
	stager.objects[StagePrefix+"a-notes.txt"] = []byte("x")
	stager.objects[StagePrefix+"b-call.mp3"] = []byte("y")
	stager.objects["other/keep.txt"] = []byte("z")
	svc := NewService(&fakeExtractor{}, nil, stager, nil)

	n, err := svc.SweepStale(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, stager.objects, "other/keep.txt")
	assert.Len(t, stager.objects, 1)

	n, err = NewService(&fakeExtractor{}, nil, nil, nil).SweepStale(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

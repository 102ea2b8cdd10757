package upload

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	ucerrors "github.com/johnquangdev/meeting-actions/internal/usecase/errors"
)

// StagePrefix is the object-storage prefix for uploads awaiting processing
const StagePrefix = "uploads/"

// Kind classifies an uploaded file
type Kind string

const (
	KindText     Kind = "text"
	KindAudio    Kind = "audio"
	KindRejected Kind = "rejected"
)

var allowedMimes = map[string]struct{}{
	"text/plain":               {},
	"text/txt":                 {},
	"audio/mpeg":               {},
	"audio/mp3":                {},
	"audio/wav":                {},
	"audio/x-wav":              {},
	"audio/flac":               {},
	"audio/ogg":                {},
	"audio/m4a":                {},
	"application/octet-stream": {},
}

var audioExts = map[string]struct{}{
	".mp3": {}, ".wav": {}, ".flac": {}, ".ogg": {}, ".m4a": {},
}

// Transcriber converts audio to text
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.ReadSeeker) (string, error)
}

// Stager holds uploads in object storage while they are processed
type Stager interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	Open(ctx context.Context, objectName string) (io.ReadSeekCloser, error)
	Remove(ctx context.Context, objectName string) error
	ListFiles(ctx context.Context, prefix string) ([]string, error)
}

// Extractor finds action items in transcript text
type Extractor interface {
	ExtractActions(text string) []entities.ActionItem
}

// File is an uploaded file
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

// Result is the outcome of processing one upload
type Result struct {
	Kind       Kind
	Transcript string
	Actions    []entities.ActionItem
}

// Service processes uploaded transcripts
type Service struct {
	extractor   Extractor
	transcriber Transcriber
	stager      Stager
	logger      *zap.Logger
}

// NewService creates an upload service. transcriber and stager may be nil:
// without a transcriber audio is refused, without a stager files are read
// straight from the request.
func NewService(extractor Extractor, transcriber Transcriber, stager Stager, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		extractor:   extractor,
		transcriber: transcriber,
		stager:      stager,
		logger:      logger,
	}
}

// Classify decides how a file is handled from its name and MIME type.
// Audio is recognised by extension only; any other accepted file is text.
func Classify(name, contentType string) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := audioExts[ext]; ok {
		return KindAudio
	}
	mime := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	if _, ok := allowedMimes[mime]; ok || ext == ".txt" {
		return KindText
	}
	return KindRejected
}

// TranscriptionAvailable reports whether audio uploads can be processed
func (s *Service) TranscriptionAvailable() bool {
	return s.transcriber != nil
}

// Process turns an uploaded file into a transcript and its action items.
// The staged copy is always removed, whatever the outcome.
func (s *Service) Process(ctx context.Context, f File) (*Result, error) {
	if f.Body == nil {
		return nil, ucerrors.ErrNoFile
	}

	kind := Classify(f.Name, f.ContentType)
	switch kind {
	case KindRejected:
		return nil, ucerrors.ErrUnsupportedFileType
	case KindAudio:
		if s.transcriber == nil {
			return nil, ucerrors.ErrTranscriberUnavailable
		}
	}

	body, cleanup, err := s.stage(ctx, f)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	var text string
	if kind == KindAudio {
		text, err = s.transcriber.Transcribe(ctx, body)
		if err != nil {
			s.logger.Error("upload.transcription_failed", zap.String("file", f.Name), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ucerrors.ErrTranscriptionFailed, err)
		}
	} else {
		raw, err := io.ReadAll(body)
		if err != nil {
			return nil, fmt.Errorf("failed to read upload: %w", err)
		}
		text = strings.ToValidUTF8(string(raw), "�")
	}

	if strings.TrimSpace(text) == "" {
		return nil, ucerrors.ErrEmptyTranscript
	}

	actions := s.extractor.ExtractActions(text)
	s.logger.Info("upload.processed",
		zap.String("file", f.Name),
		zap.String("kind", string(kind)),
		zap.Int("actions", len(actions)),
	)

	return &Result{Kind: kind, Transcript: text, Actions: actions}, nil
}

// stage copies the upload into object storage and reopens it from there.
// The returned cleanup closes the reader and deletes the staged object.
func (s *Service) stage(ctx context.Context, f File) (io.ReadSeeker, func(), error) {
	if s.stager == nil {
		return f.Body, func() {}, nil
	}

	objectName := StagePrefix + uuid.NewString() + "-" + filepath.Base(f.Name)
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.stager.Put(ctx, objectName, f.Body, f.Size, contentType); err != nil {
		return nil, nil, fmt.Errorf("failed to stage upload: %w", err)
	}

	remove := func() {
		// The request context may already be cancelled; cleanup must still run.
		if err := s.stager.Remove(context.WithoutCancel(ctx), objectName); err != nil {
			s.logger.Warn("upload.cleanup_failed", zap.String("object", objectName), zap.Error(err))
		}
	}

	rc, err := s.stager.Open(ctx, objectName)
	if err != nil {
		remove()
		return nil, nil, fmt.Errorf("failed to open staged upload: %w", err)
	}

	return rc, func() {
		rc.Close()
		remove()
	}, nil
}

// SweepStale removes staged uploads left behind by an earlier crash
func (s *Service) SweepStale(ctx context.Context) (int, error) {
	if s.stager == nil {
		return 0, nil
	}
	names, err := s.stager.ListFiles(ctx, StagePrefix)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, n := range names {
		if err := s.stager.Remove(ctx, n); err != nil {
			s.logger.Warn("upload.sweep_failed", zap.String("object", n), zap.Error(err))
			continue
		}
		removed++
	}
	return removed, nil
}

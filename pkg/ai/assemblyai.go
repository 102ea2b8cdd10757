package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/pkg/config"
)

// ErrTranscriptFailed is returned when AssemblyAI finishes with status "error"
var ErrTranscriptFailed = errors.New("transcription failed")

// AssemblyAIClient transcribes audio with the official AssemblyAI SDK
type AssemblyAIClient struct {
	client   *aai.Client
	language string
	maxWait  time.Duration
	logger   *zap.Logger
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg carries no key, falls back to ASSEMBLYAI_API_KEY; with neither it
// returns nil, meaning audio uploads are not supported.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig, logger *zap.Logger) *AssemblyAIClient {
	var apiKey, language string
	maxWait := 5 * time.Minute
	if cfg != nil {
		apiKey = cfg.APIKey
		language = cfg.LanguageCode
		if cfg.MaxWait > 0 {
			maxWait = cfg.MaxWait
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	if apiKey == "" {
		return nil
	}
	if language == "" {
		language = "en"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssemblyAIClient{
		client:   aai.NewClient(apiKey),
		language: language,
		maxWait:  maxWait,
		logger:   logger,
	}
}

// Transcribe uploads audio and waits for the finished transcript text.
// The upload is retried with exponential backoff; audio is rewound before
// each attempt.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.ReadSeeker) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.maxWait)
	defer cancel()

	var uploadURL string
	uploadFn := func() error {
		if _, err := audio.Seek(0, io.SeekStart); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to rewind audio: %w", err))
		}
		u, err := c.client.Upload(ctx, audio)
		if err != nil {
			c.logger.Warn("assemblyai.upload_retry", zap.Error(err))
			return err
		}
		uploadURL = u
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(uploadFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", fmt.Errorf("failed to upload audio: %w", err)
	}

	c.logger.Info("assemblyai.uploaded", zap.String("language", c.language))

	params := &aai.TranscriptOptionalParams{
		LanguageCode: aai.TranscriptLanguageCode(c.language),
		Punctuate:    aai.Bool(true),
		FormatText:   aai.Bool(true),
	}

	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("transcription timed out, try a shorter audio file: %w", err)
		}
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("%w: %s", ErrTranscriptFailed, msg)
	}

	var text string
	if transcript.Text != nil {
		text = *transcript.Text
	}

	id := ""
	if transcript.ID != nil {
		id = *transcript.ID
	}
	c.logger.Info("assemblyai.completed",
		zap.String("transcript_id", id),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

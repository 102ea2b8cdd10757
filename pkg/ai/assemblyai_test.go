package ai

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-actions/pkg/config"
)

type brokenSeeker struct{}

func (brokenSeeker) Read([]byte) (int, error)       { return 0, io.EOF }
func (brokenSeeker) Seek(int64, int) (int64, error) { return 0, errors.New("seek not supported") }

func TestNewAssemblyAIClient_NoKey(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "")
	assert.Nil(t, NewAssemblyAIClient(&config.AssemblyAIConfig{}, nil))
	assert.Nil(t, NewAssemblyAIClient(nil, nil))
}

func TestNewAssemblyAIClient_Defaults(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "env-key")

	client := NewAssemblyAIClient(nil, nil)
	require.NotNil(t, client)
	assert.Equal(t, "en", client.language)
	assert.Equal(t, 5*time.Minute, client.maxWait)

	client = NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "k", LanguageCode: "vi", MaxWait: time.Minute}, nil)
	require.NotNil(t, client)
	assert.Equal(t, "vi", client.language)
	assert.Equal(t, time.Minute, client.maxWait)
}

func TestTranscribe_RewindFailureIsPermanent(t *testing.T) {
	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "test-key"}, nil)
	require.NotNil(t, client)

	start := time.Now()
	_, err := client.Transcribe(context.Background(), brokenSeeker{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to rewind audio")
	assert.Less(t, time.Since(start), 2*time.Second)
}

package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-actions/pkg/config"
)

func groqServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "Sentence:")

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
}

func TestExtractPersonNames_Success(t *testing.T) {
	ts := groqServer(t, http.StatusOK, "```json\n[\"John Smith\", \"Mary\"]\n```")
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	names, err := client.ExtractPersonNames(context.Background(), "John Smith and Mary will draft it")
	require.NoError(t, err)
	assert.Equal(t, []string{"John Smith", "Mary"}, names)
}

func TestExtractPersonNames_Empty(t *testing.T) {
	ts := groqServer(t, http.StatusOK, "[]")
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	names, err := client.ExtractPersonNames(context.Background(), "we will ship it")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestExtractPersonNames_HTTPError(t *testing.T) {
	ts := groqServer(t, http.StatusTooManyRequests, "")
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.ExtractPersonNames(context.Background(), "John will ship it")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestExtractPersonNames_BadJSON(t *testing.T) {
	ts := groqServer(t, http.StatusOK, "nobody here")
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.ExtractPersonNames(context.Background(), "John will ship it")
	require.Error(t, err)
}

func TestNewAssemblyAIClient_NoKeyEmptyConfig(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "")
	assert.Nil(t, NewAssemblyAIClient(&config.AssemblyAIConfig{}, nil))
}

func TestNewAssemblyAIClient_DefaultsKeyOnly(t *testing.T) {
	c := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "k"}, nil)
	require.NotNil(t, c)
	assert.Equal(t, "en", c.language)
	assert.Positive(t, c.maxWait)
}

package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaSummarize(t *testing.T) {
	var gotReq ollamaChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(ollamaChatResponse{
			Model:   gotReq.Model,
			Message: ollamaMessage{Role: "assistant", Content: "A short summary."},
			Done:    true,
		})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3")

	summary, err := provider.Summarize(context.Background(), "A long note about travel plans.")
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", summary)

	assert.Equal(t, "llama3", gotReq.Model)
	assert.False(t, gotReq.Stream)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "A long note about travel plans.", gotReq.Messages[1].Content)
}

func TestOllamaSummarizeModelOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollamaChatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "mistral", req.Model)
		json.NewEncoder(w).Encode(ollamaChatResponse{Message: ollamaMessage{Content: "ok"}})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3")

	_, err := provider.Summarize(context.Background(), "text", WithModel("mistral"))
	require.NoError(t, err)
}

func TestOllamaSummarizeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "llama3")

	_, err := provider.Summarize(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestOllamaSummarizeConnectionRefused(t *testing.T) {
	provider := NewOllamaProvider("http://127.0.0.1:1", "llama3")

	_, err := provider.Summarize(context.Background(), "text")
	require.Error(t, err)
}

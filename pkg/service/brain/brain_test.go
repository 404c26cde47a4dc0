package brain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(Config{
		BaseURL:      srv.URL,
		Model:        "test-model",
		OpenAIAPIKey: "openai-key",
		BearerToken:  "bearer-token",
	})
}

func TestNewChatReturnsChatID(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "openai-key", r.Header.Get("Openai-Api-Key"))
		assert.Equal(t, "Bearer bearer-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Card => mdma", body["name"])

		json.NewEncoder(w).Encode(map[string]string{"chat_id": "abc123"})
	})

	chatID, err := svc.NewChat(context.Background(), "Card => mdma")
	require.NoError(t, err)
	assert.Equal(t, "abc123", chatID)
}

func TestNewChatMissingIdentifier(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})

	_, err := svc.NewChat(context.Background(), "Card => mdma")
	assert.ErrorIs(t, err, ErrSessionCreate)
}

func TestNewChatBackendDown(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})

	_, err := svc.NewChat(context.Background(), "Card => mdma")
	assert.ErrorIs(t, err, ErrSessionCreate)
}

func TestAskReturnsAnswer(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/abc123/question", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body["model"])
		assert.Equal(t, 0.5, body["temperature"])
		assert.Equal(t, float64(4000), body["max_tokens"])

		json.NewEncoder(w).Encode(map[string]string{"assistant": "an answer"})
	})

	answer, err := svc.Ask(context.Background(), "abc123", "what is mdma?", 0.5, 4000)
	require.NoError(t, err)
	assert.Equal(t, "an answer", answer)
}

func TestAskEmptyAnswer(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"assistant": ""})
	})

	_, err := svc.Ask(context.Background(), "abc123", "question", 0.5, 4000)
	assert.ErrorIs(t, err, ErrAnswerFetch)
}

func TestAskBackendError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := svc.Ask(context.Background(), "abc123", "question", 0.5, 4000)
	assert.ErrorIs(t, err, ErrAnswerFetch)
}

package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HeritageService/pkg/logger"
)

type countingMetrics struct {
	outcomes []string
}

func (m *countingMetrics) ObserveCompletion(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

func newTestClient(baseURL, apiKey string, m MetricsRecorder) *Client {
	return NewClient(Config{
		BaseURL:     baseURL,
		APIKey:      apiKey,
		Model:       "gpt-3.5-turbo",
		MaxTokens:   500,
		Temperature: 0.7,
		Timeout:     5 * time.Second,
	}, m, logger.NewNop())
}

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		assert.Equal(t, 500, req.MaxTokens)
		assert.Equal(t, 0.7, req.Temperature)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, RoleSystem, req.Messages[0].Role)
		assert.Equal(t, RoleUser, req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []Choice{{Message: Message{Role: RoleAssistant, Content: "Tashi delek!"}}},
		})
	}))
	defer server.Close()

	m := &countingMetrics{}
	text, err := newTestClient(server.URL+"/v1/", "secret", m).Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "You are a guide"},
		{Role: RoleUser, Content: "Hello"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Tashi delek!", text)
	assert.Equal(t, []string{outcomeSuccess}, m.outcomes)
}

func TestClient_Complete_NotConfigured(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "", &countingMetrics{})

	assert.False(t, client.Enabled())
	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestClient_Complete_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests"}}`))
	}))
	defer server.Close()

	m := &countingMetrics{}
	_, err := newTestClient(server.URL, "secret", m).Complete(context.Background(), nil)

	require.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "Rate limit reached")
	assert.Equal(t, []string{outcomeError}, m.outcomes)
}

func TestClient_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "secret", &countingMetrics{}).Complete(context.Background(), nil)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/config"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/metrics"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *metrics.Metrics) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := metrics.NewMetrics()
	c := NewClient(config.GroqConfig{
		APIKey:      "test-key",
		Model:       "llama3-8b-8192",
		MaxTokens:   1000,
		Temperature: 0.7,
		Timeout:     5 * time.Second,
	}, m)
	c.baseURL = srv.URL
	return c, m
}

func chatResponse(content string) ChatResponse {
	return ChatResponse{
		ID:    "chatcmpl-test",
		Model: "llama3-8b-8192",
		Choices: []Choice{
			{Message: Message{Role: "assistant", Content: content}},
		},
	}
}

func TestCompleteSuccess(t *testing.T) {
	var gotRequest ChatRequest

	c, m := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		_ = json.NewEncoder(w).Encode(chatResponse("DIFFICULTY: Easy"))
	})

	content, err := c.Complete(context.Background(), "generate questions")
	require.NoError(t, err)
	assert.Equal(t, "DIFFICULTY: Easy", content)

	assert.Equal(t, "llama3-8b-8192", gotRequest.Model)
	require.Len(t, gotRequest.Messages, 1)
	assert.Equal(t, "user", gotRequest.Messages[0].Role)
	assert.Equal(t, "generate questions", gotRequest.Messages[0].Content)

	snapshot := m.GetSnapshot()
	assert.Equal(t, int64(1), snapshot.APICallsTotal)
	assert.Equal(t, int64(1), snapshot.APICallsSuccessful)
}

func TestCompleteStripsMarkdownFencing(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse("```json\nADEQUATE\nGood.\n```"))
	})

	content, err := c.Complete(context.Background(), "evaluate")
	require.NoError(t, err)
	assert.Equal(t, "ADEQUATE\nGood.", content)
}

func TestCompleteNonOKStatus(t *testing.T) {
	c, m := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := c.Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")

	snapshot := m.GetSnapshot()
	assert.Equal(t, int64(1), snapshot.APICallsTotal)
	assert.Equal(t, int64(0), snapshot.APICallsSuccessful)
}

func TestCompleteAPIErrorBody(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(ChatResponse{
			Error: &APIError{Message: "model overloaded", Type: "server_error"},
		})
	})

	_, err := c.Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestCompleteNoChoices(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(ChatResponse{})
	})

	_, err := c.Complete(context.Background(), "p")
	assert.Error(t, err)
}

func TestCompleteHonorsContext(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(chatResponse("too late"))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Complete(ctx, "p")
	assert.Error(t, err)
}

func TestWithParams(t *testing.T) {
	var got ChatRequest

	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(chatResponse("ok"))
	})

	tuned := c.WithParams(0.3, 200)
	_, err := tuned.Complete(context.Background(), "p")
	require.NoError(t, err)

	assert.Equal(t, 0.3, got.Temperature)
	assert.Equal(t, 200, got.MaxTokens)

	// The original keeps its own parameters.
	_, err = c.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, 1000, got.MaxTokens)
}

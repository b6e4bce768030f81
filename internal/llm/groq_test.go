package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path          string
	Authorization string
	Body          map[string]any
}

func newCompletionServer(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Path = r.URL.Path
		captured.Authorization = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&captured.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func newTestGroqClient(t *testing.T, baseURL string) *GroqClient {
	t.Helper()
	client, err := NewGroqClient(DefaultGroqConfig().WithBaseURL(baseURL), "test-key")
	require.NoError(t, err)
	return client
}

const completionOK = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "llama3-8b-8192",
	"choices": [
		{"index": 0, "message": {"role": "assistant", "content": "RESUME_TEXT"}, "finish_reason": "stop"}
	]
}`

func TestGroqClient_Chat_SendsRequest(t *testing.T) {
	srv, captured := newCompletionServer(t, http.StatusOK, completionOK)
	client := newTestGroqClient(t, srv.URL)

	text, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a senior resume writer at a tech hiring firm."},
			{Role: RoleUser, Content: "Create a premium, ATS-friendly resume."},
		},
		Temperature: 0.25,
		MaxTokens:   900,
	})
	require.NoError(t, err)
	assert.Equal(t, "RESUME_TEXT", text)

	assert.Equal(t, "/chat/completions", captured.Path)
	assert.Equal(t, "Bearer test-key", captured.Authorization)
	assert.Equal(t, "llama3-8b-8192", captured.Body["model"])
	assert.InDelta(t, 0.25, captured.Body["temperature"], 1e-6)
	assert.EqualValues(t, 900, captured.Body["max_tokens"])
	assert.NotContains(t, captured.Body, "stream")

	messages, ok := captured.Body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	second := messages[1].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "You are a senior resume writer at a tech hiring firm.", first["content"])
	assert.Equal(t, "user", second["role"])
}

func TestGroqClient_Chat_NoChoices(t *testing.T) {
	srv, _ := newCompletionServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","choices":[]}`)
	client := newTestGroqClient(t, srv.URL)

	_, err := client.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestGroqClient_Chat_HTTPErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`},
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"Rate limit reached","type":"tokens"}}`},
		{"server error", http.StatusInternalServerError, `oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newCompletionServer(t, tt.status, tt.body)
			client := newTestGroqClient(t, srv.URL)

			_, err := client.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to create chat completion")
		})
	}
}

func TestGroqClient_Chat_MalformedBody(t *testing.T) {
	srv, _ := newCompletionServer(t, http.StatusOK, `{not json`)
	client := newTestGroqClient(t, srv.URL)

	_, err := client.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	assert.Error(t, err)
}

func TestGroqClient_Chat_Unreachable(t *testing.T) {
	srv, _ := newCompletionServer(t, http.StatusOK, completionOK)
	client := newTestGroqClient(t, srv.URL)
	srv.Close()

	_, err := client.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	assert.Error(t, err)
}

func TestGroqClient_Chat_CanceledContext(t *testing.T) {
	srv, _ := newCompletionServer(t, http.StatusOK, completionOK)
	client := newTestGroqClient(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Chat(ctx, ChatRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGroqClient_Model(t *testing.T) {
	client, err := NewGroqClient(DefaultGroqConfig().WithModel("llama-3.1-8b-instant"), "key")
	require.NoError(t, err)

	assert.Equal(t, "llama-3.1-8b-instant", client.Model())
	assert.NoError(t, client.Close())
}

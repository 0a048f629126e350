package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "ollama-ui/internal/errors"
)

// TestOllamaProvider checks that the provider builds the right requests against
// a fake inference server and parses what comes back.
func TestOllamaProvider(t *testing.T) {
	var capturedMethod, capturedPath string
	var capturedBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		capturedPath = r.URL.Path
		capturedBody, _ = io.ReadAll(r.Body)

		switch r.URL.Path {
		case "/api/tags":
			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"models":[{"name":"llama3:latest","size":1},{"name":"mistral:7b"},{"name":"llama3:latest"}]}`))
			assert.NoError(t, err)
		case "/api/chat":
			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"model":"llama3:latest","message":{"role":"assistant","content":"Hi there"},"done":true}`))
			assert.NoError(t, err)
		case "/api/generate":
			w.Header().Set("Content-Type", "application/x-ndjson")
			_, err := w.Write([]byte("{\"response\":\"Roses\"}\n\n{\"response\":\" are red\",\"done\":true}\n"))
			assert.NoError(t, err)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL + "/api/")
	ctx := context.Background()

	t.Run("ListModels", func(t *testing.T) {
		resp, err := provider.ListModels(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, capturedMethod)
		assert.Equal(t, "/api/tags", capturedPath)
		require.Len(t, resp.Models, 3)
		assert.Equal(t, "llama3:latest", resp.Models[0].Name)
		assert.Equal(t, "mistral:7b", resp.Models[1].Name)
		assert.Equal(t, "llama3:latest", resp.Models[2].Name)
	})

	t.Run("Chat", func(t *testing.T) {
		req := &ChatRequest{
			Model:    "llama3:latest",
			Messages: []Message{{Role: "user", Content: "Hello"}},
			Stream:   true,
		}
		resp, err := provider.Chat(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "Hi there", resp.Content)
		assert.Equal(t, http.MethodPost, capturedMethod)
		assert.Equal(t, "/api/chat", capturedPath)

		var sent map[string]interface{}
		require.NoError(t, json.Unmarshal(capturedBody, &sent))
		assert.Equal(t, false, sent["stream"])
		assert.Equal(t, "llama3:latest", sent["model"])
	})

	t.Run("GenerateStream", func(t *testing.T) {
		ch := make(chan StreamResponse)
		errCh := make(chan error, 1)
		go func() {
			errCh <- provider.GenerateStream(ctx, &GenerateRequest{Model: "llama3:latest", Prompt: "a poem"}, ch)
		}()

		var chunks []StreamResponse
		for chunk := range ch {
			chunks = append(chunks, chunk)
		}

		require.NoError(t, <-errCh)
		require.Len(t, chunks, 2)
		assert.Equal(t, "Roses", chunks[0].Content)
		assert.Equal(t, " are red", chunks[1].Content)
		assert.True(t, chunks[1].Done)
		assert.Equal(t, "/api/generate", capturedPath)

		var sent map[string]interface{}
		require.NoError(t, json.Unmarshal(capturedBody, &sent))
		assert.Equal(t, "a poem", sent["prompt"])
		_, hasStream := sent["stream"]
		assert.False(t, hasStream)
	})
}

func TestOllamaProvider_Chat_Failures(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		expectedErr error
	}{
		{name: "Missing message", status: http.StatusOK, body: `{"done":true}`, expectedErr: app_errors.ErrMissingField},
		{name: "Missing content", status: http.StatusOK, body: `{"message":{"role":"assistant"}}`, expectedErr: app_errors.ErrMissingField},
		{name: "Null message", status: http.StatusOK, body: `{"message":null}`, expectedErr: app_errors.ErrMissingField},
		{name: "Malformed JSON", status: http.StatusOK, body: `{"message":`, expectedErr: app_errors.ErrDecode},
		{name: "Server error", status: http.StatusInternalServerError, body: `model not found`, expectedErr: app_errors.ErrStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			resp, err := NewOllamaProvider(server.URL).Chat(context.Background(), &ChatRequest{Model: "m"})

			assert.Nil(t, resp)
			assert.True(t, errors.Is(err, tc.expectedErr), "got %v", err)
		})
	}

	t.Run("Status error carries body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"model 'x' not found"}`, http.StatusNotFound)
		}))
		defer server.Close()

		_, err := NewOllamaProvider(server.URL).Chat(context.Background(), &ChatRequest{Model: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "model 'x' not found")
	})
}

func TestOllamaProvider_GenerateStream_MalformedLine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{\"response\":\"a\"}\nnot-json\n{\"response\":\"b\"}\n"))
	}))
	defer server.Close()

	ch := make(chan StreamResponse, 10)
	err := NewOllamaProvider(server.URL).GenerateStream(context.Background(), &GenerateRequest{}, ch)
	require.NoError(t, err)

	var chunks []StreamResponse
	for chunk := range ch {
		chunks = append(chunks, chunk)
	}
	require.Len(t, chunks, 3)
	assert.Equal(t, "a", chunks[0].Content)
	assert.NotEmpty(t, chunks[1].Error)
	assert.Equal(t, "not-json", chunks[1].Raw)
	assert.Equal(t, "b", chunks[2].Content)
}

func TestOllamaProvider_GenerateStream_OversizedLine(t *testing.T) {
	huge := strings.Repeat("x", 2*1024*1024)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{\"response\":\"a\"}\n" + huge + "\n{\"response\":\"b\"}"))
	}))
	defer server.Close()

	ch := make(chan StreamResponse, 10)
	err := NewOllamaProvider(server.URL).GenerateStream(context.Background(), &GenerateRequest{}, ch)
	require.NoError(t, err)

	var chunks []StreamResponse
	for chunk := range ch {
		chunks = append(chunks, chunk)
	}
	require.Len(t, chunks, 3)
	assert.Equal(t, "a", chunks[0].Content)
	assert.NotEmpty(t, chunks[1].Error)
	assert.Len(t, chunks[1].Raw, maxRawSize+len("..."))
	assert.Equal(t, "b", chunks[2].Content)
}

func TestOllamaProvider_ConnectionRefused(t *testing.T) {
	// A closed server leaves a URL nothing listens on.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	provider := NewOllamaProvider(url)
	ctx := context.Background()

	_, err := provider.ListModels(ctx)
	assert.True(t, errors.Is(err, app_errors.ErrTransport))

	_, err = provider.Chat(ctx, &ChatRequest{})
	assert.True(t, errors.Is(err, app_errors.ErrTransport))

	ch := make(chan StreamResponse)
	err = provider.GenerateStream(ctx, &GenerateRequest{}, ch)
	assert.True(t, errors.Is(err, app_errors.ErrTransport))
	_, open := <-ch
	assert.False(t, open, "channel must be closed on failure")
}

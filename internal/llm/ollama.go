package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	app_errors "ollama-ui/internal/errors"
)

// maxRawSize bounds how much of an unparseable line is kept in Raw.
const maxRawSize = 1024

// Provider defines the calls made against the inference server.
type Provider interface {
	ListModels(ctx context.Context) (*ListModelsResponse, error)
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
	GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamResponse) error
}

type ollamaProvider struct {
	client *http.Client
	url    string
}

// NewOllamaProvider returns a Provider for the API rooted at baseURL,
// e.g. http://localhost:11434/api.
func NewOllamaProvider(baseURL string) Provider {
	return &ollamaProvider{
		client: &http.Client{},
		url:    strings.TrimRight(baseURL, "/"),
	}
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Model struct {
	Name string `json:"name"`
}

type ListModelsResponse struct {
	Models []Model `json:"models"`
}

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type ChatResponse struct {
	Model   string `json:"model"`
	Content string `json:"content"`
}

// GenerateRequest mirrors the /generate body. Stream is left to the server
// default, which is to stream.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// StreamResponse is one line of a /generate stream. Error is set instead of
// Content when the line was not a JSON object; Raw keeps the offending line.
// Done is informational only: the stream is always read to EOF.
type StreamResponse struct {
	Content string
	Done    bool
	Error   string
	Raw     string
}

func (p *ollamaProvider) ListModels(ctx context.Context) (*ListModelsResponse, error) {
	body, err := p.do(ctx, http.MethodGet, "/tags", nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var resp ListModelsResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: could not decode model list: %v", app_errors.ErrDecode, err)
	}
	return &resp, nil
}

func (p *ollamaProvider) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	req.Stream = false
	body, err := p.do(ctx, http.MethodPost, "/chat", req)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read response body: %v", app_errors.ErrTransport, err)
	}

	// Pointers distinguish an absent or null field from an empty reply.
	var chatResp struct {
		Model   string `json:"model"`
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return nil, fmt.Errorf("%w: %v: %s", app_errors.ErrDecode, err, string(bodyBytes))
	}
	if chatResp.Message == nil || chatResp.Message.Content == nil {
		return nil, fmt.Errorf("%w: message.content not in %s", app_errors.ErrMissingField, string(bodyBytes))
	}
	return &ChatResponse{Model: chatResp.Model, Content: *chatResp.Message.Content}, nil
}

func (p *ollamaProvider) GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamResponse) error {
	defer close(ch)

	body, err := p.do(ctx, http.MethodPost, "/generate", req)
	if err != nil {
		return err
	}
	defer body.Close()

	type ollamaStreamChunk struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}

	reader := bufio.NewReader(body)
	for {
		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("%w: stream read failed: %v", app_errors.ErrTransport, readErr)
		}

		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			var streamResp StreamResponse
			var chunk ollamaStreamChunk
			if err := json.Unmarshal(line, &chunk); err != nil {
				streamResp = StreamResponse{Error: "Failed to decode stream chunk", Raw: truncate(line)}
			} else {
				streamResp = StreamResponse{Content: chunk.Response, Done: chunk.Done}
			}

			select {
			case ch <- streamResp:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if readErr == io.EOF {
			return nil
		}
	}
}

func truncate(line []byte) string {
	if len(line) > maxRawSize {
		return string(line[:maxRawSize]) + "..."
	}
	return string(line)
}

// do sends one request and returns the body of a 2xx response. The caller
// closes it.
func (p *ollamaProvider) do(ctx context.Context, method, path string, payload interface{}) (io.ReadCloser, error) {
	var reqBody io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, p.url+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: api returned status %d: %s", app_errors.ErrStatus, resp.StatusCode, string(bodyBytes))
	}
	return resp.Body, nil
}

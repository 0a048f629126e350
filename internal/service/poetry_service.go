package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"ollama-ui/internal/llm"
	"ollama-ui/internal/model"
)

const (
	PoetryNoResponse  = "Error: No response from API"
	PoetryUnavailable = "Error: Unable to generate poetry"
)

type PoetryService struct {
	llm llm.Provider
}

func NewPoetryService(llmProvider llm.Provider) *PoetryService {
	return &PoetryService{llm: llmProvider}
}

// Compose streams a generation for req and concatenates the fragments.
// Fragments that are not JSON are skipped with a warning.
func (s *PoetryService) Compose(ctx context.Context, req model.PoemRequest) model.Reply {
	id := uuid.NewString()
	logger := slog.With("interaction_id", id, "model", req.Model)

	genReq := &llm.GenerateRequest{Model: req.Model, Prompt: req.Instruction()}
	logger.Debug("Sending generate request", "prompt", genReq.Prompt)

	streamChan := make(chan llm.StreamResponse)
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.llm.GenerateStream(ctx, genReq, streamChan)
	}()

	var poem strings.Builder
	skipped := 0
	for chunk := range streamChan {
		if chunk.Error != "" {
			skipped++
			logger.Warn("Could not parse line as JSON", "line", chunk.Raw)
			continue
		}
		poem.WriteString(chunk.Content)
	}

	if err := <-errChan; err != nil {
		logger.Error("Error in poetry generation interface", "error", err)
		return model.Reply{ID: id, Text: PoetryUnavailable}
	}
	if skipped > 0 {
		logger.Warn("Dropped malformed fragments from generation stream", "skipped", skipped)
	}

	if poem.Len() == 0 {
		return model.Reply{ID: id, Text: PoetryNoResponse}
	}
	return model.Reply{ID: id, Text: strings.TrimSpace(poem.String())}
}

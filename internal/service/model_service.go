package service

import (
	"context"
	"log/slog"

	"ollama-ui/internal/llm"
)

// ModelService lists the models known to the inference server.
type ModelService struct {
	llm llm.Provider
}

// NewModelService creates a new ModelService.
func NewModelService(llmProvider llm.Provider) *ModelService {
	return &ModelService{llm: llmProvider}
}

// Names returns the model names in the order the server reported them. Any
// failure is logged and yields an empty list.
func (s *ModelService) Names(ctx context.Context) []string {
	resp, err := s.llm.ListModels(ctx)
	if err != nil {
		slog.Error("Error retrieving models", "error", err)
		return []string{}
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	slog.Debug("Retrieved models", "count", len(names))
	return names
}

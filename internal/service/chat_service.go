package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	app_errors "ollama-ui/internal/errors"
	"ollama-ui/internal/llm"
	"ollama-ui/internal/model"
)

const (
	ChatNoResponse  = "Error: No response"
	ChatUnavailable = "Error: Unable to get response"
)

type ChatService struct {
	llm llm.Provider
}

func NewChatService(llmProvider llm.Provider) *ChatService {
	return &ChatService{llm: llmProvider}
}

// BuildChatRequest returns a non-streaming request whose messages are the
// history followed by the new user turn. history is not modified.
func BuildChatRequest(history []model.Turn, message, modelName string) *llm.ChatRequest {
	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: model.RoleUser, Content: message})

	return &llm.ChatRequest{
		Model:    modelName,
		Messages: messages,
		Stream:   false,
	}
}

// Reply performs one chat round trip. Failures never escape: they are logged
// and turned into one of the fixed error texts.
func (s *ChatService) Reply(ctx context.Context, history []model.Turn, message, modelName string) model.Reply {
	id := uuid.NewString()
	logger := slog.With("interaction_id", id, "model", modelName)

	req := BuildChatRequest(history, message, modelName)
	logger.Debug("Sending chat request", "turns", len(req.Messages))

	resp, err := s.llm.Chat(ctx, req)
	switch {
	case err == nil:
		logger.Debug("Chat response", "content", resp.Content)
		return model.Reply{ID: id, Text: resp.Content}
	case errors.Is(err, app_errors.ErrMissingField):
		logger.Warn("Chat response had no message content", "error", err)
		return model.Reply{ID: id, Text: ChatNoResponse}
	default:
		// Status errors already carry the upstream response body.
		logger.Error("Error in chat interface", "error", err)
		return model.Reply{ID: id, Text: ChatUnavailable}
	}
}

package interfaces

import (
	"context"

	"ollama-ui/internal/model"
)

// The API handlers depend on these contracts rather than on the concrete
// services, so they can be tested with mocks.

// ChatService answers one chat turn given the replayed history.
type ChatService interface {
	Reply(ctx context.Context, history []model.Turn, message, modelName string) model.Reply
}

// PoetryService generates one poem.
type PoetryService interface {
	Compose(ctx context.Context, req model.PoemRequest) model.Reply
}

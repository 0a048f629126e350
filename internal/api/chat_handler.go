package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "ollama-ui/internal/errors"
	"ollama-ui/internal/interfaces"
	"ollama-ui/internal/model"
	"ollama-ui/internal/web"
)

// ChatRequest is the body the chat page posts for each user turn. History is
// the whole conversation so far; the server keeps no session state.
type ChatRequest struct {
	Message string       `json:"message" validate:"required" example:"Tell me a joke"`
	History []model.Turn `json:"history" validate:"dive"`
	Model   string       `json:"model" example:"llama3:latest"`
}

// ChatHandler serves the chat front-end.
type ChatHandler struct {
	service  interfaces.ChatService
	models   []string
	rootPath string
}

// NewChatHandler creates a ChatHandler. models is the list fetched at startup
// and is never modified.
func NewChatHandler(svc interfaces.ChatService, models []string, rootPath string) *ChatHandler {
	return &ChatHandler{service: svc, models: models, rootPath: rootPath}
}

// Page renders the chat UI.
func (h *ChatHandler) Page(w http.ResponseWriter, r *http.Request) {
	renderPage(w, web.ChatPage, web.PageData{
		Title:    "Chat Interface",
		RootPath: h.rootPath,
		Script:   "chat.js",
		Models:   h.models,
	})
}

// HandleListModels godoc
// @Summary      List models
// @Description  Returns the model names fetched from the inference server at startup.
// @Tags         Models
// @Produce      json
// @Success      200  {object}  ModelsResponse
// @Router       /api/models [get]
func (h *ChatHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ModelsResponse{Models: h.models})
}

// HandleChat godoc
// @Summary      Send a chat message
// @Description  Replays the history plus the new message to the model and returns its reply. Upstream failures are reported as a fixed error text in the reply.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        chatRequest  body      ChatRequest  true  "Message, history and model"
// @Success      200          {object}  model.Reply
// @Failure      400          {object}  ErrorResponse
// @Failure      429          {string}  string  "Server capacity exceeded"
// @Router       /api/chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload: %v", app_errors.ErrValidation, err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	reply := h.service.Reply(r.Context(), req.History, req.Message, req.Model)
	respondWithJSON(w, http.StatusOK, reply)
}

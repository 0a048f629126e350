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

// PoetryHandler serves the poetry front-end.
type PoetryHandler struct {
	service  interfaces.PoetryService
	models   []string
	rootPath string
}

func NewPoetryHandler(svc interfaces.PoetryService, models []string, rootPath string) *PoetryHandler {
	return &PoetryHandler{service: svc, models: models, rootPath: rootPath}
}

// Page renders the poetry UI.
func (h *PoetryHandler) Page(w http.ResponseWriter, r *http.Request) {
	renderPage(w, web.PoetryPage, web.PageData{
		Title:     "Poetry Generation Interface",
		RootPath:  h.rootPath,
		Script:    "poetry.js",
		Models:    h.models,
		Styles:    model.PoemStyles,
		MinLength: model.MinPoemLength,
		MaxLength: model.MaxPoemLength,
	})
}

// HandleListModels godoc
// @Summary      List models
// @Description  Returns the model names fetched from the inference server at startup.
// @Tags         Models
// @Produce      json
// @Success      200  {object}  ModelsResponse
// @Router       /api/models [get]
func (h *PoetryHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ModelsResponse{Models: h.models})
}

// HandlePoem godoc
// @Summary      Generate a poem
// @Description  Builds one instruction from prompt, style, theme and length and returns the generated text. Upstream failures are reported as a fixed error text in the reply.
// @Tags         Poetry
// @Accept       json
// @Produce      json
// @Param        poemRequest  body      model.PoemRequest  true  "Poem parameters"
// @Success      200          {object}  model.Reply
// @Failure      400          {object}  ErrorResponse
// @Failure      429          {string}  string  "Server capacity exceeded"
// @Router       /api/poem [post]
func (h *PoetryHandler) HandlePoem(w http.ResponseWriter, r *http.Request) {
	var req model.PoemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload: %v", app_errors.ErrValidation, err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	reply := h.service.Compose(r.Context(), req)
	respondWithJSON(w, http.StatusOK, reply)
}

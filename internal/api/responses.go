package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "ollama-ui/internal/errors"
	"ollama-ui/internal/web"
)

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the body of the health check.
type StatusResponse struct {
	Status string `json:"status"`
}

// ModelsResponse lists the model names fetched at startup.
type ModelsResponse struct {
	Models []string `json:"models"`
}

// respondWithError maps application errors to HTTP status codes. Upstream
// failures never reach here; the services turn them into reply text.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, app_errors.ErrInternal):
		statusCode = http.StatusInternalServerError
		message = "The page could not be rendered."
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// renderPage renders a page fully before writing it, so a template failure
// still produces a clean 500.
func renderPage(w http.ResponseWriter, page string, data web.PageData) {
	var buf bytes.Buffer
	if err := web.Render(&buf, page, data); err != nil {
		respondWithError(w, fmt.Errorf("%w: failed to render %s: %v", app_errors.ErrInternal, page, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write page", "page", page, "error", err)
	}
}
